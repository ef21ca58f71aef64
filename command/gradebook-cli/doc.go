// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command line tool for the grade book ledger
//
// every command runs as a caller identity supplied by the global
// "identity" and "role" flags; the ledger enforces the actual
// authorisation, the flags only declare who is asking
package main
