// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the operation entry points
//
// Every operation takes an explicit Context carrying the caller
// identity and the logical transaction timestamp supplied by the
// invoking runtime.  Operations are invoked sequentially; each one
// runs against a consistent view and either commits all of its
// buffered writes or aborts leaving nothing behind.  Every failure is
// terminal for the operation: there is no retry inside the core.
package contract
