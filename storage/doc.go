// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the ledger key-value collaborator
//
// Two physical LevelDB databases hold all state:
//
//	ledger - subject and grade records, their revision log and the
//	         per-key revision counters
//	vault  - user identity records, physically isolated so that no
//	         range scan over the ledger can ever surface a profile
//
// Each database is divided into pools by a single byte prefix on the
// stored key.  All of the exported pools are in the Pool structure.
//
// Writes are buffered: a pool Put or Delete lands in the database
// batch and in a cache overlay, so reads issued later in the same
// operation observe the buffered state.  Nothing reaches disk until
// the enclosing Transaction commits; an abort discards the batch and
// the overlay together, so a failed operation leaves no partial
// writes behind.
package storage
