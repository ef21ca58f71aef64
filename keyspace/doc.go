// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keyspace - hierarchical ledger key encoding
//
// All records share one lexicographically ordered keyspace.  Keys are
// dot-segmented strings with position-significant meaning:
//
//	subject.<hash>
//	grade.<subjectHash>.<studentID>.<gradeHash>
//
// The hash segments are content addresses: a deterministic digest of
// the canonical serialisation of the entity's creation-time payload.
// Identical payloads derive identical keys, so accidental duplicate
// creation is detectable as a key collision.
//
// The segment layout makes prefix ranges act as secondary indexes:
// "grade.<subjectHash>." covers exactly one subject's grades and
// "grade.<subjectHash>.<studentID>." exactly one student's grades
// within that subject.
package keyspace
