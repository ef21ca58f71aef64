// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the stored entity shapes and their builders
//
// Records are stored as JSON documents.  The canonical payload used
// for content-addressed key derivation is the JSON of the
// creation-time fields in declaration order, without the ID, so the
// derived key never depends on itself.
//
// All construction and mutation goes through the builder functions
// which enumerate every field: the immutable fields (ID, owner,
// creation timestamp) are carried from the base record and can never
// be overwritten by caller input.
package record
