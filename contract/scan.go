// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/gradechain/gradebookd/keyspace"
	"github.com/gradechain/gradebookd/record"
	"github.com/gradechain/gradebookd/storage"
)

// scanSubjects - visit every subject under a dot-terminated prefix in
// key order
//
// records that fail strict validation are logged and skipped, never
// fatal: the keyspace may hold historical or foreign data.  The
// underlying cursor is always drained or released before returning.
// visit may stop early by returning storage.ErrStopIteration.
func scanSubjects(prefix string, visit func(record.Subject) error) error {
	cursor := storage.Pool.Records.NewFetchCursorRange(
		[]byte(prefix),
		[]byte(keyspace.RangeEnd(prefix)),
	)
	err := cursor.Map(func(key []byte, value []byte) error {
		subject, err := record.UnpackSubject(value)
		if nil != err {
			globalData.log.Warnf("scan: skipping malformed record %q: %s", key, err)
			return nil
		}
		return visit(subject)
	})
	if storage.ErrStopIteration == err {
		return nil
	}
	return err
}

// scanGrades - visit every grade under a dot-terminated prefix in key
// order, with the same tolerance policy as scanSubjects
func scanGrades(prefix string, visit func(record.Grade) error) error {
	cursor := storage.Pool.Records.NewFetchCursorRange(
		[]byte(prefix),
		[]byte(keyspace.RangeEnd(prefix)),
	)
	err := cursor.Map(func(key []byte, value []byte) error {
		grade, err := record.UnpackGrade(value)
		if nil != err {
			globalData.log.Warnf("scan: skipping malformed record %q: %s", key, err)
			return nil
		}
		return visit(grade)
	})
	if storage.ErrStopIteration == err {
		return nil
	}
	return err
}
