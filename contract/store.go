// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/gradechain/gradebookd/fault"
	"github.com/gradechain/gradebookd/keyspace"
	"github.com/gradechain/gradebookd/record"
	"github.com/gradechain/gradebookd/storage"
)

// SubjectRevision - one entry of a subject's audit log
type SubjectRevision struct {
	SeqNo   uint64
	Deleted bool
	Subject record.Subject
}

// GradeRevision - one entry of a grade's audit log
type GradeRevision struct {
	SeqNo   uint64
	Deleted bool
	Grade   record.Grade
}

// checkKeyType - the key must carry the expected type segment
func checkKeyType(key string, expected string, typeError error) error {
	recordType, err := keyspace.TypeOf(key)
	if nil != err {
		return err
	}
	if recordType != expected {
		return typeError
	}
	return nil
}

func recordExists(key string) bool {
	return storage.Pool.Records.Has([]byte(key))
}

// load and strictly validate one subject
//
// a malformed stored record surfaces as a record error on a direct
// get, unlike the tolerant skipping applied during scans
func getSubject(key string) (record.Subject, error) {
	data := storage.Pool.Records.Get([]byte(key))
	if nil == data {
		return record.Subject{}, fault.ErrSubjectNotFound
	}
	return record.UnpackSubject(data)
}

func getGrade(key string) (record.Grade, error) {
	data := storage.Pool.Records.Get([]byte(key))
	if nil == data {
		return record.Grade{}, fault.ErrGradeNotFound
	}
	return record.UnpackGrade(data)
}

func putSubject(subject record.Subject) error {
	packed, err := subject.Pack()
	if nil != err {
		return err
	}
	storage.PutRecord([]byte(subject.ID), packed)
	return nil
}

func putGrade(grade record.Grade) error {
	packed, err := grade.Pack()
	if nil != err {
		return err
	}
	storage.PutRecord([]byte(grade.ID), packed)
	return nil
}

func deleteRecord(key string) {
	storage.DeleteRecord([]byte(key))
}

// subjectHistory - every revision of one subject key, oldest first
func subjectHistory(key string) ([]SubjectRevision, error) {
	revisions, err := storage.RecordHistory([]byte(key))
	if nil != err {
		return nil, err
	}

	history := make([]SubjectRevision, 0, len(revisions))
	for _, revision := range revisions {
		entry := SubjectRevision{
			SeqNo:   revision.SeqNo,
			Deleted: revision.Deleted,
		}
		if !revision.Deleted {
			subject, err := record.UnpackSubject(revision.Data)
			if nil != err {
				globalData.log.Warnf("skipping malformed subject revision %d of %q: %s", revision.SeqNo, key, err)
				continue
			}
			entry.Subject = subject
		}
		history = append(history, entry)
	}
	return history, nil
}

// gradeHistory - every revision of one grade key, oldest first
func gradeHistory(key string) ([]GradeRevision, error) {
	revisions, err := storage.RecordHistory([]byte(key))
	if nil != err {
		return nil, err
	}

	history := make([]GradeRevision, 0, len(revisions))
	for _, revision := range revisions {
		entry := GradeRevision{
			SeqNo:   revision.SeqNo,
			Deleted: revision.Deleted,
		}
		if !revision.Deleted {
			grade, err := record.UnpackGrade(revision.Data)
			if nil != err {
				globalData.log.Warnf("skipping malformed grade revision %d of %q: %s", revision.SeqNo, key, err)
				continue
			}
			entry.Grade = grade
		}
		history = append(history, entry)
	}
	return history, nil
}
