// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/gradechain/gradebookd/fault"
	"github.com/gradechain/gradebookd/keyspace"
	"github.com/gradechain/gradebookd/ownership"
	"github.com/gradechain/gradebookd/record"
)

// StudentSubjects - all subjects the calling student belongs to
func StudentSubjects(ctx Context) ([]record.Subject, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleStudent)
	if nil != err {
		return nil, err
	}

	subjects := []record.Subject{}
	err = scanSubjects(keyspace.SubjectPrefix(), func(subject record.Subject) error {
		if subject.IsMember(ctx.Caller.ID) {
			subjects = append(subjects, subject)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return subjects, nil
}

// StudentGrades - the calling student's own grades within one subject
//
// the student owner segment of the key narrows the range so the scan
// can never surface another student's grades
func StudentGrades(ctx Context, subjectID string) ([]record.Grade, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleStudent)
	if nil != err {
		return nil, err
	}

	err = checkKeyType(subjectID, keyspace.TypeSubject, fault.ErrKeyNotSubject)
	if nil != err {
		return nil, err
	}
	subjectHash, err := keyspace.SubjectHashOf(subjectID)
	if nil != err {
		return nil, err
	}
	if !recordExists(subjectID) {
		return nil, fault.ErrSubjectNotFound
	}

	grades := []record.Grade{}
	err = scanGrades(keyspace.StudentGradePrefix(subjectHash, ctx.Caller.ID), func(grade record.Grade) error {
		grades = append(grades, grade)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return grades, nil
}

// StudentGrade - read one grade owned by the calling student
//
// the ownership check is a pure key parse performed before any ledger
// read, so a non-owner learns nothing about the grade's existence
func StudentGrade(ctx Context, gradeID string) (record.Grade, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleStudent)
	if nil != err {
		return record.Grade{}, err
	}
	err = checkKeyType(gradeID, keyspace.TypeGrade, fault.ErrKeyNotGrade)
	if nil != err {
		return record.Grade{}, err
	}
	err = ownership.RequireGradeOwner(gradeID, ctx.Caller)
	if nil != err {
		return record.Grade{}, err
	}
	return getGrade(gradeID)
}

// StudentGradeHistory - audit log of one grade owned by the caller
func StudentGradeHistory(ctx Context, gradeID string) ([]GradeRevision, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleStudent)
	if nil != err {
		return nil, err
	}
	err = checkKeyType(gradeID, keyspace.TypeGrade, fault.ErrKeyNotGrade)
	if nil != err {
		return nil, err
	}
	err = ownership.RequireGradeOwner(gradeID, ctx.Caller)
	if nil != err {
		return nil, err
	}
	_, err = getGrade(gradeID)
	if nil != err {
		return nil, err
	}
	return gradeHistory(gradeID)
}
