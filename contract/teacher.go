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

// load a subject and prove the caller leads it
func getValidatedSubject(ctx Context, subjectID string) (record.Subject, error) {
	err := checkKeyType(subjectID, keyspace.TypeSubject, fault.ErrKeyNotSubject)
	if nil != err {
		return record.Subject{}, err
	}
	subject, err := getSubject(subjectID)
	if nil != err {
		return record.Subject{}, err
	}
	err = ownership.RequireSubjectLeader(subject, ctx.Caller)
	if nil != err {
		return record.Subject{}, err
	}
	return subject, nil
}

// load a grade and prove the caller issued it
func getValidatedGrade(ctx Context, gradeID string) (record.Grade, error) {
	err := checkKeyType(gradeID, keyspace.TypeGrade, fault.ErrKeyNotGrade)
	if nil != err {
		return record.Grade{}, err
	}
	grade, err := getGrade(gradeID)
	if nil != err {
		return record.Grade{}, err
	}
	err = ownership.RequireGradeIssuer(grade, ctx.Caller)
	if nil != err {
		return record.Grade{}, err
	}
	return grade, nil
}

// the referenced student must currently belong to the subject
//
// checked at grade creation only: later membership drift does not
// invalidate existing grades
func validateNewGrade(subjectID string, student string) error {
	if !recordExists(subjectID) {
		return fault.ErrSubjectNotFound
	}
	subject, err := getSubject(subjectID)
	if nil != err {
		return err
	}
	if !subject.IsMember(student) {
		return fault.ErrStudentNotEnrolled
	}
	return nil
}

// ListSubjects - all subjects led by the calling teacher
func ListSubjects(ctx Context) ([]record.Subject, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return nil, err
	}

	subjects := []record.Subject{}
	err = scanSubjects(keyspace.SubjectPrefix(), func(subject record.Subject) error {
		if subject.Leader == ctx.Caller.ID {
			subjects = append(subjects, subject)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return subjects, nil
}

// CreateSubject - derive a content-addressed key and store a new
// subject
//
// identical creation payloads collide on the derived key and are
// rejected rather than silently overwritten
func CreateSubject(ctx Context, name string, description string, students []string) (record.Subject, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return record.Subject{}, err
	}

	subject := record.NewSubject(ctx.Caller.ID, name, description, students, ctx.Timestamp)
	payload, err := subject.CanonicalPayload()
	if nil != err {
		return record.Subject{}, err
	}
	subject = subject.WithID(keyspace.DeriveSubjectID(payload))

	err = runWrite(func() error {
		if recordExists(subject.ID) {
			return fault.ErrSubjectAlreadyExists
		}
		return putSubject(subject)
	})
	if nil != err {
		return record.Subject{}, err
	}
	return subject, nil
}

// UpdateSubject - full replacement of the mutable payload by the
// leader; ID, leader and creation time are preserved
func UpdateSubject(ctx Context, subjectID string, name string, description string, students []string) (record.Subject, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return record.Subject{}, err
	}

	var updated record.Subject
	err = runWrite(func() error {
		subject, err := getValidatedSubject(ctx, subjectID)
		if nil != err {
			return err
		}
		updated = record.UpdatedSubject(subject, name, description, students, ctx.Timestamp)
		return putSubject(updated)
	})
	if nil != err {
		return record.Subject{}, err
	}
	return updated, nil
}

// DeleteSubject - tombstone a subject; its history stays queryable
func DeleteSubject(ctx Context, subjectID string) error {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return err
	}

	return runWrite(func() error {
		_, err := getValidatedSubject(ctx, subjectID)
		if nil != err {
			return err
		}
		deleteRecord(subjectID)
		return nil
	})
}

// GetSubject - read one subject led by the caller
func GetSubject(ctx Context, subjectID string) (record.Subject, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return record.Subject{}, err
	}
	return getValidatedSubject(ctx, subjectID)
}

// GetSubjectHistory - full audit log of one subject led by the caller
func GetSubjectHistory(ctx Context, subjectID string) ([]SubjectRevision, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return nil, err
	}
	_, err = getValidatedSubject(ctx, subjectID)
	if nil != err {
		return nil, err
	}
	return subjectHistory(subjectID)
}

// ListSubjectGrades - every grade recorded under one subject
func ListSubjectGrades(ctx Context, subjectID string) ([]record.Grade, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
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
	err = scanGrades(keyspace.GradePrefix(subjectHash), func(grade record.Grade) error {
		grades = append(grades, grade)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return grades, nil
}

// CreateGrade - issue a grade for a student of a subject
//
// duplicate detection is scoped to the fully-qualified derived key:
// an identical payload hash under a different subject or student is
// a different grade
func CreateGrade(ctx Context, subjectID string, student string, gradeValue string, description string) (record.Grade, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return record.Grade{}, err
	}

	grade := record.NewGrade(ctx.Caller.ID, gradeValue, description, ctx.Timestamp)
	payload, err := grade.CanonicalPayload()
	if nil != err {
		return record.Grade{}, err
	}
	gradeID, err := keyspace.DeriveGradeID(subjectID, student, payload)
	if nil != err {
		return record.Grade{}, err
	}

	err = runWrite(func() error {
		err := validateNewGrade(subjectID, student)
		if nil != err {
			return err
		}
		if recordExists(gradeID) {
			return fault.ErrGradeAlreadyExists
		}
		grade = grade.WithID(gradeID)
		return putGrade(grade)
	})
	if nil != err {
		return record.Grade{}, err
	}
	return grade, nil
}

// UpdateGrade - replacement of value and description by the issuer
//
// subject membership is not re-verified here: a student removed from
// the subject keeps already-issued grades
func UpdateGrade(ctx Context, gradeID string, gradeValue string, description string) (record.Grade, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return record.Grade{}, err
	}

	var updated record.Grade
	err = runWrite(func() error {
		grade, err := getValidatedGrade(ctx, gradeID)
		if nil != err {
			return err
		}
		updated = record.UpdatedGrade(grade, gradeValue, description, ctx.Timestamp)
		return putGrade(updated)
	})
	if nil != err {
		return record.Grade{}, err
	}
	return updated, nil
}

// DeleteGrade - tombstone a grade issued by the caller
func DeleteGrade(ctx Context, gradeID string) error {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return err
	}

	return runWrite(func() error {
		grade, err := getValidatedGrade(ctx, gradeID)
		if nil != err {
			return err
		}
		deleteRecord(grade.ID)
		return nil
	})
}

// GetGrade - read one grade issued by the caller
func GetGrade(ctx Context, gradeID string) (record.Grade, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return record.Grade{}, err
	}
	return getValidatedGrade(ctx, gradeID)
}

// GetGradeHistory - full audit log of one grade issued by the caller
func GetGradeHistory(ctx Context, gradeID string) ([]GradeRevision, error) {
	err := ownership.RequireRole(ctx.Caller, record.RoleTeacher)
	if nil != err {
		return nil, err
	}
	_, err = getValidatedGrade(ctx, gradeID)
	if nil != err {
		return nil, err
	}
	return gradeHistory(gradeID)
}
