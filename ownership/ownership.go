// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - role and ownership validation
//
// Pure functions of the caller and a target entity or key; none of
// them touch the ledger.  Every write path applies them in the same
// order: role first, which needs no ledger access, then the
// load-then-ownership check only when the target must already exist.
// An unauthorized role therefore learns nothing about whether the
// target exists.
package ownership

import (
	"github.com/gradechain/gradebookd/fault"
	"github.com/gradechain/gradebookd/keyspace"
	"github.com/gradechain/gradebookd/record"
)

// RequireRole - the caller's role attribute must match exactly
func RequireRole(caller record.Caller, role string) error {
	if caller.Role != role {
		return fault.ErrWrongRole
	}
	return nil
}

// RequireSubjectLeader - only the recorded leader owns a subject
func RequireSubjectLeader(subject record.Subject, caller record.Caller) error {
	if subject.Leader != caller.ID {
		return fault.ErrNotSubjectLeader
	}
	return nil
}

// RequireSubjectMember - the caller must be in the member list
func RequireSubjectMember(subject record.Subject, caller record.Caller) error {
	if !subject.IsMember(caller.ID) {
		return fault.ErrNotSubjectMember
	}
	return nil
}

// RequireGradeIssuer - only the issuing teacher owns a grade
func RequireGradeIssuer(grade record.Grade, caller record.Caller) error {
	if grade.Issuer != caller.ID {
		return fault.ErrNotGradeIssuer
	}
	return nil
}

// RequireGradeOwner - the caller must be the student segment of the
// grade key
//
// this is a pure key parse, usable before any ledger read
func RequireGradeOwner(gradeKey string, caller record.Caller) error {
	owner, err := keyspace.OwnerStudentOf(gradeKey)
	if nil != err {
		return err
	}
	if owner != caller.ID {
		return fault.ErrNotGradeOwner
	}
	return nil
}
