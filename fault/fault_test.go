// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/gradechain/gradebookd/fault"
)

var (
	ErrExistsOne       = fault.ExistsError("exists one")
	ErrExistsTwo       = fault.ExistsError("exists two")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrInvalidTwo      = fault.InvalidError("invalid two")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrNotFoundTwo     = fault.NotFoundError("not found two")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrProcessTwo      = fault.ProcessError("process two")
	ErrRecordOne       = fault.RecordError("record one")
	ErrRecordTwo       = fault.RecordError("record two")
	ErrUnauthorizedOne = fault.UnauthorizedError("unauthorized one")
	ErrUnauthorizedTwo = fault.UnauthorizedError("unauthorized two")
	ErrValidationOne   = fault.ValidationError("validation one")
	ErrValidationTwo   = fault.ValidationError("validation two")
)

// test that the various error classes stay distinguishable
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err          error
		exists       bool
		invalid      bool
		notFound     bool
		process      bool
		record       bool
		unauthorized bool
		validation   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false, false, false},
		{ErrNotFoundTwo, false, false, true, false, false, false, false},
		{ErrProcessOne, false, false, false, true, false, false, false},
		{ErrProcessTwo, false, false, false, true, false, false, false},
		{ErrRecordOne, false, false, false, false, true, false, false},
		{ErrRecordTwo, false, false, false, false, true, false, false},
		{ErrUnauthorizedOne, false, false, false, false, false, true, false},
		{ErrUnauthorizedTwo, false, false, false, false, false, true, false},
		{ErrValidationOne, false, false, false, false, false, false, true},
		{ErrValidationTwo, false, false, false, false, false, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists mismatch for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid mismatch for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found mismatch for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process mismatch for: %v", i, item.err)
		}
		if fault.IsErrRecord(item.err) != item.record {
			t.Errorf("%d: record mismatch for: %v", i, item.err)
		}
		if fault.IsErrUnauthorized(item.err) != item.unauthorized {
			t.Errorf("%d: unauthorized mismatch for: %v", i, item.err)
		}
		if fault.IsErrValidation(item.err) != item.validation {
			t.Errorf("%d: validation mismatch for: %v", i, item.err)
		}
	}
}

// ensure error messages surface unchanged
func TestErrorMessages(t *testing.T) {
	if fault.ErrWrongRole.Error() != "user does not have the required role" {
		t.Errorf("unexpected message: %q", fault.ErrWrongRole.Error())
	}
	if fault.ErrStudentNotEnrolled.Error() != "student does not belong to subject" {
		t.Errorf("unexpected message: %q", fault.ErrStudentNotEnrolled.Error())
	}
}
