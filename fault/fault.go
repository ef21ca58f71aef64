// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type UnauthorizedError GenericError
type ValidationError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrGradeAlreadyExists     = ExistsError("grade with that id already exists")
	ErrGradeNotFound          = NotFoundError("grade does not exist")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidGradeKey        = InvalidError("incorrect grade id")
	ErrInvalidKey             = InvalidError("incorrect id")
	ErrInvalidRole            = InvalidError("invalid role")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidSubjectKey      = InvalidError("incorrect subject id")
	ErrKeyNotGrade            = InvalidError("id is not a grade")
	ErrKeyNotSubject          = InvalidError("id is not a subject")
	ErrNotGradeIssuer         = UnauthorizedError("user is not the issuer of the grade")
	ErrNotGradeOwner          = UnauthorizedError("user is not the owner of the grade")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrNotSubjectLeader       = UnauthorizedError("user is not the leader of the subject")
	ErrNotSubjectMember       = UnauthorizedError("user is not a member of the subject")
	ErrProfileAccessDenied    = UnauthorizedError("user may not read this profile")
	ErrProfileNotFound        = NotFoundError("profile does not exist")
	ErrStudentNotEnrolled     = ValidationError("student does not belong to subject")
	ErrSubjectAlreadyExists   = ExistsError("subject with that id already exists")
	ErrSubjectNotFound        = NotFoundError("subject does not exist")
	ErrTransactionAlreadyBusy = ProcessError("transaction already in use")
	ErrWrongRole              = UnauthorizedError("user does not have the required role")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e RecordError) Error() string       { return string(e) }
func (e UnauthorizedError) Error() string { return string(e) }
func (e ValidationError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool       { _, ok := e.(RecordError); return ok }
func IsErrUnauthorized(e error) bool { _, ok := e.(UnauthorizedError); return ok }
func IsErrValidation(e error) bool   { _, ok := e.(ValidationError); return ok }
