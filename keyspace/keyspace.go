// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyspace

import (
	"strings"

	"github.com/gradechain/gradebookd/fault"
)

// key segment separator and its lexicographic successor
//
// '/' is the ASCII character immediately after '.', so the range
// [P+".", P+"/") covers exactly the keys below prefix P
const (
	Separator          = "."
	separatorSuccessor = "/"
)

// record type names, the first key segment
const (
	TypeSubject = "subject"
	TypeGrade   = "grade"
)

// DeriveSubjectID - derive a content-addressed subject key from the
// canonical serialisation of its creation-time payload
func DeriveSubjectID(canonicalPayload []byte) string {
	return TypeSubject + Separator + NewDigest(canonicalPayload).String()
}

// DeriveGradeID - derive a content-addressed grade key
//
// the subject hash segment is extracted from the owning subject's key,
// the student segment is the literal student identity
func DeriveGradeID(subjectKey string, studentID string, canonicalPayload []byte) (string, error) {
	subjectHash, err := SubjectHashOf(subjectKey)
	if nil != err {
		return "", err
	}
	return TypeGrade + Separator + subjectHash + Separator + studentID +
		Separator + NewDigest(canonicalPayload).String(), nil
}

// TypeOf - the record type of a key, its first dot-segment
func TypeOf(key string) (string, error) {
	segments := strings.Split(key, Separator)
	if len(segments) < 2 {
		return "", fault.ErrInvalidKey
	}
	return segments[0], nil
}

// SubjectHashOf - the subject hash segment of a subject or grade key
func SubjectHashOf(key string) (string, error) {
	segments := strings.Split(key, Separator)
	if len(segments) < 2 {
		return "", fault.ErrInvalidSubjectKey
	}
	return segments[1], nil
}

// OwnerStudentOf - the owning student segment of a grade key
//
// only a full 4-segment grade key carries an owner
func OwnerStudentOf(gradeKey string) (string, error) {
	segments := strings.Split(gradeKey, Separator)
	if 4 != len(segments) {
		return "", fault.ErrInvalidGradeKey
	}
	return segments[2], nil
}

// RangeEnd - the exclusive upper bound scanning everything below a
// dot-terminated prefix
//
// all range callers must derive their bound here or prefixes will
// silently under/over-match
func RangeEnd(prefix string) string {
	if strings.HasSuffix(prefix, Separator) {
		return prefix[:len(prefix)-1] + separatorSuccessor
	}
	return prefix + separatorSuccessor
}

// SubjectPrefix - range prefix covering all subjects
func SubjectPrefix() string {
	return TypeSubject + Separator
}

// GradePrefix - range prefix covering all grades of one subject
func GradePrefix(subjectHash string) string {
	return TypeGrade + Separator + subjectHash + Separator
}

// StudentGradePrefix - range prefix covering one student's grades
// within one subject
func StudentGradePrefix(subjectHash string, studentID string) string {
	return TypeGrade + Separator + subjectHash + Separator + studentID + Separator
}
