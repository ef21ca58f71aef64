// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"

	"github.com/gradechain/gradebookd/fault"
)

// Subject - a taught subject with its leader and member students
//
// Leader is immutable after creation; only the leader may mutate or
// delete the subject, membership changes only via a full update
type Subject struct {
	ID          string   `json:"ID"`
	Leader      string   `json:"leader"`
	UpdatedAt   int64    `json:"updatedAt"`
	CreatedAt   int64    `json:"createdAt"`
	Students    []string `json:"students"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// canonical creation payload, the hashed form
//
// field order matters: it fixes the JSON serialisation the content
// address is derived from
type subjectPayload struct {
	Leader      string   `json:"leader"`
	UpdatedAt   int64    `json:"updatedAt"`
	CreatedAt   int64    `json:"createdAt"`
	Students    []string `json:"students"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// NewSubject - build a subject record at creation time, ID unset
func NewSubject(leader string, name string, description string, students []string, timestamp int64) Subject {
	if nil == students {
		students = []string{}
	}
	return Subject{
		ID:          "",
		Leader:      leader,
		UpdatedAt:   timestamp,
		CreatedAt:   timestamp,
		Students:    students,
		Name:        name,
		Description: description,
	}
}

// UpdatedSubject - build the next revision of a subject
//
// ID, Leader and CreatedAt always come from the base record
func UpdatedSubject(base Subject, name string, description string, students []string, timestamp int64) Subject {
	if nil == students {
		students = []string{}
	}
	return Subject{
		ID:          base.ID,
		Leader:      base.Leader,
		UpdatedAt:   timestamp,
		CreatedAt:   base.CreatedAt,
		Students:    students,
		Name:        name,
		Description: description,
	}
}

// WithID - copy of the subject carrying its derived key
func (subject Subject) WithID(id string) Subject {
	subject.ID = id
	return subject
}

// CanonicalPayload - the byte sequence the subject key is derived from
func (subject Subject) CanonicalPayload() ([]byte, error) {
	return json.Marshal(subjectPayload{
		Leader:      subject.Leader,
		UpdatedAt:   subject.UpdatedAt,
		CreatedAt:   subject.CreatedAt,
		Students:    subject.Students,
		Name:        subject.Name,
		Description: subject.Description,
	})
}

// Pack - serialise for ledger storage
func (subject Subject) Pack() ([]byte, error) {
	return json.Marshal(subject)
}

// IsMember - membership is tested by containment, order irrelevant
func (subject Subject) IsMember(student string) bool {
	for _, member := range subject.Students {
		if member == student {
			return true
		}
	}
	return false
}

// UnpackSubject - deserialise and validate a stored subject
func UnpackSubject(data []byte) (Subject, error) {
	var subject Subject
	err := json.Unmarshal(data, &subject)
	if nil != err {
		return Subject{}, fault.RecordError("subject: " + err.Error())
	}
	if "" == subject.ID {
		return Subject{}, fault.RecordError("subject: missing ID")
	}
	if "" == subject.Leader {
		return Subject{}, fault.RecordError("subject: missing leader")
	}
	return subject, nil
}
