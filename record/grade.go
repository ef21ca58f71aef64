// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"

	"github.com/gradechain/gradebookd/fault"
)

// Grade - an issued grade; subject and student references are encoded
// in the key segments, Issuer is immutable after creation
type Grade struct {
	ID          string `json:"ID"`
	Issuer      string `json:"issuer"`
	UpdatedAt   int64  `json:"updatedAt"`
	CreatedAt   int64  `json:"createdAt"`
	Grade       string `json:"grade"`
	Description string `json:"description"`
}

// canonical creation payload, the hashed form
type gradePayload struct {
	Issuer      string `json:"issuer"`
	UpdatedAt   int64  `json:"updatedAt"`
	CreatedAt   int64  `json:"createdAt"`
	Grade       string `json:"grade"`
	Description string `json:"description"`
}

// NewGrade - build a grade record at creation time, ID unset
func NewGrade(issuer string, grade string, description string, timestamp int64) Grade {
	return Grade{
		ID:          "",
		Issuer:      issuer,
		UpdatedAt:   timestamp,
		CreatedAt:   timestamp,
		Grade:       grade,
		Description: description,
	}
}

// UpdatedGrade - build the next revision of a grade
//
// ID, Issuer and CreatedAt always come from the base record
func UpdatedGrade(base Grade, grade string, description string, timestamp int64) Grade {
	return Grade{
		ID:          base.ID,
		Issuer:      base.Issuer,
		UpdatedAt:   timestamp,
		CreatedAt:   base.CreatedAt,
		Grade:       grade,
		Description: description,
	}
}

// WithID - copy of the grade carrying its derived key
func (grade Grade) WithID(id string) Grade {
	grade.ID = id
	return grade
}

// CanonicalPayload - the byte sequence the grade key is derived from
func (grade Grade) CanonicalPayload() ([]byte, error) {
	return json.Marshal(gradePayload{
		Issuer:      grade.Issuer,
		UpdatedAt:   grade.UpdatedAt,
		CreatedAt:   grade.CreatedAt,
		Grade:       grade.Grade,
		Description: grade.Description,
	})
}

// Pack - serialise for ledger storage
func (grade Grade) Pack() ([]byte, error) {
	return json.Marshal(grade)
}

// UnpackGrade - deserialise and validate a stored grade
func UnpackGrade(data []byte) (Grade, error) {
	var grade Grade
	err := json.Unmarshal(data, &grade)
	if nil != err {
		return Grade{}, fault.RecordError("grade: " + err.Error())
	}
	if "" == grade.ID {
		return Grade{}, fault.RecordError("grade: missing ID")
	}
	if "" == grade.Issuer {
		return Grade{}, fault.RecordError("grade: missing issuer")
	}
	return grade, nil
}
