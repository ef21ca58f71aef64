// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"

	"github.com/gradechain/gradebookd/fault"
)

// UserIdentity - a per-user profile record in the identity vault
//
// keyed by login in a namespace physically isolated from the general
// ledger, never range-scannable by students
type UserIdentity struct {
	Login   string            `json:"login"`
	Role    string            `json:"role"`
	Profile map[string]string `json:"profile"`
}

// NewUserIdentity - build a profile record, full replacement semantics
func NewUserIdentity(login string, role string, profile map[string]string) UserIdentity {
	if nil == profile {
		profile = map[string]string{}
	}
	return UserIdentity{
		Login:   login,
		Role:    role,
		Profile: profile,
	}
}

// Pack - serialise for vault storage
func (identity UserIdentity) Pack() ([]byte, error) {
	return json.Marshal(identity)
}

// UnpackUserIdentity - deserialise and validate a stored profile
func UnpackUserIdentity(data []byte) (UserIdentity, error) {
	var identity UserIdentity
	err := json.Unmarshal(data, &identity)
	if nil != err {
		return UserIdentity{}, fault.RecordError("identity: " + err.Error())
	}
	if "" == identity.Login {
		return UserIdentity{}, fault.RecordError("identity: missing login")
	}
	if err := ValidRole(identity.Role); nil != err {
		return UserIdentity{}, fault.RecordError("identity: invalid role")
	}
	return identity, nil
}
