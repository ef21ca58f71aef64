// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/gradechain/gradebookd/fault"
)

// caller role attribute values
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Caller - the identity invoking an operation
//
// supplied per-operation by the invoking runtime; read-only input,
// never cached across operations
type Caller struct {
	ID   string
	Role string
}

// ValidRole - check a role attribute value is one of the known roles
func ValidRole(role string) error {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return nil
	default:
		return fault.ErrInvalidRole
	}
}
