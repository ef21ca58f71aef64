// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - the isolated identity namespace
//
// Profile records live in their own database, so no range scan over
// subjects or grades can ever surface one.  Access rules:
//
//	SetProfile    admin only, full record replacement
//	GetProfile    self always; otherwise a teacher's profile is
//	              readable by anyone and everything else only by a
//	              non-student
//	ListStudents  teacher only
package vault

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/gradechain/gradebookd/fault"
	"github.com/gradechain/gradebookd/ownership"
	"github.com/gradechain/gradebookd/record"
	"github.com/gradechain/gradebookd/storage"
)

var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the vault access layer
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("vault")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the vault access layer
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// SetProfile - write a profile record, replacing any existing record
// in full; no partial-field merge
func SetProfile(caller record.Caller, login string, role string, profile map[string]string) (record.UserIdentity, error) {
	err := ownership.RequireRole(caller, record.RoleAdmin)
	if nil != err {
		return record.UserIdentity{}, err
	}
	err = record.ValidRole(role)
	if nil != err {
		return record.UserIdentity{}, err
	}

	identity := record.NewUserIdentity(login, role, profile)
	packed, err := identity.Pack()
	if nil != err {
		return record.UserIdentity{}, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return record.UserIdentity{}, err
	}
	storage.Pool.Identities.Put([]byte(login), packed)
	err = trx.Commit()
	if nil != err {
		return record.UserIdentity{}, err
	}
	return identity, nil
}

// GetProfile - read one profile record
//
// students may read only their own profile or any teacher's profile,
// never another student's
func GetProfile(caller record.Caller, login string) (record.UserIdentity, error) {
	data := storage.Pool.Identities.Get([]byte(login))
	if nil == data {
		return record.UserIdentity{}, fault.ErrProfileNotFound
	}
	identity, err := record.UnpackUserIdentity(data)
	if nil != err {
		return record.UserIdentity{}, err
	}

	if caller.ID == login {
		return identity, nil
	}
	if record.RoleTeacher == identity.Role {
		return identity, nil
	}
	if record.RoleStudent != caller.Role {
		return identity, nil
	}
	return record.UserIdentity{}, fault.ErrProfileAccessDenied
}

// ListStudents - every valid student profile in the vault
//
// malformed records are logged and skipped, same tolerance policy as
// ledger range scans
func ListStudents(caller record.Caller) ([]record.UserIdentity, error) {
	err := ownership.RequireRole(caller, record.RoleTeacher)
	if nil != err {
		return nil, err
	}

	students := []record.UserIdentity{}
	cursor := storage.Pool.Identities.NewFetchCursor()
	err = cursor.Map(func(key []byte, value []byte) error {
		identity, err := record.UnpackUserIdentity(value)
		if nil != err {
			globalData.log.Warnf("list: skipping malformed profile %q: %s", key, err)
			return nil
		}
		if record.RoleStudent == identity.Role {
			students = append(students, identity)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return students, nil
}
