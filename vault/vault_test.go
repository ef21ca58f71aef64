// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/gradechain/gradebookd/fault"
	"github.com/gradechain/gradebookd/record"
	"github.com/gradechain/gradebookd/storage"
	"github.com/gradechain/gradebookd/vault"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

var (
	admin      = record.Caller{ID: "root", Role: record.RoleAdmin}
	teacherOne = record.Caller{ID: "t1", Role: record.RoleTeacher}
	studentOne = record.Caller{ID: "s1", Role: record.RoleStudent}
	studentTwo = record.Caller{ID: "s2", Role: record.RoleStudent}
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = vault.Initialise()
	if nil != err {
		t.Fatalf("vault initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = vault.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// seed the vault with the standard identities
func seedProfiles(t *testing.T) {
	profiles := []struct {
		login string
		role  string
	}{
		{"t1", record.RoleTeacher},
		{"s1", record.RoleStudent},
		{"s2", record.RoleStudent},
	}
	for _, p := range profiles {
		_, err := vault.SetProfile(admin, p.login, p.role, map[string]string{"login": p.login})
		assert.Nil(t, err, "set profile error")
	}
}

func TestSetProfileAdminOnly(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := vault.SetProfile(teacherOne, "s1", record.RoleStudent, nil)
	assert.Equal(t, fault.ErrWrongRole, err, "teacher allowed to set profile")

	_, err = vault.SetProfile(studentOne, "s1", record.RoleStudent, nil)
	assert.Equal(t, fault.ErrWrongRole, err, "student allowed to set profile")

	identity, err := vault.SetProfile(admin, "s1", record.RoleStudent, map[string]string{"year": "2"})
	assert.Nil(t, err, "admin set profile error")
	assert.Equal(t, "s1", identity.Login, "wrong login")

	_, err = vault.SetProfile(admin, "x", "wizard", nil)
	assert.True(t, fault.IsErrInvalid(err), "unknown role accepted")
}

// a second write replaces the record in full, no field merge
func TestSetProfileFullReplace(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := vault.SetProfile(admin, "s1", record.RoleStudent, map[string]string{"year": "2", "group": "a"})
	assert.Nil(t, err, "set profile error")

	_, err = vault.SetProfile(admin, "s1", record.RoleStudent, map[string]string{"year": "3"})
	assert.Nil(t, err, "set profile error")

	profile, err := vault.GetProfile(studentOne, "s1")
	assert.Nil(t, err, "get profile error")
	assert.Equal(t, map[string]string{"year": "3"}, profile.Profile, "stale fields merged in")
}

func TestGetProfileAccessRules(t *testing.T) {
	setup(t)
	defer teardown(t)
	seedProfiles(t)

	// self access always allowed
	profile, err := vault.GetProfile(studentOne, "s1")
	assert.Nil(t, err, "self read refused")
	assert.Equal(t, "s1", profile.Login, "wrong profile")

	// anyone may read a teacher's profile
	_, err = vault.GetProfile(studentOne, "t1")
	assert.Nil(t, err, "teacher profile refused to student")

	// a student may never read another student's profile
	_, err = vault.GetProfile(studentOne, "s2")
	assert.Equal(t, fault.ErrProfileAccessDenied, err, "foreign student profile allowed")

	// non-students may read anything
	_, err = vault.GetProfile(teacherOne, "s2")
	assert.Nil(t, err, "teacher refused a student profile")
	_, err = vault.GetProfile(admin, "s2")
	assert.Nil(t, err, "admin refused a student profile")

	_, err = vault.GetProfile(studentOne, "unknown")
	assert.Equal(t, fault.ErrProfileNotFound, err, "absent profile found")
}

func TestListStudents(t *testing.T) {
	setup(t)
	defer teardown(t)
	seedProfiles(t)

	// a malformed record must be skipped, not fatal
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	storage.Pool.Identities.Put([]byte("corrupt"), []byte("not json"))
	assert.Nil(t, trx.Commit(), "commit error")

	students, err := vault.ListStudents(teacherOne)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 2, len(students), "wrong student count")
	for _, student := range students {
		assert.Equal(t, record.RoleStudent, student.Role, "non-student listed")
	}

	_, err = vault.ListStudents(studentOne)
	assert.Equal(t, fault.ErrWrongRole, err, "student allowed to list")
	_, err = vault.ListStudents(admin)
	assert.Equal(t, fault.ErrWrongRole, err, "admin allowed to list")
}

// ledger range scans can never surface identity records
func TestVaultIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)
	seedProfiles(t)

	seen := 0
	cursor := storage.Pool.Records.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		seen += 1
		return nil
	})
	assert.Nil(t, err, "cursor error")
	assert.Equal(t, 0, seen, "identity records leaked into the ledger")
}
