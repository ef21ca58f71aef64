// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/gradechain/gradebookd/contract"
	"github.com/gradechain/gradebookd/record"
	"github.com/gradechain/gradebookd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

var (
	teacherOne = record.Caller{ID: "t1", Role: record.RoleTeacher}
	teacherTwo = record.Caller{ID: "t2", Role: record.RoleTeacher}
	studentOne = record.Caller{ID: "s1", Role: record.RoleStudent}
	studentTwo = record.Caller{ID: "s2", Role: record.RoleStudent}
)

// context at a fixed logical timestamp
func at(caller record.Caller, timestamp int64) contract.Context {
	return contract.Context{
		Caller:    caller,
		Timestamp: timestamp,
	}
}

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

	err = contract.Initialise()
	if nil != err {
		t.Fatalf("contract initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = contract.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}
