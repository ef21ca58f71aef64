// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradechain/gradebookd/storage"
)

// create + two updates must leave exactly three ordered revisions
func TestRecordHistory(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("subject.abc123")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	storage.PutRecord(key, []byte("revision zero"))
	assert.Nil(t, trx.Commit(), "commit error")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	storage.PutRecord(key, []byte("revision one"))
	assert.Nil(t, trx.Commit(), "commit error")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	storage.PutRecord(key, []byte("revision two"))
	assert.Nil(t, trx.Commit(), "commit error")

	history, err := storage.RecordHistory(key)
	assert.Nil(t, err, "history error")
	assert.Equal(t, 3, len(history), "wrong revision count")

	expected := []string{"revision zero", "revision one", "revision two"}
	for i, revision := range history {
		assert.Equal(t, uint64(i), revision.SeqNo, "wrong sequence number")
		assert.Equal(t, expected[i], string(revision.Data), "wrong revision data")
		assert.False(t, revision.Deleted, "unexpected tombstone")
	}
}

// a delete keeps the log and appends a tombstone
func TestRecordHistoryTombstone(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("grade.h.s1.g")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	storage.PutRecord(key, []byte("created"))
	assert.Nil(t, trx.Commit(), "commit error")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	storage.DeleteRecord(key)
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Nil(t, storage.Pool.Records.Get(key), "record not removed")

	history, err := storage.RecordHistory(key)
	assert.Nil(t, err, "history error")
	assert.Equal(t, 2, len(history), "wrong revision count")
	assert.False(t, history[0].Deleted, "create marked deleted")
	assert.True(t, history[1].Deleted, "delete not marked")
}

// revision logs of different keys must stay separate even when one
// key is a prefix of another
func TestRecordHistoryKeyIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	storage.PutRecord([]byte("subject.ab"), []byte("short"))
	storage.PutRecord([]byte("subject.abcd"), []byte("long"))
	assert.Nil(t, trx.Commit(), "commit error")

	history, err := storage.RecordHistory([]byte("subject.ab"))
	assert.Nil(t, err, "history error")
	assert.Equal(t, 1, len(history), "prefix key sees foreign revisions")
	assert.Equal(t, "short", string(history[0].Data), "wrong revision data")
}
