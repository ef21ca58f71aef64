// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/gradechain/gradebookd/storage/mocks"
)

const (
	accessDBName = "testing-access.leveldb"
	defaultKey   = "key"
)

var defaultValue = []byte{'a'}

func newMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	ctl := gomock.NewController(t)
	return mocks.NewMockCache(ctl), ctl
}

func newTestAccess(t *testing.T, cache Cache) (Access, *leveldb.DB, func()) {
	db, err := leveldb.OpenFile(accessDBName, nil)
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	access := newDA(db, new(leveldb.Batch), cache)
	return access, db, func() {
		db.Close()
		os.RemoveAll(accessDBName)
	}
}

func TestAccessPutGoesToCacheAndBatch(t *testing.T) {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	access, _, cleanup := newTestAccess(t, mockCache)
	defer cleanup()

	mockCache.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)

	access.Put([]byte(defaultKey), defaultValue)
}

func TestAccessGetPrefersCache(t *testing.T) {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	access, _, cleanup := newTestAccess(t, mockCache)
	defer cleanup()

	mockCache.EXPECT().Deleted(defaultKey).Return(false).Times(1)
	mockCache.EXPECT().Get(defaultKey).Return(defaultValue, true).Times(1)

	value, err := access.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, value, "wrong cached value")
}

func TestAccessGetHidesBufferedDelete(t *testing.T) {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	access, db, cleanup := newTestAccess(t, mockCache)
	defer cleanup()

	// a stale value on disk must stay hidden
	err := db.Put([]byte(defaultKey), defaultValue, nil)
	assert.Nil(t, err, "database put error")

	mockCache.EXPECT().Deleted(defaultKey).Return(true).Times(1)

	_, err = access.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "buffered delete not hidden")
}

func TestAccessGetFallsThroughToDatabase(t *testing.T) {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	access, db, cleanup := newTestAccess(t, mockCache)
	defer cleanup()

	err := db.Put([]byte(defaultKey), defaultValue, nil)
	assert.Nil(t, err, "database put error")

	mockCache.EXPECT().Deleted(defaultKey).Return(false).Times(1)
	mockCache.EXPECT().Get(defaultKey).Return([]byte{}, false).Times(1)

	value, err := access.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, value, "wrong database value")
}

func TestAccessCommitWritesBatch(t *testing.T) {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	access, db, cleanup := newTestAccess(t, mockCache)
	defer cleanup()

	mockCache.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)

	assert.Nil(t, access.Begin(), "begin error")
	access.Put([]byte(defaultKey), defaultValue)
	assert.Nil(t, access.Commit(), "commit error")

	value, err := db.Get([]byte(defaultKey), nil)
	assert.Nil(t, err, "database get error")
	assert.Equal(t, defaultValue, value, "commit did not reach disk")
	assert.False(t, access.InUse(), "access still in use after commit")
}

func TestAccessBeginWhileBusy(t *testing.T) {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	access, _, cleanup := newTestAccess(t, mockCache)
	defer cleanup()

	assert.Nil(t, access.Begin(), "begin error")
	assert.NotNil(t, access.Begin(), "nested begin not rejected")
	access.Abort()
	assert.Nil(t, access.Begin(), "begin after abort error")
	access.Abort()
}
