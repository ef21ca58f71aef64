// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/gradechain/gradebookd/fault"
)

// ErrStopIteration - sentinel for Map callbacks to stop a scan early
//
// not a failure: the cursor is still released and the caller decides
// what the partial result means
var ErrStopIteration = errors.New("stop iteration")

// FetchCursor - forward-only, non-restartable view of a key range
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor over the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// NewFetchCursorRange - initialise a cursor over [start, end)
// within the pool
func (p *PoolHandle) NewFetchCursorRange(start []byte, end []byte) *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: p.prefixKey(start),
			Limit: p.prefixKey(end),
		},
	}
}

// Map - run a function on all elements in the range, in key order
//
// the underlying iterator is released on every exit path; a non-nil
// error from f stops the iteration early and is returned unchanged
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	if nil == cursor.pool.dataAccess {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
