// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - all-or-nothing write grouping across both databases
//
// one operation runs inside one transaction: either the commit makes
// every buffered write durable or the abort discards them all
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

type TransactionImpl struct {
	sync.Mutex
	inUse      bool
	dataAccess []Access
}

func newTransaction(access []Access) Transaction {
	return &TransactionImpl{
		inUse:      false,
		dataAccess: access,
	}
}

func (t *TransactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.dataAccess {
		err := access.Begin()
		if nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.dataAccess {
		err := access.Commit()
		if nil != err {
			return err
		}
	}

	t.inUse = false
	return nil
}

func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.dataAccess {
		access.Abort()
	}
	poolData.cache.Clear()

	t.inUse = false
}

func (t *TransactionImpl) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}
