// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/gradechain/gradebookd/fault"
	"github.com/gradechain/gradebookd/record"
	"github.com/gradechain/gradebookd/storage"
)

// Context - per-operation input from the invoking runtime
//
// Timestamp is the logical transaction clock in milliseconds, never
// read from the wall clock inside an operation so that re-execution
// stays deterministic
type Context struct {
	Caller    record.Caller
	Timestamp int64
}

var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the operation layer
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("contract")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the operation layer
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

// run buffered writes as one all-or-nothing unit
//
// any error aborts the whole operation and discards every buffered
// write, so no partial result is ever committed
func runWrite(f func() error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = f()
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}
