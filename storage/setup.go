// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/gradechain/gradebookd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Records       *PoolHandle `prefix:"R" database:"ledger"`
	Versions      *PoolHandle `prefix:"V" database:"ledger"`
	VersionCounts *PoolHandle `prefix:"C" database:"ledger"`
	Identities    *PoolHandle `prefix:"I" database:"vault"`
	TestData      *PoolHandle `prefix:"Z" database:"ledger"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentLedgerDBVersion = 0x100
	currentVaultDBVersion  = 0x100
)

// holds the database handles
var poolData struct {
	sync.RWMutex
	log      *logger.L
	dbLedger *leveldb.DB
	dbVault  *leveldb.DB
	cache    Cache
	trx      Transaction
}

// Initialise - open up the database connections
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.dbLedger {
		return fault.ErrAlreadyInitialised
	}

	poolData.log = logger.New("storage")
	poolData.log.Info("starting…")

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	ledgerDatabase := database + "-ledger.leveldb"
	vaultDatabase := database + "-vault.leveldb"

	db, version, err := getDB(ledgerDatabase)
	if nil != err {
		return err
	}
	poolData.dbLedger = db

	// ensure no database downgrade
	if version > currentLedgerDBVersion {
		poolData.log.Criticalf("ledger database version: %d > current version: %d", version, currentLedgerDBVersion)
		return fmt.Errorf("ledger database version: %d > current version: %d", version, currentLedgerDBVersion)
	} else if 0 == version {
		// database was empty so tag as current version
		err = putVersion(poolData.dbLedger, currentLedgerDBVersion)
		if nil != err {
			return err
		}
	}

	db, version, err = getDB(vaultDatabase)
	if nil != err {
		return err
	}
	poolData.dbVault = db

	if version > currentVaultDBVersion {
		poolData.log.Criticalf("vault database version: %d > current version: %d", version, currentVaultDBVersion)
		return fmt.Errorf("vault database version: %d > current version: %d", version, currentVaultDBVersion)
	} else if 0 == version {
		err = putVersion(poolData.dbVault, currentVaultDBVersion)
		if nil != err {
			return err
		}
	}

	poolData.cache = newCache()
	ledgerAccess := newDA(poolData.dbLedger, new(leveldb.Batch), poolData.cache)
	vaultAccess := newDA(poolData.dbVault, new(leveldb.Batch), poolData.cache)
	poolData.trx = newTransaction([]Access{ledgerAccess, vaultAccess})

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		var dataAccess Access
		switch dbName := fieldInfo.Tag.Get("database"); dbName {
		case "ledger":
			dataAccess = ledgerAccess
		case "vault":
			dataAccess = vaultAccess
		default:
			return fmt.Errorf("pool: %v has invalid database: %q", fieldInfo, dbName)
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: dataAccess,
		}

		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.dbVault {
		poolData.dbVault.Close()
		poolData.dbVault = nil
	}
	if nil != poolData.dbLedger {
		poolData.dbLedger.Close()
		poolData.dbLedger = nil
	}
}

// Finalise - close the database connections
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string) (*leveldb.DB, int, error) {
	db, err := leveldb.OpenFile(name, nil)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - begin a transaction covering both databases
func NewDBTransaction() (Transaction, error) {
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}
