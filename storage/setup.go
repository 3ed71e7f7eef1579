// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Issuers                     Handle `prefix:"I"`
	Authorities                 Handle `prefix:"U"`
	StockClasses                Handle `prefix:"C"`
	Stakeholders                Handle `prefix:"S"`
	StockPlans                  Handle `prefix:"P"`
	StockPositions              Handle `prefix:"K"`
	StockClassIndex             Handle `prefix:"X"`
	ConvertiblePositions        Handle `prefix:"V"`
	EquityCompensationPositions Handle `prefix:"Q"`
	WarrantPositions            Handle `prefix:"W"`
	Events                      Handle `prefix:"E"`
	EventCount                  Handle `prefix:"N"`
	TestData                    Handle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	log      *logger.L
	db       *leveldb.DB
	readOnly bool
	trx      *transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	poolData.log = logger.New("storage")

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	name := database + ".leveldb"
	db, version, err := getDB(name, readOnly)
	if nil != err {
		poolData.log.Errorf("open database: %q  error: %s", name, err)
		return err
	}
	poolData.db = db
	poolData.readOnly = readOnly

	// ensure no database downgrade
	if version > currentDBVersion {
		poolData.log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fault.IncompatibleDatabase
	}

	if 0 == version {
		if readOnly {
			poolData.log.Criticalf("read-only database: %q has no version", name)
			return fault.IncompatibleDatabase
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return err
		}
	}

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

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	poolData.trx = newTransaction(newCache())

	poolData.log.Infof("opened: %q  version: 0x%x  read only: %t", name, currentDBVersion, readOnly)

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.trx = nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	if nil != poolData.log {
		poolData.log.Info("finished")
		poolData.log.Flush()
	}
	poolData.Unlock()
}

// IsReadOnly - true if opened without write access
func IsReadOnly() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.readOnly
}

// NewDBTransaction - start the single write transaction
//
// fails if the previous transaction was neither committed nor aborted
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	readOnly := poolData.readOnly
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.DatabaseIsNotSet
	}
	if readOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}

	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
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
