// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/captabled/fault"
)

// Transaction - the atomic unit of a single ledger operation
//
// reads see the committed store overlaid with this transaction's own
// pending writes; Commit writes every pending change at once and Abort
// discards them all
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Create(Handle, []byte, []byte) error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

type transaction struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(cache Cache) *transaction {
	return &transaction{
		inUse: false,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

// Begin - claim the transaction
func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

// InUse - true between Begin and Commit/Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Put - store a key/value bytes pair
func (t *transaction) Put(h Handle, key []byte, value []byte) {
	k := h.PrefixKey(key)
	t.cache.Set(DBPut, string(k), value)
	t.batch.Put(k, value)
}

// PutN - store a big endian uint64
func (t *transaction) PutN(h Handle, key []byte, value uint64) {
	t.Put(h, key, encodeN(value))
}

// Create - store a key/value pair that must not already exist
func (t *transaction) Create(h Handle, key []byte, value []byte) error {
	if t.Has(h, key) {
		return fault.RecordExists
	}
	t.Put(h, key, value)
	return nil
}

// Delete - remove a key
func (t *transaction) Delete(h Handle, key []byte) {
	k := h.PrefixKey(key)
	t.cache.Set(DBDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - read a value, pending writes first
//
// returns nil if the key was not found or is pending deletion
func (t *transaction) Get(h Handle, key []byte) []byte {
	value, op, found := t.cache.Get(string(h.PrefixKey(key)))
	if found {
		if DBDelete == op {
			return nil
		}
		return value
	}
	return h.Get(key)
}

// GetN - read a big endian uint64
func (t *transaction) GetN(h Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(h, key))
}

// Has - check if a key exists, pending writes first
func (t *transaction) Has(h Handle, key []byte) bool {
	_, op, found := t.cache.Get(string(h.PrefixKey(key)))
	if found {
		return DBPut == op
	}
	return h.Has(key)
}

// Commit - write the whole batch in one LevelDB write
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	poolData.RLock()
	db := poolData.db
	poolData.RUnlock()

	if nil == db {
		t.reset()
		return fault.DatabaseIsNotSet
	}

	err := db.Write(t.batch, &ldb_opt.WriteOptions{Sync: true})
	t.reset()
	return err
}

// Abort - discard all pending writes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
