// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/storage"
)

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(filepath.Join(databaseDirectory, "other"), storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestReopenReadOnly(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData
	trx, _ := storage.NewDBTransaction()
	trx.Put(pool, testKey, testValue)
	_ = trx.Commit()

	storage.Finalise()

	err := storage.Initialise(filepath.Join(databaseDirectory, "test"), storage.ReadOnly)
	assert.Nil(t, err, "read-only open")
	assert.True(t, storage.IsReadOnly(), "not read only")
	assert.Equal(t, testValue, storage.Pool.TestData.Get(testKey), "data lost on reopen")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "write transaction in read-only mode")
}

func TestReadOnlyMissingDatabase(t *testing.T) {
	setup(t)
	defer teardown()
	storage.Finalise()

	err := storage.Initialise(filepath.Join(databaseDirectory, "missing"), storage.ReadOnly)
	assert.NotNil(t, err, "opened a missing database read-only")
}

func TestNoDatabase(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "transaction without database")
}
