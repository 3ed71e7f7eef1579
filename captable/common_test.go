// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/captable"
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fixtures"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/messagebus"
	"github.com/bitmark-inc/captabled/storage"
)

var databaseDirectory string

var (
	owner    = makePrincipal(0x11)
	intruder = makePrincipal(0x22)
)

func makePrincipal(b byte) authority.Principal {
	p := authority.Principal{}
	for i := range p {
		p[i] = b
	}
	return p
}

func setup(t *testing.T) captable.CapTable {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "captabled-captable")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	databaseDirectory = dir

	err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = captable.Initialise()
	if nil != err {
		t.Fatalf("captable initialise error: %s", err)
	}

	drainEvents()

	return captable.Get()
}

func teardown() {
	_ = captable.Finalise()
	storage.Finalise()
	_ = os.RemoveAll(databaseDirectory)
	fixtures.TeardownTestLogger()
}

// discard queued notifications from earlier tests
func drainEvents() {
	for {
		select {
		case <-messagebus.Bus.Events.Chan():
		default:
			return
		}
	}
}

// a basic cap table: issuer, one class and one stakeholder
type basic struct {
	issuerId      identifier.Identifier
	stockClassId  identifier.Identifier
	stakeholderId identifier.Identifier
}

func makeBasic(t *testing.T, ct captable.CapTable, issuerAuthorized uint64, classAuthorized uint64) basic {
	b := basic{
		issuerId:      identifier.New(),
		stockClassId:  identifier.New(),
		stakeholderId: identifier.New(),
	}

	_, err := ct.InitializeIssuer(owner, b.issuerId, issuerAuthorized)
	if nil != err {
		t.Fatalf("initialize issuer error: %s", err)
	}
	_, err = ct.CreateStockClass(owner, b.issuerId, b.stockClassId, "COMMON", 10, classAuthorized)
	if nil != err {
		t.Fatalf("create stock class error: %s", err)
	}
	_, err = ct.CreateStakeholder(owner, b.issuerId, b.stakeholderId)
	if nil != err {
		t.Fatalf("create stakeholder error: %s", err)
	}
	return b
}

// the sum of every indexed position of a class
func classTotal(t *testing.T, ct captable.CapTable, stockClassId identifier.Identifier) uint64 {
	total := uint64(0)
	positions, err := ct.StockClassPositions(stockClassId, nil, 1000)
	if nil != err {
		t.Fatalf("class positions error: %s", err)
	}
	for _, p := range positions {
		total += p.Quantity
	}
	return total
}

// fail unless the log holds exactly n events
func assertEventCount(t *testing.T, n uint64, message string) {
	assert.Equal(t, n, event.Count(), message)
}
