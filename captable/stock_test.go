// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/messagebus"
	"github.com/bitmark-inc/captabled/record"
)

func TestIssueStockScenario(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)
	sec1 := identifier.New()
	sec2 := identifier.New()

	_, err := ct.IssueStock(owner, b.stockClassId, sec1, 200, 10, b.stakeholderId)
	assert.Nil(t, err, "first issue")

	class, _ := ct.StockClass(b.stockClassId)
	assert.Equal(t, uint64(200), class.SharesIssued, "class issued")
	issuer, _ := ct.Issuer(b.issuerId)
	assert.Equal(t, uint64(200), issuer.SharesIssued, "issuer issued")

	_, err = ct.IssueStock(owner, b.stockClassId, sec2, 400, 10, b.stakeholderId)
	assert.Equal(t, fault.InsufficientShares, err, "over class limit")

	class, _ = ct.StockClass(b.stockClassId)
	assert.Equal(t, uint64(200), class.SharesIssued, "class issued after failure")
	issuer, _ = ct.Issuer(b.issuerId)
	assert.Equal(t, uint64(200), issuer.SharesIssued, "issuer issued after failure")

	_, err = ct.StockPosition(record.PositionKey{StakeholderId: b.stakeholderId, SecurityId: sec2})
	assert.Equal(t, fault.PositionNotFound, err, "failed issue left a position")

	position, err := ct.StockPosition(record.PositionKey{StakeholderId: b.stakeholderId, SecurityId: sec1})
	assert.Nil(t, err, "read position")
	assert.Equal(t, uint64(200), position.Quantity, "quantity")
	assert.Equal(t, uint64(10), position.SharePrice, "price")
	assert.Equal(t, b.stockClassId, position.StockClassId, "class")
}

func TestIssueStockZeroQuantityChangesNothing(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)
	_, err := ct.IssueStock(owner, b.stockClassId, identifier.New(), 10, 1, b.stakeholderId)
	assert.Nil(t, err, "issue")

	before := event.Count()
	classBefore, _ := ct.StockClass(b.stockClassId)
	issuerBefore, _ := ct.Issuer(b.issuerId)

	securityId := identifier.New()
	_, err = ct.IssueStock(owner, b.stockClassId, securityId, 0, 1, b.stakeholderId)
	assert.Equal(t, fault.InvalidQuantity, err, "zero quantity")

	_, err = ct.IssueStock(owner, b.stockClassId, securityId, 5, 0, b.stakeholderId)
	assert.Equal(t, fault.InvalidSharePrice, err, "zero price")

	classAfter, _ := ct.StockClass(b.stockClassId)
	issuerAfter, _ := ct.Issuer(b.issuerId)
	assert.Equal(t, classBefore, classAfter, "class changed")
	assert.Equal(t, issuerBefore, issuerAfter, "issuer changed")
	assertEventCount(t, before, "event appended")

	_, err = ct.StockPosition(record.PositionKey{StakeholderId: b.stakeholderId, SecurityId: securityId})
	assert.Equal(t, fault.PositionNotFound, err, "position created")
}

func TestIssueStockBoundary(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)

	_, err := ct.IssueStock(owner, b.stockClassId, identifier.New(), 499, 1, b.stakeholderId)
	assert.Nil(t, err, "below limit")
	_, err = ct.IssueStock(owner, b.stockClassId, identifier.New(), 2, 1, b.stakeholderId)
	assert.Equal(t, fault.InsufficientShares, err, "one over limit")
	_, err = ct.IssueStock(owner, b.stockClassId, identifier.New(), 1, 1, b.stakeholderId)
	assert.Nil(t, err, "exactly at limit")

	class, _ := ct.StockClass(b.stockClassId)
	assert.Equal(t, class.SharesAuthorized, class.SharesIssued, "full class")
	assert.Equal(t, class.SharesIssued, classTotal(t, ct, b.stockClassId), "conservation")
}

func TestIssueStockIssuerLimit(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 300, 500)
	second := identifier.New()
	_, err := ct.CreateStockClass(owner, b.issuerId, second, "PREFERRED", 1, 500)
	assert.Nil(t, err, "second class")

	_, err = ct.IssueStock(owner, b.stockClassId, identifier.New(), 200, 1, b.stakeholderId)
	assert.Nil(t, err, "first class")
	_, err = ct.IssueStock(owner, second, identifier.New(), 101, 1, b.stakeholderId)
	assert.Equal(t, fault.InsufficientShares, err, "issuer limit across classes")

	class, _ := ct.StockClass(second)
	assert.Equal(t, uint64(0), class.SharesIssued, "class incremented on issuer failure")

	_, err = ct.IssueStock(owner, second, identifier.New(), 100, 1, b.stakeholderId)
	assert.Nil(t, err, "issuer exactly full")

	issuer, _ := ct.Issuer(b.issuerId)
	assert.Equal(t, uint64(300), issuer.SharesIssued, "issuer issued")
}

func TestIssueStockOverflow(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, math.MaxUint64, math.MaxUint64)

	_, err := ct.IssueStock(owner, b.stockClassId, identifier.New(), 10, 1, b.stakeholderId)
	assert.Nil(t, err, "issue")
	_, err = ct.IssueStock(owner, b.stockClassId, identifier.New(), math.MaxUint64, 1, b.stakeholderId)
	assert.Equal(t, fault.InsufficientShares, err, "overflow must not wrap")

	class, _ := ct.StockClass(b.stockClassId)
	assert.Equal(t, uint64(10), class.SharesIssued, "issued after overflow")
}

func TestIssueStockReferences(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)
	other := makeBasic(t, ct, 1000, 500)
	securityId := identifier.New()

	_, err := ct.IssueStock(owner, identifier.New(), securityId, 1, 1, b.stakeholderId)
	assert.Equal(t, fault.StockClassNotFound, err, "missing class")

	_, err = ct.IssueStock(owner, b.stockClassId, securityId, 1, 1, identifier.New())
	assert.Equal(t, fault.StakeholderNotFound, err, "missing stakeholder")

	_, err = ct.IssueStock(owner, b.stockClassId, securityId, 1, 1, other.stakeholderId)
	assert.Equal(t, fault.InvalidStakeholder, err, "stakeholder of another issuer")

	_, err = ct.IssueStock(intruder, b.stockClassId, securityId, 1, 1, b.stakeholderId)
	assert.Equal(t, fault.NotAuthorised, err, "intruder")

	_, err = ct.IssueStock(owner, b.stockClassId, securityId, 1, 1, b.stakeholderId)
	assert.Nil(t, err, "issue")

	_, err = ct.IssueStock(owner, b.stockClassId, securityId, 5, 1, b.stakeholderId)
	assert.Equal(t, fault.RecordExists, err, "duplicate security")

	class, _ := ct.StockClass(b.stockClassId)
	assert.Equal(t, uint64(1), class.SharesIssued, "duplicate changed the class")
	issuer, _ := ct.Issuer(b.issuerId)
	assert.Equal(t, uint64(1), issuer.SharesIssued, "duplicate changed the issuer")
}

func TestStockClassPositionsPaging(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)
	other := makeBasic(t, ct, 1000, 500)

	for i := 0; i < 5; i += 1 {
		_, err := ct.IssueStock(owner, b.stockClassId, identifier.New(), uint64(i+1), 1, b.stakeholderId)
		assert.Nil(t, err, "issue %d", i)
	}
	_, err := ct.IssueStock(owner, other.stockClassId, identifier.New(), 50, 1, other.stakeholderId)
	assert.Nil(t, err, "other class")

	first, err := ct.StockClassPositions(b.stockClassId, nil, 3)
	assert.Nil(t, err, "first page")
	assert.Equal(t, 3, len(first), "first page size")

	next := first[2].Key
	rest, err := ct.StockClassPositions(b.stockClassId, &next, 10)
	assert.Nil(t, err, "second page")
	assert.Equal(t, 3, len(rest), "second page starts at the given key")
	assert.Equal(t, first[2], rest[0], "inclusive start")

	total := uint64(0)
	for _, p := range append(first, rest[1:]...) {
		total += p.Quantity
	}
	assert.Equal(t, uint64(15), total, "sum of positions")
	assert.Equal(t, uint64(50), classTotal(t, ct, other.stockClassId), "other class")

	_, err = ct.StockClassPositions(b.stockClassId, nil, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	empty, err := ct.StockClassPositions(identifier.New(), nil, 10)
	assert.Nil(t, err, "unknown class")
	assert.Equal(t, 0, len(empty), "unknown class positions")
}

func TestCommittedEventIsQueued(t *testing.T) {
	ct := setup(t)
	defer teardown()

	issuerId := identifier.New()
	receipt, err := ct.InitializeIssuer(owner, issuerId, 77)
	assert.Nil(t, err, "initialize")

	_, err = ct.InitializeIssuer(owner, issuerId, 77)
	assert.Equal(t, fault.AlreadyInitialized, err, "duplicate")

	select {
	case m := <-messagebus.Bus.Events.Chan():
		assert.Equal(t, "event", m.Command, "command")
		if assert.Equal(t, 2, len(m.Parameters), "parameters") {
			packed := event.Packed(m.Parameters[0])
			assert.Equal(t, receipt.TxId, packed.TxId(), "tx id")
			assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, m.Parameters[1], "sequence")
		}
	default:
		t.Fatal("no event queued")
	}

	select {
	case m := <-messagebus.Bus.Events.Chan():
		t.Errorf("failed operation queued: %v", m)
	default:
	}
}
