// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
)

func TestCreateStockClass(t *testing.T) {
	ct := setup(t)
	defer teardown()

	issuerId := identifier.New()
	_, err := ct.InitializeIssuer(owner, issuerId, 1000)
	assert.Nil(t, err, "initialize")
	before := uint64(1)

	classId := identifier.New()

	tests := []struct {
		caller     authority.Principal
		issuerId   identifier.Identifier
		classType  string
		authorized uint64
		err        error
	}{
		{owner, issuerId, "COMMON", 0, fault.SharesAuthorizedCannotBeZero},
		{owner, issuerId, "", 10, fault.InvalidClassType},
		{owner, issuerId, strings.Repeat("P", 41), 10, fault.InvalidClassType},
		{owner, identifier.New(), "COMMON", 10, fault.IssuerNotFound},
		{intruder, issuerId, "COMMON", 10, fault.NotAuthorised},
	}
	for i, test := range tests {
		_, err := ct.CreateStockClass(test.caller, test.issuerId, classId, test.classType, 1, test.authorized)
		assert.Equal(t, test.err, err, "%d: error", i)
	}
	assertEventCount(t, before, "failed creates appended events")

	_, err = ct.StockClass(classId)
	assert.Equal(t, fault.StockClassNotFound, err, "failed create left a record")

	_, err = ct.CreateStockClass(owner, issuerId, classId, strings.Repeat("P", 40), 25, 500)
	assert.Nil(t, err, "create")

	class, err := ct.StockClass(classId)
	assert.Nil(t, err, "read class")
	assert.Equal(t, issuerId, class.IssuerId, "issuer")
	assert.Equal(t, uint64(25), class.PricePerShare, "price")
	assert.Equal(t, uint64(0), class.SharesIssued, "issued")
	assert.Equal(t, uint64(500), class.SharesAuthorized, "authorized")

	_, err = ct.CreateStockClass(owner, issuerId, classId, "COMMON", 1, 10)
	assert.Equal(t, fault.RecordExists, err, "duplicate class")
	assertEventCount(t, before+1, "event count")
}

func TestAdjustStockClassShares(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)

	_, err := ct.AdjustStockClassShares(intruder, b.stockClassId, 10)
	assert.Equal(t, fault.NotAuthorised, err, "intruder")

	_, err = ct.AdjustStockClassShares(owner, identifier.New(), 10)
	assert.Equal(t, fault.StockClassNotFound, err, "missing class")

	_, err = ct.IssueStock(owner, b.stockClassId, identifier.New(), 400, 1, b.stakeholderId)
	assert.Nil(t, err, "issue")

	_, err = ct.AdjustStockClassShares(owner, b.stockClassId, 0)
	assert.Nil(t, err, "adjust to zero")

	class, _ := ct.StockClass(b.stockClassId)
	assert.Equal(t, uint64(0), class.SharesAuthorized, "authorized")
	assert.Equal(t, uint64(400), class.SharesIssued, "issued")

	_, err = ct.AdjustStockClassShares(owner, b.stockClassId, 450)
	assert.Nil(t, err, "adjust up")

	_, err = ct.IssueStock(owner, b.stockClassId, identifier.New(), 50, 1, b.stakeholderId)
	assert.Nil(t, err, "issue to new limit")
	_, err = ct.IssueStock(owner, b.stockClassId, identifier.New(), 1, 1, b.stakeholderId)
	assert.Equal(t, fault.InsufficientShares, err, "issue past new limit")
}

func TestCreateStakeholder(t *testing.T) {
	ct := setup(t)
	defer teardown()

	issuerId := identifier.New()
	_, _ = ct.InitializeIssuer(owner, issuerId, 1000)

	id := identifier.New()
	_, err := ct.CreateStakeholder(intruder, issuerId, id)
	assert.Equal(t, fault.NotAuthorised, err, "intruder")

	_, err = ct.CreateStakeholder(owner, identifier.New(), id)
	assert.Equal(t, fault.IssuerNotFound, err, "missing issuer")

	_, err = ct.CreateStakeholder(owner, issuerId, id)
	assert.Nil(t, err, "create")

	_, err = ct.CreateStakeholder(owner, issuerId, id)
	assert.Equal(t, fault.RecordExists, err, "duplicate")

	stakeholder, err := ct.Stakeholder(id)
	assert.Nil(t, err, "read")
	assert.Equal(t, issuerId, stakeholder.IssuerId, "issuer")

	_, err = ct.Stakeholder(identifier.New())
	assert.Equal(t, fault.StakeholderNotFound, err, "missing stakeholder")
}
