// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
)

func TestStockPlanScenario(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)
	planId := identifier.New()

	_, err := ct.CreateStockPlan(owner, b.issuerId, planId, nil, 100)
	assert.Equal(t, fault.InvalidStockClassCount, err, "empty class list")

	_, err = ct.CreateStockPlan(owner, b.issuerId, planId, []identifier.Identifier{}, 100)
	assert.Equal(t, fault.InvalidStockClassCount, err, "empty class list")

	receipt, err := ct.CreateStockPlan(owner, b.issuerId, planId, []identifier.Identifier{b.stockClassId}, 12345)
	assert.Nil(t, err, "one class")

	plan, err := ct.StockPlan(planId)
	assert.Nil(t, err, "read plan")
	assert.Equal(t, uint64(12345), plan.SharesReserved, "reserved stored verbatim")
	assert.Equal(t, []identifier.Identifier{b.stockClassId}, plan.StockClassIds, "classes")
	assert.Equal(t, b.issuerId, plan.IssuerId, "issuer")

	records, _ := event.Fetch(receipt.Sequence, 1)
	if assert.Equal(t, 1, len(records), "event") {
		assert.Equal(t, &event.StockPlanCreated{
			Id:             planId,
			SharesReserved: 12345,
			StockClassIds:  []identifier.Identifier{b.stockClassId},
		}, records[0].Event.Payload, "payload")
	}

	_, err = ct.CreateStockPlan(owner, b.issuerId, planId, []identifier.Identifier{b.stockClassId}, 1)
	assert.Equal(t, fault.RecordExists, err, "duplicate plan")
}

func TestCreateStockPlanValidation(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)
	other := makeBasic(t, ct, 1000, 500)

	secondClass := identifier.New()
	_, err := ct.CreateStockClass(owner, b.issuerId, secondClass, "PREFERRED", 1, 100)
	assert.Nil(t, err, "second class")

	tooMany := make([]identifier.Identifier, 33)
	for i := range tooMany {
		tooMany[i] = identifier.New()
	}

	before := event.Count()

	tests := []struct {
		issuerId identifier.Identifier
		classes  []identifier.Identifier
		err      error
	}{
		{b.issuerId, tooMany, fault.InvalidStockClassCount},
		{b.issuerId, []identifier.Identifier{b.stockClassId, secondClass, b.stockClassId}, fault.StockClassCountMismatch},
		{b.issuerId, []identifier.Identifier{b.stockClassId, identifier.New()}, fault.StockClassIdMismatch},
		{b.issuerId, []identifier.Identifier{b.stockClassId, other.stockClassId}, fault.StockClassIdMismatch},
		{identifier.New(), []identifier.Identifier{b.stockClassId}, fault.IssuerNotFound},
	}
	for i, test := range tests {
		_, err := ct.CreateStockPlan(owner, test.issuerId, identifier.New(), test.classes, 10)
		assert.Equal(t, test.err, err, "%d: error", i)
	}

	_, err = ct.CreateStockPlan(intruder, b.issuerId, identifier.New(), []identifier.Identifier{b.stockClassId}, 10)
	assert.Equal(t, fault.NotAuthorised, err, "intruder")

	assertEventCount(t, before, "failed plans appended events")

	_, err = ct.CreateStockPlan(owner, b.issuerId, identifier.New(), []identifier.Identifier{secondClass, b.stockClassId}, 10)
	assert.Nil(t, err, "two classes")
}

func TestAdjustStockPlanShares(t *testing.T) {
	ct := setup(t)
	defer teardown()

	b := makeBasic(t, ct, 1000, 500)
	planId := identifier.New()
	_, err := ct.CreateStockPlan(owner, b.issuerId, planId, []identifier.Identifier{b.stockClassId}, 100)
	assert.Nil(t, err, "create plan")

	_, err = ct.AdjustStockPlanShares(intruder, planId, 5)
	assert.Equal(t, fault.NotAuthorised, err, "intruder")

	_, err = ct.AdjustStockPlanShares(owner, identifier.New(), 5)
	assert.Equal(t, fault.StockPlanNotFound, err, "missing plan")

	_, err = ct.AdjustStockPlanShares(owner, planId, 0)
	assert.Nil(t, err, "adjust")

	plan, _ := ct.StockPlan(planId)
	assert.Equal(t, uint64(0), plan.SharesReserved, "reserved")
	assert.Equal(t, []identifier.Identifier{b.stockClassId}, plan.StockClassIds, "classes unchanged")
}
