// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable

import (
	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/storage"
)

// IssueEquityCompensation - grant options (or similar) over a stock class
//
// when a plan is given it must belong to the same issuer and list the class
func (l *ledger) IssueEquityCompensation(caller authority.Principal, securityId identifier.Identifier, quantity uint64, stakeholderId identifier.Identifier, stockClassId identifier.Identifier, stockPlanId identifier.Optional) (event.Receipt, error) {
	return execute("IssueEquityCompensation", func(trx storage.Transaction) (*event.Event, error) {

		if 0 == quantity {
			return nil, fault.InvalidQuantity
		}

		stakeholder, err := getStakeholder(trx, stakeholderId)
		if nil != err {
			return nil, err
		}
		class, err := getStockClass(trx, stockClassId)
		if nil != err {
			return nil, err
		}
		err = belongsTo(class.IssuerId, stakeholder.IssuerId, fault.InvalidStakeholder)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, class.IssuerId, caller)
		if nil != err {
			return nil, err
		}

		var planId identifier.Optional
		if nil != stockPlanId {
			plan, err := getStockPlan(trx, *stockPlanId)
			if nil != err {
				return nil, err
			}
			err = belongsTo(class.IssuerId, plan.IssuerId, fault.StockClassIdMismatch)
			if nil != err {
				return nil, err
			}
			if !plan.Lists(stockClassId) {
				return nil, fault.StockClassIdMismatch
			}
			planId = identifier.Some(plan.Id)
		}

		position := &record.EquityCompensationPosition{
			StakeholderId: stakeholderId,
			StockClassId:  stockClassId,
			StockPlanId:   planId,
			SecurityId:    securityId,
			Quantity:      quantity,
		}
		err = create(trx, storage.Pool.EquityCompensationPositions, position.Key().Bytes(), position)
		if nil != err {
			return nil, err
		}

		return event.New(class.IssuerId, &event.EquityCompensationIssued{
			SecurityId:    securityId,
			StakeholderId: stakeholderId,
			StockClassId:  stockClassId,
			StockPlanId:   identifier.OrZero(planId),
			Quantity:      quantity,
		}), nil
	})
}

// ExerciseEquityCompensation - reduce a grant by the quantity held in
// an existing stock position of the same stakeholder
func (l *ledger) ExerciseEquityCompensation(caller authority.Principal, equityKey record.EquityCompensationKey, stockKey record.PositionKey, quantity uint64) (event.Receipt, error) {
	return execute("ExerciseEquityCompensation", func(trx storage.Transaction) (*event.Event, error) {

		if 0 == quantity {
			return nil, fault.InvalidQuantity
		}

		equity, err := getEquityCompensationPosition(trx, equityKey)
		if nil != err {
			return nil, err
		}
		stock, err := getStockPosition(trx, stockKey)
		if nil != err {
			return nil, err
		}
		class, err := getStockClass(trx, equity.StockClassId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, class.IssuerId, caller)
		if nil != err {
			return nil, err
		}

		if equity.Quantity < quantity {
			return nil, fault.InsufficientShares
		}
		if stock.Quantity != quantity {
			return nil, fault.QuantityMismatch
		}
		if stock.StakeholderId != equity.StakeholderId {
			return nil, fault.InvalidStakeholder
		}
		err = belongsTo(equity.StockClassId, stock.StockClassId, fault.StockClassIdMismatch)
		if nil != err {
			return nil, err
		}

		equity.Quantity, err = release(equity.Quantity, quantity)
		if nil != err {
			return nil, err
		}
		err = put(trx, storage.Pool.EquityCompensationPositions, equityKey.Bytes(), equity)
		if nil != err {
			return nil, err
		}

		return event.New(class.IssuerId, &event.EquityCompensationExercised{
			EquityCompensationSecurityId: equity.SecurityId,
			ResultingStockSecurityId:     stock.SecurityId,
			Quantity:                     quantity,
		}), nil
	})
}
