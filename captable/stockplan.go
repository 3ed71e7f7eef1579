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

// CreateStockPlan - reserve a pool of shares over one or more classes
//
// every listed class must exist, belong to the issuer and appear once
func (l *ledger) CreateStockPlan(caller authority.Principal, issuerId identifier.Identifier, id identifier.Identifier, stockClassIds []identifier.Identifier, sharesReserved uint64) (event.Receipt, error) {
	return execute("CreateStockPlan", func(trx storage.Transaction) (*event.Event, error) {

		count := len(stockClassIds)
		if 0 == count || count > record.MaxStockPlanClasses {
			return nil, fault.InvalidStockClassCount
		}
		seen := make(map[identifier.Identifier]struct{}, count)
		for _, classId := range stockClassIds {
			if _, ok := seen[classId]; ok {
				return nil, fault.StockClassCountMismatch
			}
			seen[classId] = struct{}{}
		}

		issuer, err := getIssuer(trx, issuerId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, issuer.Id, caller)
		if nil != err {
			return nil, err
		}

		for _, classId := range stockClassIds {
			class, err := getStockClass(trx, classId)
			if fault.StockClassNotFound == err {
				return nil, fault.StockClassIdMismatch
			} else if nil != err {
				return nil, err
			}
			err = belongsTo(issuerId, class.IssuerId, fault.StockClassIdMismatch)
			if nil != err {
				return nil, err
			}
		}

		classIds := make([]identifier.Identifier, count)
		copy(classIds, stockClassIds)

		plan := &record.StockPlan{
			Id:             id,
			IssuerId:       issuerId,
			StockClassIds:  classIds,
			SharesReserved: sharesReserved,
		}
		err = create(trx, storage.Pool.StockPlans, id[:], plan)
		if nil != err {
			return nil, err
		}

		return event.New(issuerId, &event.StockPlanCreated{
			Id:             id,
			SharesReserved: sharesReserved,
			StockClassIds:  classIds,
		}), nil
	})
}

// AdjustStockPlanShares - overwrite a plan's reserved shares
func (l *ledger) AdjustStockPlanShares(caller authority.Principal, stockPlanId identifier.Identifier, sharesReserved uint64) (event.Receipt, error) {
	return execute("AdjustStockPlanShares", func(trx storage.Transaction) (*event.Event, error) {

		plan, err := getStockPlan(trx, stockPlanId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, plan.IssuerId, caller)
		if nil != err {
			return nil, err
		}

		plan.SharesReserved = sharesReserved
		err = put(trx, storage.Pool.StockPlans, stockPlanId[:], plan)
		if nil != err {
			return nil, err
		}

		return event.New(plan.IssuerId, &event.StockPlanSharesAdjusted{
			Id:                stockPlanId,
			NewSharesReserved: sharesReserved,
		}), nil
	})
}
