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

// IssueStock - issue shares of a class to a stakeholder
//
// both the class and the issuer must have capacity for the quantity
func (l *ledger) IssueStock(caller authority.Principal, stockClassId identifier.Identifier, securityId identifier.Identifier, quantity uint64, sharePrice uint64, stakeholderId identifier.Identifier) (event.Receipt, error) {
	return execute("IssueStock", func(trx storage.Transaction) (*event.Event, error) {

		if 0 == quantity {
			return nil, fault.InvalidQuantity
		}
		if 0 == sharePrice {
			return nil, fault.InvalidSharePrice
		}

		class, err := getStockClass(trx, stockClassId)
		if nil != err {
			return nil, err
		}
		stakeholder, err := getStakeholder(trx, stakeholderId)
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
		issuer, err := getIssuer(trx, class.IssuerId)
		if nil != err {
			return nil, err
		}

		position := &record.StockPosition{
			StakeholderId: stakeholderId,
			StockClassId:  stockClassId,
			SecurityId:    securityId,
			Quantity:      quantity,
			SharePrice:    sharePrice,
		}
		key := position.Key()
		err = create(trx, storage.Pool.StockPositions, key.Bytes(), position)
		if nil != err {
			return nil, err
		}

		err = issueShares(class, issuer, quantity)
		if nil != err {
			return nil, err
		}
		err = put(trx, storage.Pool.StockClasses, stockClassId[:], class)
		if nil != err {
			return nil, err
		}
		err = put(trx, storage.Pool.Issuers, issuer.Id[:], issuer)
		if nil != err {
			return nil, err
		}
		trx.PutN(storage.Pool.StockClassIndex, record.ClassIndexKey(stockClassId, key), quantity)

		return event.New(class.IssuerId, &event.StockIssued{
			StockClassId:  stockClassId,
			SecurityId:    securityId,
			StakeholderId: stakeholderId,
			Quantity:      quantity,
			SharePrice:    sharePrice,
		}), nil
	})
}
