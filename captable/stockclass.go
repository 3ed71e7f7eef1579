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

// CreateStockClass - add a class of shares to an issuer
func (l *ledger) CreateStockClass(caller authority.Principal, issuerId identifier.Identifier, id identifier.Identifier, classType string, pricePerShare uint64, sharesAuthorized uint64) (event.Receipt, error) {
	return execute("CreateStockClass", func(trx storage.Transaction) (*event.Event, error) {

		if 0 == sharesAuthorized {
			return nil, fault.SharesAuthorizedCannotBeZero
		}
		if 0 == len(classType) || len(classType) > record.MaxClassTypeLength {
			return nil, fault.InvalidClassType
		}

		issuer, err := getIssuer(trx, issuerId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, issuer.Id, caller)
		if nil != err {
			return nil, err
		}

		class := &record.StockClass{
			Id:               id,
			IssuerId:         issuerId,
			ClassType:        classType,
			PricePerShare:    pricePerShare,
			SharesIssued:     0,
			SharesAuthorized: sharesAuthorized,
		}
		err = create(trx, storage.Pool.StockClasses, id[:], class)
		if nil != err {
			return nil, err
		}

		return event.New(issuerId, &event.StockClassCreated{
			Id:                      id,
			ClassType:               classType,
			PricePerShare:           pricePerShare,
			InitialSharesAuthorized: sharesAuthorized,
		}), nil
	})
}

// AdjustStockClassShares - overwrite a class's authorized shares
func (l *ledger) AdjustStockClassShares(caller authority.Principal, stockClassId identifier.Identifier, sharesAuthorized uint64) (event.Receipt, error) {
	return execute("AdjustStockClassShares", func(trx storage.Transaction) (*event.Event, error) {

		class, err := getStockClass(trx, stockClassId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, class.IssuerId, caller)
		if nil != err {
			return nil, err
		}

		class.SharesAuthorized = sharesAuthorized
		err = put(trx, storage.Pool.StockClasses, stockClassId[:], class)
		if nil != err {
			return nil, err
		}

		return event.New(class.IssuerId, &event.StockClassSharesAdjusted{
			StockClassId:        stockClassId,
			NewSharesAuthorized: sharesAuthorized,
		}), nil
	})
}
