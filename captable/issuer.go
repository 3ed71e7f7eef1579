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

// InitializeIssuer - create an issuer and make the caller its authority
func (l *ledger) InitializeIssuer(caller authority.Principal, issuerId identifier.Identifier, sharesAuthorized uint64) (event.Receipt, error) {
	return execute("InitializeIssuer", func(trx storage.Transaction) (*event.Event, error) {

		issuer := &record.Issuer{
			Id:               issuerId,
			SharesIssued:     0,
			SharesAuthorized: sharesAuthorized,
		}
		err := create(trx, storage.Pool.Issuers, issuerId[:], issuer)
		if fault.RecordExists == err {
			return nil, fault.AlreadyInitialized
		} else if nil != err {
			return nil, err
		}

		err = authority.Register(trx, issuerId, caller)
		if fault.RecordExists == err {
			return nil, fault.AlreadyInitialized
		} else if nil != err {
			return nil, err
		}

		return event.New(issuerId, &event.IssuerInitialized{
			SharesAuthorized: sharesAuthorized,
		}), nil
	})
}

// AdjustAuthorizedShares - overwrite the issuer's authorized shares
//
// the new value is not checked against the shares already issued
func (l *ledger) AdjustAuthorizedShares(caller authority.Principal, issuerId identifier.Identifier, sharesAuthorized uint64) (event.Receipt, error) {
	return execute("AdjustAuthorizedShares", func(trx storage.Transaction) (*event.Event, error) {

		issuer, err := getIssuer(trx, issuerId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, issuer.Id, caller)
		if nil != err {
			return nil, err
		}

		issuer.SharesAuthorized = sharesAuthorized
		err = put(trx, storage.Pool.Issuers, issuerId[:], issuer)
		if nil != err {
			return nil, err
		}

		return event.New(issuerId, &event.IssuerSharesAdjusted{
			NewSharesAuthorized: sharesAuthorized,
		}), nil
	})
}
