// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable

import (
	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/storage"
)

// CreateStakeholder - add a holder of positions to an issuer
func (l *ledger) CreateStakeholder(caller authority.Principal, issuerId identifier.Identifier, id identifier.Identifier) (event.Receipt, error) {
	return execute("CreateStakeholder", func(trx storage.Transaction) (*event.Event, error) {

		issuer, err := getIssuer(trx, issuerId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, issuer.Id, caller)
		if nil != err {
			return nil, err
		}

		stakeholder := &record.Stakeholder{
			Id:       id,
			IssuerId: issuerId,
		}
		err = create(trx, storage.Pool.Stakeholders, id[:], stakeholder)
		if nil != err {
			return nil, err
		}

		return event.New(issuerId, &event.StakeholderCreated{
			Id: id,
		}), nil
	})
}
