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

// IssueWarrant - record warrants held by a stakeholder
func (l *ledger) IssueWarrant(caller authority.Principal, securityId identifier.Identifier, quantity uint64, stakeholderId identifier.Identifier) (event.Receipt, error) {
	return execute("IssueWarrant", func(trx storage.Transaction) (*event.Event, error) {

		if 0 == quantity {
			return nil, fault.InvalidQuantity
		}

		stakeholder, err := getStakeholder(trx, stakeholderId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, stakeholder.IssuerId, caller)
		if nil != err {
			return nil, err
		}

		position := &record.WarrantPosition{
			StakeholderId: stakeholderId,
			SecurityId:    securityId,
			Quantity:      quantity,
		}
		err = create(trx, storage.Pool.WarrantPositions, position.Key().Bytes(), position)
		if nil != err {
			return nil, err
		}

		return event.New(stakeholder.IssuerId, &event.WarrantIssued{
			StakeholderId: stakeholderId,
			SecurityId:    securityId,
			Quantity:      quantity,
		}), nil
	})
}
