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

// IssueConvertible - record an investment held by a stakeholder
func (l *ledger) IssueConvertible(caller authority.Principal, securityId identifier.Identifier, investmentAmount uint64, stakeholderId identifier.Identifier) (event.Receipt, error) {
	return execute("IssueConvertible", func(trx storage.Transaction) (*event.Event, error) {

		if 0 == investmentAmount {
			return nil, fault.InvalidAmount
		}

		stakeholder, err := getStakeholder(trx, stakeholderId)
		if nil != err {
			return nil, err
		}
		err = authority.Check(trx, stakeholder.IssuerId, caller)
		if nil != err {
			return nil, err
		}

		position := &record.ConvertiblePosition{
			StakeholderId:    stakeholderId,
			SecurityId:       securityId,
			InvestmentAmount: investmentAmount,
		}
		err = create(trx, storage.Pool.ConvertiblePositions, position.Key().Bytes(), position)
		if nil != err {
			return nil, err
		}

		return event.New(stakeholder.IssuerId, &event.ConvertibleIssued{
			StakeholderId:    stakeholderId,
			SecurityId:       securityId,
			InvestmentAmount: investmentAmount,
		}), nil
	})
}
