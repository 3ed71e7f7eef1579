// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/util"
)

// Pack - Varint64(tag) followed by fields in struct order
func (issuer *Issuer) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(IssuerTag))
	message = appendIdentifier(message, issuer.Id)
	message = appendUint64(message, issuer.SharesIssued)
	message = appendUint64(message, issuer.SharesAuthorized)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
//
// the class type must be 1..MaxClassTypeLength bytes
func (class *StockClass) Pack() (Packed, error) {
	if 0 == len(class.ClassType) || len(class.ClassType) > MaxClassTypeLength {
		return nil, fault.InvalidClassType
	}

	message := util.ToVarint64(uint64(StockClassTag))
	message = appendIdentifier(message, class.Id)
	message = appendIdentifier(message, class.IssuerId)
	message = appendString(message, class.ClassType)
	message = appendUint64(message, class.PricePerShare)
	message = appendUint64(message, class.SharesIssued)
	message = appendUint64(message, class.SharesAuthorized)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
func (stakeholder *Stakeholder) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(StakeholderTag))
	message = appendIdentifier(message, stakeholder.Id)
	message = appendIdentifier(message, stakeholder.IssuerId)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
//
// the class list is a Varint64 count then each identifier
func (plan *StockPlan) Pack() (Packed, error) {
	count := len(plan.StockClassIds)
	if 0 == count || count > MaxStockPlanClasses {
		return nil, fault.InvalidStockClassCount
	}

	message := util.ToVarint64(uint64(StockPlanTag))
	message = appendIdentifier(message, plan.Id)
	message = appendIdentifier(message, plan.IssuerId)
	message = appendUint64(message, uint64(count))
	for _, id := range plan.StockClassIds {
		message = appendIdentifier(message, id)
	}
	message = appendUint64(message, plan.SharesReserved)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
func (position *StockPosition) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(StockPositionTag))
	message = appendIdentifier(message, position.StakeholderId)
	message = appendIdentifier(message, position.StockClassId)
	message = appendIdentifier(message, position.SecurityId)
	message = appendUint64(message, position.Quantity)
	message = appendUint64(message, position.SharePrice)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
func (position *ConvertiblePosition) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(ConvertiblePositionTag))
	message = appendIdentifier(message, position.StakeholderId)
	message = appendIdentifier(message, position.SecurityId)
	message = appendUint64(message, position.InvestmentAmount)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
//
// the plan is a presence byte followed by the identifier when present
func (position *EquityCompensationPosition) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(EquityCompensationPositionTag))
	message = appendIdentifier(message, position.StakeholderId)
	message = appendIdentifier(message, position.StockClassId)
	message = appendOptional(message, position.StockPlanId)
	message = appendIdentifier(message, position.SecurityId)
	message = appendUint64(message, position.Quantity)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
func (position *WarrantPosition) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(WarrantPositionTag))
	message = appendIdentifier(message, position.StakeholderId)
	message = appendIdentifier(message, position.SecurityId)
	message = appendUint64(message, position.Quantity)
	return message, nil
}

// append a single field to a buffer
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

func appendIdentifier(buffer Packed, id identifier.Identifier) Packed {
	l := util.ToVarint64(identifier.Length)
	buffer = append(buffer, l...)
	return append(buffer, id[:]...)
}

func appendOptional(buffer Packed, id identifier.Optional) Packed {
	if nil == id {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return appendIdentifier(buffer, *id)
}

func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	return append(buffer, valueBytes...)
}
