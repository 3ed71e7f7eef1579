// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
)

// PositionKey - stakeholder ++ security
//
// the key of stock, convertible and warrant positions
type PositionKey struct {
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	SecurityId    identifier.Identifier `json:"securityId"`
}

// EquityCompensationKey - stock class ++ stakeholder ++ security
type EquityCompensationKey struct {
	StockClassId  identifier.Identifier `json:"stockClassId"`
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	SecurityId    identifier.Identifier `json:"securityId"`
}

// Bytes - the storage key
func (k PositionKey) Bytes() []byte {
	return concat(k.StakeholderId, k.SecurityId)
}

// Bytes - the storage key
func (k EquityCompensationKey) Bytes() []byte {
	return concat(k.StockClassId, k.StakeholderId, k.SecurityId)
}

// ClassIndexKey - index of stock positions by class
//
// ordered by stock class first so a cursor seek on the class id
// visits every position of that class
func ClassIndexKey(stockClassId identifier.Identifier, k PositionKey) []byte {
	return concat(stockClassId, k.StakeholderId, k.SecurityId)
}

// ClassIndexKeyFromBytes - split an index key into its class and position key
func ClassIndexKeyFromBytes(b []byte) (identifier.Identifier, PositionKey, error) {
	if 3*identifier.Length != len(b) {
		return identifier.Zero, PositionKey{}, fault.InvalidIdentifier
	}
	class, _ := identifier.FromBytes(b[:identifier.Length])
	stakeholder, _ := identifier.FromBytes(b[identifier.Length : 2*identifier.Length])
	security, _ := identifier.FromBytes(b[2*identifier.Length:])
	return class, PositionKey{StakeholderId: stakeholder, SecurityId: security}, nil
}

// Key - storage key of a stock position
func (position *StockPosition) Key() PositionKey {
	return PositionKey{StakeholderId: position.StakeholderId, SecurityId: position.SecurityId}
}

// Key - storage key of a convertible position
func (position *ConvertiblePosition) Key() PositionKey {
	return PositionKey{StakeholderId: position.StakeholderId, SecurityId: position.SecurityId}
}

// Key - storage key of a warrant position
func (position *WarrantPosition) Key() PositionKey {
	return PositionKey{StakeholderId: position.StakeholderId, SecurityId: position.SecurityId}
}

// Key - storage key of an equity compensation position
func (position *EquityCompensationPosition) Key() EquityCompensationKey {
	return EquityCompensationKey{
		StockClassId:  position.StockClassId,
		StakeholderId: position.StakeholderId,
		SecurityId:    position.SecurityId,
	}
}

func concat(ids ...identifier.Identifier) []byte {
	b := make([]byte, 0, len(ids)*identifier.Length)
	for _, id := range ids {
		b = append(b, id[:]...)
	}
	return b
}
