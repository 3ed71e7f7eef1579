// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/storage"
)

// queries read committed state only

// Authority - the principal allowed to operate on an issuer
func (l *ledger) Authority(issuerId identifier.Identifier) (authority.Principal, error) {
	return authority.Get(issuerId)
}

// Issuer - read an issuer
func (l *ledger) Issuer(id identifier.Identifier) (*record.Issuer, error) {
	return getIssuer(committed{}, id)
}

// StockClass - read a stock class
func (l *ledger) StockClass(id identifier.Identifier) (*record.StockClass, error) {
	return getStockClass(committed{}, id)
}

// Stakeholder - read a stakeholder
func (l *ledger) Stakeholder(id identifier.Identifier) (*record.Stakeholder, error) {
	return getStakeholder(committed{}, id)
}

// StockPlan - read a stock plan
func (l *ledger) StockPlan(id identifier.Identifier) (*record.StockPlan, error) {
	return getStockPlan(committed{}, id)
}

// StockPosition - read a stock position
func (l *ledger) StockPosition(key record.PositionKey) (*record.StockPosition, error) {
	return getStockPosition(committed{}, key)
}

// ConvertiblePosition - read a convertible position
func (l *ledger) ConvertiblePosition(key record.PositionKey) (*record.ConvertiblePosition, error) {
	return getConvertiblePosition(committed{}, key)
}

// EquityCompensationPosition - read an equity compensation position
func (l *ledger) EquityCompensationPosition(key record.EquityCompensationKey) (*record.EquityCompensationPosition, error) {
	return getEquityCompensationPosition(committed{}, key)
}

// WarrantPosition - read a warrant position
func (l *ledger) WarrantPosition(key record.PositionKey) (*record.WarrantPosition, error) {
	return getWarrantPosition(committed{}, key)
}

// StockClassPositions - stock positions issued against a class, in key order
//
// start is the first key to return, nil for the beginning; the sum of
// all quantities equals the class's issued shares
func (l *ledger) StockClassPositions(stockClassId identifier.Identifier, start *record.PositionKey, count int) ([]ClassPosition, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	seek := stockClassId[:]
	if nil != start {
		seek = record.ClassIndexKey(stockClassId, *start)
	}

	items, err := storage.Pool.StockClassIndex.NewFetchCursor().Seek(seek).Fetch(count)
	if nil != err {
		return nil, err
	}

	positions := make([]ClassPosition, 0, len(items))
	for _, item := range items {
		if !bytes.HasPrefix(item.Key, stockClassId[:]) {
			break
		}
		_, key, err := record.ClassIndexKeyFromBytes(item.Key)
		if nil != err {
			return nil, err
		}
		if len(item.Value) < 8 {
			return nil, fault.NotRecordPack
		}
		positions = append(positions, ClassPosition{
			Key:      key,
			Quantity: binary.BigEndian.Uint64(item.Value),
		})
	}
	return positions, nil
}
