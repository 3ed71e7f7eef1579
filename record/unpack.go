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

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *record.Issuer:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.NotRecordPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotRecordPack
	}

	var ok bool

unpack_switch:
	switch TagType(recordType) {

	case IssuerTag:
		issuer := &Issuer{}
		if issuer.Id, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if issuer.SharesIssued, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		if issuer.SharesAuthorized, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		return issuer, n, nil

	case StockClassTag:
		class := &StockClass{}
		if class.Id, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if class.IssuerId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if class.ClassType, n, ok = readString(record, n); !ok {
			break unpack_switch
		}
		if class.PricePerShare, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		if class.SharesIssued, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		if class.SharesAuthorized, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		return class, n, nil

	case StakeholderTag:
		stakeholder := &Stakeholder{}
		if stakeholder.Id, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if stakeholder.IssuerId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		return stakeholder, n, nil

	case StockPlanTag:
		plan := &StockPlan{}
		if plan.Id, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if plan.IssuerId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		count, countLength := util.ClippedVarint64(record[n:], 1, MaxStockPlanClasses)
		if 0 == countLength {
			break unpack_switch
		}
		n += countLength
		plan.StockClassIds = make([]identifier.Identifier, count)
		for i := 0; i < count; i += 1 {
			if plan.StockClassIds[i], n, ok = readIdentifier(record, n); !ok {
				break unpack_switch
			}
		}
		if plan.SharesReserved, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		return plan, n, nil

	case StockPositionTag:
		position := &StockPosition{}
		if position.StakeholderId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.StockClassId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.SecurityId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.Quantity, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		if position.SharePrice, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		return position, n, nil

	case ConvertiblePositionTag:
		position := &ConvertiblePosition{}
		if position.StakeholderId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.SecurityId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.InvestmentAmount, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		return position, n, nil

	case EquityCompensationPositionTag:
		position := &EquityCompensationPosition{}
		if position.StakeholderId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.StockClassId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.StockPlanId, n, ok = readOptional(record, n); !ok {
			break unpack_switch
		}
		if position.SecurityId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.Quantity, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		return position, n, nil

	case WarrantPositionTag:
		position := &WarrantPosition{}
		if position.StakeholderId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.SecurityId, n, ok = readIdentifier(record, n); !ok {
			break unpack_switch
		}
		if position.Quantity, n, ok = readUint64(record, n); !ok {
			break unpack_switch
		}
		return position, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.NotRecordPack
}

// each reader returns the value, the offset past it and false on a
// truncated or malformed field
func readUint64(record Packed, n int) (uint64, int, bool) {
	if n >= len(record) {
		return 0, n, false
	}
	value, valueLength := util.FromVarint64(record[n:])
	if 0 == valueLength {
		return 0, n, false
	}
	return value, n + valueLength, true
}

func readIdentifier(record Packed, n int) (identifier.Identifier, int, bool) {
	if n >= len(record) {
		return identifier.Zero, n, false
	}
	idLength, idOffset := util.FromVarint64(record[n:])
	if 0 == idOffset || identifier.Length != idLength {
		return identifier.Zero, n, false
	}
	n += idOffset
	if len(record)-n < identifier.Length {
		return identifier.Zero, n, false
	}
	id, err := identifier.FromBytes(record[n : n+identifier.Length])
	if nil != err {
		return identifier.Zero, n, false
	}
	return id, n + identifier.Length, true
}

func readOptional(record Packed, n int) (identifier.Optional, int, bool) {
	if n >= len(record) {
		return nil, n, false
	}
	switch record[n] {
	case 0:
		return nil, n + 1, true
	case 1:
		id, n, ok := readIdentifier(record, n+1)
		if !ok {
			return nil, n, false
		}
		return identifier.Some(id), n, true
	default:
		return nil, n, false
	}
}

func readString(record Packed, n int) (string, int, bool) {
	if n >= len(record) {
		return "", n, false
	}
	stringLength, stringOffset := util.ClippedVarint64(record[n:], 1, maxVarintFieldLength)
	if 0 == stringOffset {
		return "", n, false
	}
	n += stringOffset
	if len(record)-n < stringLength {
		return "", n, false
	}
	s := string(record[n : n+stringLength])
	return s, n + stringLength, true
}
