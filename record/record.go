// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the cap table entities as stored
//
// every record packs as Varint64(tag) followed by its fields in the
// order they appear in the struct
package record

import (
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	NullTag                       = TagType(iota)
	IssuerTag                     = TagType(iota)
	StockClassTag                 = TagType(iota)
	StakeholderTag                = TagType(iota)
	StockPlanTag                  = TagType(iota)
	StockPositionTag              = TagType(iota)
	ConvertiblePositionTag        = TagType(iota)
	EquityCompensationPositionTag = TagType(iota)
	WarrantPositionTag            = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// limits on variable length fields
const (
	MaxClassTypeLength   = 40
	MaxStockPlanClasses  = 32
	maxVarintFieldLength = 8192
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// Issuer - top level authorized share pool
type Issuer struct {
	Id               identifier.Identifier `json:"id"`
	SharesIssued     uint64                `json:"sharesIssued,string"`
	SharesAuthorized uint64                `json:"sharesAuthorized,string"`
}

// StockClass - a class of shares owned by an issuer
type StockClass struct {
	Id               identifier.Identifier `json:"id"`
	IssuerId         identifier.Identifier `json:"issuerId"`
	ClassType        string                `json:"classType"`
	PricePerShare    uint64                `json:"pricePerShare,string"`
	SharesIssued     uint64                `json:"sharesIssued,string"`
	SharesAuthorized uint64                `json:"sharesAuthorized,string"`
}

// Stakeholder - holder of positions
type Stakeholder struct {
	Id       identifier.Identifier `json:"id"`
	IssuerId identifier.Identifier `json:"issuerId"`
}

// StockPlan - a reserved pool tied to one or more stock classes
type StockPlan struct {
	Id             identifier.Identifier   `json:"id"`
	IssuerId       identifier.Identifier   `json:"issuerId"`
	StockClassIds  []identifier.Identifier `json:"stockClassIds"`
	SharesReserved uint64                  `json:"sharesReserved,string"`
}

// StockPosition - issued shares of one class held by a stakeholder
type StockPosition struct {
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	StockClassId  identifier.Identifier `json:"stockClassId"`
	SecurityId    identifier.Identifier `json:"securityId"`
	Quantity      uint64                `json:"quantity,string"`
	SharePrice    uint64                `json:"sharePrice,string"`
}

// ConvertiblePosition - an investment that may later convert
type ConvertiblePosition struct {
	StakeholderId    identifier.Identifier `json:"stakeholderId"`
	SecurityId       identifier.Identifier `json:"securityId"`
	InvestmentAmount uint64                `json:"investmentAmount,string"`
}

// EquityCompensationPosition - options or similar grants, optionally
// drawn from a stock plan
type EquityCompensationPosition struct {
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	StockClassId  identifier.Identifier `json:"stockClassId"`
	StockPlanId   identifier.Optional   `json:"stockPlanId,omitempty"`
	SecurityId    identifier.Identifier `json:"securityId"`
	Quantity      uint64                `json:"quantity,string"`
}

// WarrantPosition - warrants held by a stakeholder
type WarrantPosition struct {
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	SecurityId    identifier.Identifier `json:"securityId"`
	Quantity      uint64                `json:"quantity,string"`
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Issuer, Issuer:
		return "Issuer", true
	case *StockClass, StockClass:
		return "StockClass", true
	case *Stakeholder, Stakeholder:
		return "Stakeholder", true
	case *StockPlan, StockPlan:
		return "StockPlan", true
	case *StockPosition, StockPosition:
		return "StockPosition", true
	case *ConvertiblePosition, ConvertiblePosition:
		return "ConvertiblePosition", true
	case *EquityCompensationPosition, EquityCompensationPosition:
		return "EquityCompensationPosition", true
	case *WarrantPosition, WarrantPosition:
		return "WarrantPosition", true
	default:
		return "*unknown*", false
	}
}

// Lists - true if the plan names the stock class
func (plan *StockPlan) Lists(stockClassId identifier.Identifier) bool {
	for _, id := range plan.StockClassIds {
		if id == stockClassId {
			return true
		}
	}
	return false
}
