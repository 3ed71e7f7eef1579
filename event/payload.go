// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/captabled/identifier"
)

// Payload - the kind specific part of an event
//
// fields are packed in struct order: identifiers as their 16 raw
// bytes, integers as Varint64, strings and lists as a Varint64 count
// followed by the data
type Payload interface {
	Type() TxType
	pack(buffer []byte) []byte
	unpack(d *decoder)
}

// IssuerInitialized - a new issuer
type IssuerInitialized struct {
	SharesAuthorized uint64 `json:"sharesAuthorized,string"`
}

// IssuerSharesAdjusted - issuer authorized shares overwritten
type IssuerSharesAdjusted struct {
	NewSharesAuthorized uint64 `json:"newSharesAuthorized,string"`
}

// StockClassCreated - a new stock class
type StockClassCreated struct {
	Id                      identifier.Identifier `json:"id"`
	ClassType               string                `json:"classType"`
	PricePerShare           uint64                `json:"pricePerShare,string"`
	InitialSharesAuthorized uint64                `json:"initialSharesAuthorized,string"`
}

// StockClassSharesAdjusted - stock class authorized shares overwritten
type StockClassSharesAdjusted struct {
	StockClassId        identifier.Identifier `json:"stockClassId"`
	NewSharesAuthorized uint64                `json:"newSharesAuthorized,string"`
}

// StakeholderCreated - a new stakeholder
type StakeholderCreated struct {
	Id identifier.Identifier `json:"id"`
}

// StockPlanCreated - a new stock plan
type StockPlanCreated struct {
	Id             identifier.Identifier   `json:"id"`
	SharesReserved uint64                  `json:"sharesReserved,string"`
	StockClassIds  []identifier.Identifier `json:"stockClassIds"`
}

// StockPlanSharesAdjusted - stock plan reserve overwritten
type StockPlanSharesAdjusted struct {
	Id                identifier.Identifier `json:"id"`
	NewSharesReserved uint64                `json:"newSharesReserved,string"`
}

// StockIssued - a new stock position
type StockIssued struct {
	StockClassId  identifier.Identifier `json:"stockClassId"`
	SecurityId    identifier.Identifier `json:"securityId"`
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	Quantity      uint64                `json:"quantity,string"`
	SharePrice    uint64                `json:"sharePrice,string"`
}

// ConvertibleIssued - a new convertible position
type ConvertibleIssued struct {
	StakeholderId    identifier.Identifier `json:"stakeholderId"`
	SecurityId       identifier.Identifier `json:"securityId"`
	InvestmentAmount uint64                `json:"investmentAmount,string"`
}

// EquityCompensationIssued - a new equity compensation position
//
// StockPlanId is zero filled when the grant has no plan
type EquityCompensationIssued struct {
	SecurityId    identifier.Identifier `json:"securityId"`
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	StockClassId  identifier.Identifier `json:"stockClassId"`
	StockPlanId   identifier.Identifier `json:"stockPlanId"`
	Quantity      uint64                `json:"quantity,string"`
}

// EquityCompensationExercised - grant quantity converted to stock
type EquityCompensationExercised struct {
	EquityCompensationSecurityId identifier.Identifier `json:"equityCompensationSecurityId"`
	ResultingStockSecurityId     identifier.Identifier `json:"resultingStockSecurityId"`
	Quantity                     uint64                `json:"quantity,string"`
}

// WarrantIssued - a new warrant position
type WarrantIssued struct {
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	SecurityId    identifier.Identifier `json:"securityId"`
	Quantity      uint64                `json:"quantity,string"`
}

// Type - kinds of each payload
func (*IssuerInitialized) Type() TxType           { return IssuerInitialization }
func (*IssuerSharesAdjusted) Type() TxType        { return IssuerAuthorizedSharesAdjustment }
func (*StockClassCreated) Type() TxType           { return StockClassCreation }
func (*StockClassSharesAdjusted) Type() TxType    { return StockClassAuthorizedSharesAdjustment }
func (*StakeholderCreated) Type() TxType          { return StakeholderCreation }
func (*StockPlanCreated) Type() TxType            { return StockPlanCreation }
func (*StockPlanSharesAdjusted) Type() TxType     { return StockPlanPoolAdjustment }
func (*StockIssued) Type() TxType                 { return StockIssuance }
func (*ConvertibleIssued) Type() TxType           { return ConvertibleIssuance }
func (*EquityCompensationIssued) Type() TxType    { return EquityCompensationIssuance }
func (*EquityCompensationExercised) Type() TxType { return EquityCompensationExercise }
func (*WarrantIssued) Type() TxType               { return WarrantIssuance }

// empty payload for a kind, nil for reserved or unknown kinds
func newPayload(t TxType) Payload {
	switch t {
	case IssuerInitialization:
		return &IssuerInitialized{}
	case IssuerAuthorizedSharesAdjustment:
		return &IssuerSharesAdjusted{}
	case StockClassCreation:
		return &StockClassCreated{}
	case StockClassAuthorizedSharesAdjustment:
		return &StockClassSharesAdjusted{}
	case StakeholderCreation:
		return &StakeholderCreated{}
	case StockPlanCreation:
		return &StockPlanCreated{}
	case StockPlanPoolAdjustment:
		return &StockPlanSharesAdjusted{}
	case StockIssuance:
		return &StockIssued{}
	case ConvertibleIssuance:
		return &ConvertibleIssued{}
	case EquityCompensationIssuance:
		return &EquityCompensationIssued{}
	case EquityCompensationExercise:
		return &EquityCompensationExercised{}
	case WarrantIssuance:
		return &WarrantIssued{}
	default:
		return nil
	}
}

func (p *IssuerInitialized) pack(b []byte) []byte {
	return appendUint64(b, p.SharesAuthorized)
}

func (p *IssuerInitialized) unpack(d *decoder) {
	p.SharesAuthorized = d.readUint64()
}

func (p *IssuerSharesAdjusted) pack(b []byte) []byte {
	return appendUint64(b, p.NewSharesAuthorized)
}

func (p *IssuerSharesAdjusted) unpack(d *decoder) {
	p.NewSharesAuthorized = d.readUint64()
}

func (p *StockClassCreated) pack(b []byte) []byte {
	b = appendIdentifier(b, p.Id)
	b = appendString(b, p.ClassType)
	b = appendUint64(b, p.PricePerShare)
	return appendUint64(b, p.InitialSharesAuthorized)
}

func (p *StockClassCreated) unpack(d *decoder) {
	p.Id = d.readIdentifier()
	p.ClassType = d.readString()
	p.PricePerShare = d.readUint64()
	p.InitialSharesAuthorized = d.readUint64()
}

func (p *StockClassSharesAdjusted) pack(b []byte) []byte {
	b = appendIdentifier(b, p.StockClassId)
	return appendUint64(b, p.NewSharesAuthorized)
}

func (p *StockClassSharesAdjusted) unpack(d *decoder) {
	p.StockClassId = d.readIdentifier()
	p.NewSharesAuthorized = d.readUint64()
}

func (p *StakeholderCreated) pack(b []byte) []byte {
	return appendIdentifier(b, p.Id)
}

func (p *StakeholderCreated) unpack(d *decoder) {
	p.Id = d.readIdentifier()
}

func (p *StockPlanCreated) pack(b []byte) []byte {
	b = appendIdentifier(b, p.Id)
	b = appendUint64(b, p.SharesReserved)
	b = appendUint64(b, uint64(len(p.StockClassIds)))
	for _, id := range p.StockClassIds {
		b = appendIdentifier(b, id)
	}
	return b
}

func (p *StockPlanCreated) unpack(d *decoder) {
	p.Id = d.readIdentifier()
	p.SharesReserved = d.readUint64()
	count := d.readCount(maxListLength)
	p.StockClassIds = make([]identifier.Identifier, count)
	for i := 0; i < count; i += 1 {
		p.StockClassIds[i] = d.readIdentifier()
	}
}

func (p *StockPlanSharesAdjusted) pack(b []byte) []byte {
	b = appendIdentifier(b, p.Id)
	return appendUint64(b, p.NewSharesReserved)
}

func (p *StockPlanSharesAdjusted) unpack(d *decoder) {
	p.Id = d.readIdentifier()
	p.NewSharesReserved = d.readUint64()
}

func (p *StockIssued) pack(b []byte) []byte {
	b = appendIdentifier(b, p.StockClassId)
	b = appendIdentifier(b, p.SecurityId)
	b = appendIdentifier(b, p.StakeholderId)
	b = appendUint64(b, p.Quantity)
	return appendUint64(b, p.SharePrice)
}

func (p *StockIssued) unpack(d *decoder) {
	p.StockClassId = d.readIdentifier()
	p.SecurityId = d.readIdentifier()
	p.StakeholderId = d.readIdentifier()
	p.Quantity = d.readUint64()
	p.SharePrice = d.readUint64()
}

func (p *ConvertibleIssued) pack(b []byte) []byte {
	b = appendIdentifier(b, p.StakeholderId)
	b = appendIdentifier(b, p.SecurityId)
	return appendUint64(b, p.InvestmentAmount)
}

func (p *ConvertibleIssued) unpack(d *decoder) {
	p.StakeholderId = d.readIdentifier()
	p.SecurityId = d.readIdentifier()
	p.InvestmentAmount = d.readUint64()
}

func (p *EquityCompensationIssued) pack(b []byte) []byte {
	b = appendIdentifier(b, p.SecurityId)
	b = appendIdentifier(b, p.StakeholderId)
	b = appendIdentifier(b, p.StockClassId)
	b = appendIdentifier(b, p.StockPlanId)
	return appendUint64(b, p.Quantity)
}

func (p *EquityCompensationIssued) unpack(d *decoder) {
	p.SecurityId = d.readIdentifier()
	p.StakeholderId = d.readIdentifier()
	p.StockClassId = d.readIdentifier()
	p.StockPlanId = d.readIdentifier()
	p.Quantity = d.readUint64()
}

func (p *EquityCompensationExercised) pack(b []byte) []byte {
	b = appendIdentifier(b, p.EquityCompensationSecurityId)
	b = appendIdentifier(b, p.ResultingStockSecurityId)
	return appendUint64(b, p.Quantity)
}

func (p *EquityCompensationExercised) unpack(d *decoder) {
	p.EquityCompensationSecurityId = d.readIdentifier()
	p.ResultingStockSecurityId = d.readIdentifier()
	p.Quantity = d.readUint64()
}

func (p *WarrantIssued) pack(b []byte) []byte {
	b = appendIdentifier(b, p.StakeholderId)
	b = appendIdentifier(b, p.SecurityId)
	return appendUint64(b, p.Quantity)
}

func (p *WarrantIssued) unpack(d *decoder) {
	p.StakeholderId = d.readIdentifier()
	p.SecurityId = d.readIdentifier()
	p.Quantity = d.readUint64()
}
