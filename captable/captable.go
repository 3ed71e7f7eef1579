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
)

// CapTable - the ledger operations and read-side queries
type CapTable interface {
	InitializeIssuer(caller authority.Principal, issuerId identifier.Identifier, sharesAuthorized uint64) (event.Receipt, error)
	AdjustAuthorizedShares(caller authority.Principal, issuerId identifier.Identifier, sharesAuthorized uint64) (event.Receipt, error)

	CreateStockClass(caller authority.Principal, issuerId identifier.Identifier, id identifier.Identifier, classType string, pricePerShare uint64, sharesAuthorized uint64) (event.Receipt, error)
	AdjustStockClassShares(caller authority.Principal, stockClassId identifier.Identifier, sharesAuthorized uint64) (event.Receipt, error)

	CreateStakeholder(caller authority.Principal, issuerId identifier.Identifier, id identifier.Identifier) (event.Receipt, error)

	CreateStockPlan(caller authority.Principal, issuerId identifier.Identifier, id identifier.Identifier, stockClassIds []identifier.Identifier, sharesReserved uint64) (event.Receipt, error)
	AdjustStockPlanShares(caller authority.Principal, stockPlanId identifier.Identifier, sharesReserved uint64) (event.Receipt, error)

	IssueStock(caller authority.Principal, stockClassId identifier.Identifier, securityId identifier.Identifier, quantity uint64, sharePrice uint64, stakeholderId identifier.Identifier) (event.Receipt, error)
	IssueConvertible(caller authority.Principal, securityId identifier.Identifier, investmentAmount uint64, stakeholderId identifier.Identifier) (event.Receipt, error)
	IssueEquityCompensation(caller authority.Principal, securityId identifier.Identifier, quantity uint64, stakeholderId identifier.Identifier, stockClassId identifier.Identifier, stockPlanId identifier.Optional) (event.Receipt, error)
	ExerciseEquityCompensation(caller authority.Principal, equityKey record.EquityCompensationKey, stockKey record.PositionKey, quantity uint64) (event.Receipt, error)
	IssueWarrant(caller authority.Principal, securityId identifier.Identifier, quantity uint64, stakeholderId identifier.Identifier) (event.Receipt, error)

	Authority(issuerId identifier.Identifier) (authority.Principal, error)
	Issuer(id identifier.Identifier) (*record.Issuer, error)
	StockClass(id identifier.Identifier) (*record.StockClass, error)
	Stakeholder(id identifier.Identifier) (*record.Stakeholder, error)
	StockPlan(id identifier.Identifier) (*record.StockPlan, error)
	StockPosition(key record.PositionKey) (*record.StockPosition, error)
	ConvertiblePosition(key record.PositionKey) (*record.ConvertiblePosition, error)
	EquityCompensationPosition(key record.EquityCompensationKey) (*record.EquityCompensationPosition, error)
	WarrantPosition(key record.PositionKey) (*record.WarrantPosition, error)
	StockClassPositions(stockClassId identifier.Identifier, start *record.PositionKey, count int) ([]ClassPosition, error)
}

// ClassPosition - one entry of the stock class index
type ClassPosition struct {
	Key      record.PositionKey `json:"key"`
	Quantity uint64             `json:"quantity,string"`
}

type ledger struct{}
