// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stockplan

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/captable"
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitStockPlan = 200
	rateBurstStockPlan = 100
)

// StockPlan - type for RPC calls
type StockPlan struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create a stock plan RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *StockPlan {
	return &StockPlan{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitStockPlan, rateBurstStockPlan),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// ---

// CreateArguments - arguments for Create
type CreateArguments struct {
	Caller         authority.Principal     `json:"caller"`
	IssuerId       identifier.Identifier   `json:"issuerId"`
	Id             identifier.Identifier   `json:"id"`
	StockClassIds  []identifier.Identifier `json:"stockClassIds"`
	SharesReserved uint64                  `json:"sharesReserved,string"`
}

// Create - reserve a pool of shares over one or more classes
func (plan *StockPlan) Create(arguments *CreateArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(plan.Limiter); nil != err {
		return err
	}
	if plan.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	plan.Log.Infof("Create: %s  issuer: %s  classes: %d", arguments.Id, arguments.IssuerId, len(arguments.StockClassIds))

	receipt, err := plan.CapTable.CreateStockPlan(
		arguments.Caller,
		arguments.IssuerId,
		arguments.Id,
		arguments.StockClassIds,
		arguments.SharesReserved,
	)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// ---

// AdjustArguments - arguments for AdjustShares
type AdjustArguments struct {
	Caller         authority.Principal   `json:"caller"`
	Id             identifier.Identifier `json:"id"`
	SharesReserved uint64                `json:"sharesReserved,string"`
}

// AdjustShares - overwrite a plan's reserved shares
func (plan *StockPlan) AdjustShares(arguments *AdjustArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(plan.Limiter); nil != err {
		return err
	}
	if plan.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	plan.Log.Infof("AdjustShares: %s  shares: %d", arguments.Id, arguments.SharesReserved)

	receipt, err := plan.CapTable.AdjustStockPlanShares(arguments.Caller, arguments.Id, arguments.SharesReserved)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// ---

// GetArguments - arguments for Get
type GetArguments struct {
	Id identifier.Identifier `json:"id"`
}

// Get - read a stock plan
func (plan *StockPlan) Get(arguments *GetArguments, reply *record.StockPlan) error {

	if err := ratelimit.Limit(plan.Limiter); nil != err {
		return err
	}

	p, err := plan.CapTable.StockPlan(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}
