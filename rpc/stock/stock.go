// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stock

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
	rateLimitStock = 200
	rateBurstStock = 100
)

// Stock - type for RPC calls
type Stock struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create a stock RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *Stock {
	return &Stock{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitStock, rateBurstStock),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// IssueArguments - arguments for Issue
type IssueArguments struct {
	Caller        authority.Principal   `json:"caller"`
	StockClassId  identifier.Identifier `json:"stockClassId"`
	SecurityId    identifier.Identifier `json:"securityId"`
	Quantity      uint64                `json:"quantity,string"`
	SharePrice    uint64                `json:"sharePrice,string"`
	StakeholderId identifier.Identifier `json:"stakeholderId"`
}

// Issue - issue shares of a class to a stakeholder
func (stock *Stock) Issue(arguments *IssueArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(stock.Limiter); nil != err {
		return err
	}
	if stock.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	stock.Log.Infof("Issue: %s  class: %s  quantity: %d", arguments.SecurityId, arguments.StockClassId, arguments.Quantity)

	receipt, err := stock.CapTable.IssueStock(
		arguments.Caller,
		arguments.StockClassId,
		arguments.SecurityId,
		arguments.Quantity,
		arguments.SharePrice,
		arguments.StakeholderId,
	)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// Get - read a stock position
func (stock *Stock) Get(arguments *record.PositionKey, reply *record.StockPosition) error {

	if err := ratelimit.Limit(stock.Limiter); nil != err {
		return err
	}

	p, err := stock.CapTable.StockPosition(*arguments)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}
