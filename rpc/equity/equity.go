// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package equity

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
	rateLimitEquity = 200
	rateBurstEquity = 100
)

// EquityCompensation - type for RPC calls
type EquityCompensation struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create an equity compensation RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *EquityCompensation {
	return &EquityCompensation{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitEquity, rateBurstEquity),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// ---

// IssueArguments - arguments for Issue
//
// stockPlanId may be omitted
type IssueArguments struct {
	Caller        authority.Principal   `json:"caller"`
	SecurityId    identifier.Identifier `json:"securityId"`
	Quantity      uint64                `json:"quantity,string"`
	StakeholderId identifier.Identifier `json:"stakeholderId"`
	StockClassId  identifier.Identifier `json:"stockClassId"`
	StockPlanId   identifier.Optional   `json:"stockPlanId,omitempty"`
}

// Issue - grant equity compensation over a stock class
func (equity *EquityCompensation) Issue(arguments *IssueArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(equity.Limiter); nil != err {
		return err
	}
	if equity.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	equity.Log.Infof("Issue: %s  class: %s  quantity: %d", arguments.SecurityId, arguments.StockClassId, arguments.Quantity)

	receipt, err := equity.CapTable.IssueEquityCompensation(
		arguments.Caller,
		arguments.SecurityId,
		arguments.Quantity,
		arguments.StakeholderId,
		arguments.StockClassId,
		arguments.StockPlanId,
	)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// ---

// ExerciseArguments - arguments for Exercise
type ExerciseArguments struct {
	Caller   authority.Principal          `json:"caller"`
	Equity   record.EquityCompensationKey `json:"equity"`
	Stock    record.PositionKey           `json:"stock"`
	Quantity uint64                       `json:"quantity,string"`
}

// Exercise - convert part of a grant against an existing stock position
func (equity *EquityCompensation) Exercise(arguments *ExerciseArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(equity.Limiter); nil != err {
		return err
	}
	if equity.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	equity.Log.Infof("Exercise: %s  into: %s  quantity: %d", arguments.Equity.SecurityId, arguments.Stock.SecurityId, arguments.Quantity)

	receipt, err := equity.CapTable.ExerciseEquityCompensation(
		arguments.Caller,
		arguments.Equity,
		arguments.Stock,
		arguments.Quantity,
	)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// ---

// Get - read an equity compensation position
func (equity *EquityCompensation) Get(arguments *record.EquityCompensationKey, reply *record.EquityCompensationPosition) error {

	if err := ratelimit.Limit(equity.Limiter); nil != err {
		return err
	}

	p, err := equity.CapTable.EquityCompensationPosition(*arguments)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}
