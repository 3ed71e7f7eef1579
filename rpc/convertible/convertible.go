// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package convertible

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
	rateLimitConvertible = 200
	rateBurstConvertible = 100
)

// Convertible - type for RPC calls
type Convertible struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create a convertible RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *Convertible {
	return &Convertible{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitConvertible, rateBurstConvertible),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// IssueArguments - arguments for Issue
type IssueArguments struct {
	Caller           authority.Principal   `json:"caller"`
	SecurityId       identifier.Identifier `json:"securityId"`
	InvestmentAmount uint64                `json:"investmentAmount,string"`
	StakeholderId    identifier.Identifier `json:"stakeholderId"`
}

// Issue - record a convertible investment
func (convertible *Convertible) Issue(arguments *IssueArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(convertible.Limiter); nil != err {
		return err
	}
	if convertible.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	convertible.Log.Infof("Issue: %s  amount: %d", arguments.SecurityId, arguments.InvestmentAmount)

	receipt, err := convertible.CapTable.IssueConvertible(
		arguments.Caller,
		arguments.SecurityId,
		arguments.InvestmentAmount,
		arguments.StakeholderId,
	)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// Get - read a convertible position
func (convertible *Convertible) Get(arguments *record.PositionKey, reply *record.ConvertiblePosition) error {

	if err := ratelimit.Limit(convertible.Limiter); nil != err {
		return err
	}

	p, err := convertible.CapTable.ConvertiblePosition(*arguments)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}
