// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package warrant

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
	rateLimitWarrant = 200
	rateBurstWarrant = 100
)

// Warrant - type for RPC calls
type Warrant struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create a warrant RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *Warrant {
	return &Warrant{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitWarrant, rateBurstWarrant),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// IssueArguments - arguments for Issue
type IssueArguments struct {
	Caller        authority.Principal   `json:"caller"`
	SecurityId    identifier.Identifier `json:"securityId"`
	Quantity      uint64                `json:"quantity,string"`
	StakeholderId identifier.Identifier `json:"stakeholderId"`
}

// Issue - record warrants held by a stakeholder
func (warrant *Warrant) Issue(arguments *IssueArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(warrant.Limiter); nil != err {
		return err
	}
	if warrant.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	warrant.Log.Infof("Issue: %s  quantity: %d", arguments.SecurityId, arguments.Quantity)

	receipt, err := warrant.CapTable.IssueWarrant(
		arguments.Caller,
		arguments.SecurityId,
		arguments.Quantity,
		arguments.StakeholderId,
	)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// Get - read a warrant position
func (warrant *Warrant) Get(arguments *record.PositionKey, reply *record.WarrantPosition) error {

	if err := ratelimit.Limit(warrant.Limiter); nil != err {
		return err
	}

	p, err := warrant.CapTable.WarrantPosition(*arguments)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}
