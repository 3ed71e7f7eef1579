// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stakeholder

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
	rateLimitStakeholder = 200
	rateBurstStakeholder = 100
)

// Stakeholder - type for RPC calls
type Stakeholder struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create a stakeholder RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *Stakeholder {
	return &Stakeholder{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitStakeholder, rateBurstStakeholder),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// CreateArguments - arguments for Create
type CreateArguments struct {
	Caller   authority.Principal   `json:"caller"`
	IssuerId identifier.Identifier `json:"issuerId"`
	Id       identifier.Identifier `json:"id"`
}

// Create - register a stakeholder under an issuer
func (stakeholder *Stakeholder) Create(arguments *CreateArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(stakeholder.Limiter); nil != err {
		return err
	}
	if stakeholder.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	stakeholder.Log.Infof("Create: %s  issuer: %s", arguments.Id, arguments.IssuerId)

	receipt, err := stakeholder.CapTable.CreateStakeholder(arguments.Caller, arguments.IssuerId, arguments.Id)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// GetArguments - arguments for Get
type GetArguments struct {
	Id identifier.Identifier `json:"id"`
}

// Get - read a stakeholder
func (stakeholder *Stakeholder) Get(arguments *GetArguments, reply *record.Stakeholder) error {

	if err := ratelimit.Limit(stakeholder.Limiter); nil != err {
		return err
	}

	s, err := stakeholder.CapTable.Stakeholder(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *s
	return nil
}
