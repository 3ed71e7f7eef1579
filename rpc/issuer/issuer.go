// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer

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
	rateLimitIssuer = 200
	rateBurstIssuer = 100
)

// Issuer - type for RPC calls
type Issuer struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create an issuer RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *Issuer {
	return &Issuer{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitIssuer, rateBurstIssuer),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// ---

// InitializeArguments - arguments for Initialize
type InitializeArguments struct {
	Caller           authority.Principal   `json:"caller"`
	Id               identifier.Identifier `json:"id"`
	SharesAuthorized uint64                `json:"sharesAuthorized,string"`
}

// Initialize - create an issuer owned by the caller
func (issuer *Issuer) Initialize(arguments *InitializeArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(issuer.Limiter); nil != err {
		return err
	}
	if issuer.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	issuer.Log.Infof("Initialize: %s", arguments.Id)

	receipt, err := issuer.CapTable.InitializeIssuer(arguments.Caller, arguments.Id, arguments.SharesAuthorized)
	if nil != err {
		return err
	}
	*reply = receipt
	return nil
}

// ---

// AdjustArguments - arguments for AdjustAuthorizedShares
type AdjustArguments struct {
	Caller           authority.Principal   `json:"caller"`
	Id               identifier.Identifier `json:"id"`
	SharesAuthorized uint64                `json:"sharesAuthorized,string"`
}

// AdjustAuthorizedShares - overwrite the issuer's authorized shares
func (issuer *Issuer) AdjustAuthorizedShares(arguments *AdjustArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(issuer.Limiter); nil != err {
		return err
	}
	if issuer.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	issuer.Log.Infof("AdjustAuthorizedShares: %s  shares: %d", arguments.Id, arguments.SharesAuthorized)

	receipt, err := issuer.CapTable.AdjustAuthorizedShares(arguments.Caller, arguments.Id, arguments.SharesAuthorized)
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

// GetReply - an issuer and its authority
type GetReply struct {
	Issuer    *record.Issuer      `json:"issuer"`
	Authority authority.Principal `json:"authority"`
}

// Get - read an issuer
func (issuer *Issuer) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(issuer.Limiter); nil != err {
		return err
	}

	i, err := issuer.CapTable.Issuer(arguments.Id)
	if nil != err {
		return err
	}
	principal, err := issuer.CapTable.Authority(arguments.Id)
	if nil != err {
		return err
	}

	reply.Issuer = i
	reply.Authority = principal
	return nil
}
