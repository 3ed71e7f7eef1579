// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stockclass

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
	rateLimitStockClass = 200
	rateBurstStockClass = 100

	// limit for Positions count
	maximumPositions = 100
)

// StockClass - type for RPC calls
type StockClass struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	CapTable captable.CapTable
	ReadOnly func() bool
}

// New - create a stock class RPC handler
func New(log *logger.L, ct captable.CapTable, readOnly func() bool) *StockClass {
	return &StockClass{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitStockClass, rateBurstStockClass),
		CapTable: ct,
		ReadOnly: readOnly,
	}
}

// ---

// CreateArguments - arguments for Create
type CreateArguments struct {
	Caller           authority.Principal   `json:"caller"`
	IssuerId         identifier.Identifier `json:"issuerId"`
	Id               identifier.Identifier `json:"id"`
	ClassType        string                `json:"classType"`
	PricePerShare    uint64                `json:"pricePerShare,string"`
	SharesAuthorized uint64                `json:"sharesAuthorized,string"`
}

// Create - add a stock class to an issuer
func (class *StockClass) Create(arguments *CreateArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(class.Limiter); nil != err {
		return err
	}
	if class.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	class.Log.Infof("Create: %s  issuer: %s  type: %q", arguments.Id, arguments.IssuerId, arguments.ClassType)

	receipt, err := class.CapTable.CreateStockClass(
		arguments.Caller,
		arguments.IssuerId,
		arguments.Id,
		arguments.ClassType,
		arguments.PricePerShare,
		arguments.SharesAuthorized,
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
	Caller           authority.Principal   `json:"caller"`
	Id               identifier.Identifier `json:"id"`
	SharesAuthorized uint64                `json:"sharesAuthorized,string"`
}

// AdjustShares - overwrite a class's authorized shares
func (class *StockClass) AdjustShares(arguments *AdjustArguments, reply *event.Receipt) error {

	if err := ratelimit.Limit(class.Limiter); nil != err {
		return err
	}
	if class.ReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	if arguments.Caller.IsZero() {
		return fault.MissingCaller
	}

	class.Log.Infof("AdjustShares: %s  shares: %d", arguments.Id, arguments.SharesAuthorized)

	receipt, err := class.CapTable.AdjustStockClassShares(arguments.Caller, arguments.Id, arguments.SharesAuthorized)
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

// Get - read a stock class
func (class *StockClass) Get(arguments *GetArguments, reply *record.StockClass) error {

	if err := ratelimit.Limit(class.Limiter); nil != err {
		return err
	}

	c, err := class.CapTable.StockClass(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *c
	return nil
}

// ---

// PositionsArguments - arguments for Positions
type PositionsArguments struct {
	Id    identifier.Identifier `json:"id"`
	Start *record.PositionKey   `json:"start"`
	Count int                   `json:"count"`
}

// PositionsReply - one page of positions and the key that starts the next
type PositionsReply struct {
	Positions []captable.ClassPosition `json:"positions"`
	NextStart *record.PositionKey      `json:"nextStart,omitempty"`
}

// Positions - page through the positions issued against a class
func (class *StockClass) Positions(arguments *PositionsArguments, reply *PositionsReply) error {

	if err := ratelimit.LimitN(class.Limiter, arguments.Count, maximumPositions); nil != err {
		return err
	}

	// one extra to find the next start
	positions, err := class.CapTable.StockClassPositions(arguments.Id, arguments.Start, arguments.Count+1)
	if nil != err {
		return err
	}

	if len(positions) > arguments.Count {
		next := positions[arguments.Count].Key
		reply.NextStart = &next
		positions = positions[:arguments.Count]
	}
	reply.Positions = positions
	return nil
}
