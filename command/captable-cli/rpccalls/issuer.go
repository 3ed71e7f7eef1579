// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/rpc/issuer"
	"github.com/bitmark-inc/captabled/rpc/stakeholder"
	"github.com/bitmark-inc/captabled/rpc/stockclass"
	"github.com/bitmark-inc/captabled/rpc/stockplan"
)

// InitializeIssuer - create an issuer owned by the caller
func (client *Client) InitializeIssuer(arguments *issuer.InitializeArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("Issuer Initialize", "Issuer.Initialize", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AdjustIssuer - change an issuer's authorized shares
func (client *Client) AdjustIssuer(arguments *issuer.AdjustArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("Issuer Adjust", "Issuer.AdjustAuthorizedShares", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetIssuer - fetch an issuer and its authority
func (client *Client) GetIssuer(arguments *issuer.GetArguments) (*issuer.GetReply, error) {
	var reply issuer.GetReply
	if err := client.call("Issuer Get", "Issuer.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateStockClass - add a class of shares to an issuer
func (client *Client) CreateStockClass(arguments *stockclass.CreateArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("StockClass Create", "StockClass.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AdjustStockClass - change a class's authorized shares
func (client *Client) AdjustStockClass(arguments *stockclass.AdjustArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("StockClass Adjust", "StockClass.AdjustShares", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetStockClass - fetch one class
func (client *Client) GetStockClass(arguments *stockclass.GetArguments) (*record.StockClass, error) {
	var reply record.StockClass
	if err := client.call("StockClass Get", "StockClass.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// StockClassPositions - page through the stock positions of a class
func (client *Client) StockClassPositions(arguments *stockclass.PositionsArguments) (*stockclass.PositionsReply, error) {
	var reply stockclass.PositionsReply
	if err := client.call("StockClass Positions", "StockClass.Positions", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateStakeholder - register a stakeholder with an issuer
func (client *Client) CreateStakeholder(arguments *stakeholder.CreateArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("Stakeholder Create", "Stakeholder.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetStakeholder - fetch one stakeholder
func (client *Client) GetStakeholder(arguments *stakeholder.GetArguments) (*record.Stakeholder, error) {
	var reply record.Stakeholder
	if err := client.call("Stakeholder Get", "Stakeholder.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateStockPlan - reserve shares of some classes for a plan
func (client *Client) CreateStockPlan(arguments *stockplan.CreateArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("StockPlan Create", "StockPlan.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AdjustStockPlan - change a plan's reserved shares
func (client *Client) AdjustStockPlan(arguments *stockplan.AdjustArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("StockPlan Adjust", "StockPlan.AdjustShares", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetStockPlan - fetch one plan
func (client *Client) GetStockPlan(arguments *stockplan.GetArguments) (*record.StockPlan, error) {
	var reply record.StockPlan
	if err := client.call("StockPlan Get", "StockPlan.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
