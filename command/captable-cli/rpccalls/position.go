// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/rpc/convertible"
	"github.com/bitmark-inc/captabled/rpc/equity"
	"github.com/bitmark-inc/captabled/rpc/stock"
	"github.com/bitmark-inc/captabled/rpc/warrant"
)

// IssueStock - issue shares of a class to a stakeholder
func (client *Client) IssueStock(arguments *stock.IssueArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("Stock Issue", "Stock.Issue", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetStock - fetch a stock position
func (client *Client) GetStock(key *record.PositionKey) (*record.StockPosition, error) {
	var reply record.StockPosition
	if err := client.call("Stock Get", "Stock.Get", key, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IssueConvertible - record a convertible investment
func (client *Client) IssueConvertible(arguments *convertible.IssueArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("Convertible Issue", "Convertible.Issue", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetConvertible - fetch a convertible position
func (client *Client) GetConvertible(key *record.PositionKey) (*record.ConvertiblePosition, error) {
	var reply record.ConvertiblePosition
	if err := client.call("Convertible Get", "Convertible.Get", key, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IssueWarrant - record a warrant
func (client *Client) IssueWarrant(arguments *warrant.IssueArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("Warrant Issue", "Warrant.Issue", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetWarrant - fetch a warrant position
func (client *Client) GetWarrant(key *record.PositionKey) (*record.WarrantPosition, error) {
	var reply record.WarrantPosition
	if err := client.call("Warrant Get", "Warrant.Get", key, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IssueEquity - grant equity compensation
func (client *Client) IssueEquity(arguments *equity.IssueArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("EquityCompensation Issue", "EquityCompensation.Issue", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ExerciseEquity - convert granted equity into an existing stock position
func (client *Client) ExerciseEquity(arguments *equity.ExerciseArguments) (*event.Receipt, error) {
	var reply event.Receipt
	if err := client.call("EquityCompensation Exercise", "EquityCompensation.Exercise", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetEquity - fetch an equity compensation position
func (client *Client) GetEquity(key *record.EquityCompensationKey) (*record.EquityCompensationPosition, error) {
	var reply record.EquityCompensationPosition
	if err := client.call("EquityCompensation Get", "EquityCompensation.Get", key, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
