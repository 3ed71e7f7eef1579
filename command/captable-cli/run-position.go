// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/rpc/convertible"
	"github.com/bitmark-inc/captabled/rpc/equity"
	"github.com/bitmark-inc/captabled/rpc/stock"
	"github.com/bitmark-inc/captabled/rpc/warrant"
)

func checkPositionKey(c *cli.Context) (*record.PositionKey, error) {
	stakeholderId, err := checkIdentifier(c, "stakeholder")
	if nil != err {
		return nil, err
	}
	securityId, err := checkIdentifier(c, "security")
	if nil != err {
		return nil, err
	}
	return &record.PositionKey{
		StakeholderId: stakeholderId,
		SecurityId:    securityId,
	}, nil
}

func checkEquityKey(c *cli.Context) (*record.EquityCompensationKey, error) {
	key, err := checkPositionKey(c)
	if nil != err {
		return nil, err
	}
	classId, err := checkIdentifier(c, "class")
	if nil != err {
		return nil, err
	}
	return &record.EquityCompensationKey{
		StockClassId:  classId,
		StakeholderId: key.StakeholderId,
		SecurityId:    key.SecurityId,
	}, nil
}

func runStockIssue(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	classId, err := checkIdentifier(c, "class")
	if nil != err {
		return err
	}
	stakeholderId, err := checkIdentifier(c, "stakeholder")
	if nil != err {
		return err
	}
	securityId, err := checkOrNewIdentifier(c, "security")
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}
	price, err := checkQuantity(c, "price")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.IssueStock(&stock.IssueArguments{
		Caller:        m.caller,
		StockClassId:  classId,
		SecurityId:    securityId,
		Quantity:      quantity,
		SharePrice:    price,
		StakeholderId: stakeholderId,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(securityId, receipt))
}

func runStockGet(c *cli.Context) error {
	m := getMetadata(c)

	key, err := checkPositionKey(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetStock(key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runConvertibleIssue(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	stakeholderId, err := checkIdentifier(c, "stakeholder")
	if nil != err {
		return err
	}
	securityId, err := checkOrNewIdentifier(c, "security")
	if nil != err {
		return err
	}
	amount, err := checkQuantity(c, "amount")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.IssueConvertible(&convertible.IssueArguments{
		Caller:           m.caller,
		SecurityId:       securityId,
		InvestmentAmount: amount,
		StakeholderId:    stakeholderId,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(securityId, receipt))
}

func runConvertibleGet(c *cli.Context) error {
	m := getMetadata(c)

	key, err := checkPositionKey(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetConvertible(key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runWarrantIssue(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	stakeholderId, err := checkIdentifier(c, "stakeholder")
	if nil != err {
		return err
	}
	securityId, err := checkOrNewIdentifier(c, "security")
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.IssueWarrant(&warrant.IssueArguments{
		Caller:        m.caller,
		SecurityId:    securityId,
		Quantity:      quantity,
		StakeholderId: stakeholderId,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(securityId, receipt))
}

func runWarrantGet(c *cli.Context) error {
	m := getMetadata(c)

	key, err := checkPositionKey(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetWarrant(key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runEquityIssue(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	classId, err := checkIdentifier(c, "class")
	if nil != err {
		return err
	}
	stakeholderId, err := checkIdentifier(c, "stakeholder")
	if nil != err {
		return err
	}
	securityId, err := checkOrNewIdentifier(c, "security")
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}

	var planId identifier.Optional
	if "" != c.String("plan") {
		id, err := checkIdentifier(c, "plan")
		if nil != err {
			return err
		}
		planId = identifier.Some(id)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.IssueEquity(&equity.IssueArguments{
		Caller:        m.caller,
		SecurityId:    securityId,
		Quantity:      quantity,
		StakeholderId: stakeholderId,
		StockClassId:  classId,
		StockPlanId:   planId,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(securityId, receipt))
}

func runEquityExercise(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	equityKey, err := checkEquityKey(c)
	if nil != err {
		return err
	}
	stockId, err := checkIdentifier(c, "stock")
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.ExerciseEquity(&equity.ExerciseArguments{
		Caller: m.caller,
		Equity: *equityKey,
		Stock: record.PositionKey{
			StakeholderId: equityKey.StakeholderId,
			SecurityId:    stockId,
		},
		Quantity: quantity,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runEquityGet(c *cli.Context) error {
	m := getMetadata(c)

	key, err := checkEquityKey(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetEquity(key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
