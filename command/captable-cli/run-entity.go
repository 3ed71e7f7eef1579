// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/rpc/stakeholder"
	"github.com/bitmark-inc/captabled/rpc/stockclass"
	"github.com/bitmark-inc/captabled/rpc/stockplan"
)

func runClassCreate(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	issuerId, err := checkIdentifier(c, "issuer")
	if nil != err {
		return err
	}
	id, err := checkOrNewIdentifier(c, "id")
	if nil != err {
		return err
	}
	price, err := checkQuantity(c, "price")
	if nil != err {
		return err
	}
	authorized, err := checkQuantity(c, "authorized")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.CreateStockClass(&stockclass.CreateArguments{
		Caller:           m.caller,
		IssuerId:         issuerId,
		Id:               id,
		ClassType:        c.String("type"),
		PricePerShare:    price,
		SharesAuthorized: authorized,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(id, receipt))
}

func runClassAdjust(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	id, err := checkIdentifier(c, "id")
	if nil != err {
		return err
	}
	authorized := c.Uint64("authorized")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.AdjustStockClass(&stockclass.AdjustArguments{
		Caller:           m.caller,
		Id:               id,
		SharesAuthorized: authorized,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runClassGet(c *cli.Context) error {
	m := getMetadata(c)

	id, err := checkIdentifier(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetStockClass(&stockclass.GetArguments{Id: id})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

// follows NextStart until count positions have been printed
func runClassPositions(c *cli.Context) error {
	m := getMetadata(c)

	id, err := checkIdentifier(c, "id")
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("count must be greater than zero")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := stockclass.PositionsArguments{
		Id:    id,
		Count: count,
	}
	reply := stockclass.PositionsReply{}
	for {
		page, err := client.StockClassPositions(&arguments)
		if nil != err {
			return err
		}
		reply.Positions = append(reply.Positions, page.Positions...)
		reply.NextStart = page.NextStart
		if nil == page.NextStart || len(reply.Positions) >= count {
			break
		}
		arguments.Start = page.NextStart
		arguments.Count = count - len(reply.Positions)
	}

	return printJson(m.w, reply)
}

func runStakeholderCreate(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	issuerId, err := checkIdentifier(c, "issuer")
	if nil != err {
		return err
	}
	id, err := checkOrNewIdentifier(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.CreateStakeholder(&stakeholder.CreateArguments{
		Caller:   m.caller,
		IssuerId: issuerId,
		Id:       id,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(id, receipt))
}

func runStakeholderGet(c *cli.Context) error {
	m := getMetadata(c)

	id, err := checkIdentifier(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetStakeholder(&stakeholder.GetArguments{Id: id})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runPlanCreate(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	issuerId, err := checkIdentifier(c, "issuer")
	if nil != err {
		return err
	}
	id, err := checkOrNewIdentifier(c, "id")
	if nil != err {
		return err
	}
	reserved, err := checkQuantity(c, "reserved")
	if nil != err {
		return err
	}

	classes := c.StringSlice("class")
	if 0 == len(classes) {
		return fmt.Errorf("class is required")
	}
	classIds := make([]identifier.Identifier, len(classes))
	for i, s := range classes {
		classIds[i], err = identifier.FromString(s)
		if nil != err {
			return fmt.Errorf("class: %q error: %s", s, err)
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.CreateStockPlan(&stockplan.CreateArguments{
		Caller:         m.caller,
		IssuerId:       issuerId,
		Id:             id,
		StockClassIds:  classIds,
		SharesReserved: reserved,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(id, receipt))
}

func runPlanAdjust(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	id, err := checkIdentifier(c, "id")
	if nil != err {
		return err
	}
	reserved := c.Uint64("reserved")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.AdjustStockPlan(&stockplan.AdjustArguments{
		Caller:         m.caller,
		Id:             id,
		SharesReserved: reserved,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runPlanGet(c *cli.Context) error {
	m := getMetadata(c)

	id, err := checkIdentifier(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply *record.StockPlan
	reply, err = client.GetStockPlan(&stockplan.GetArguments{Id: id})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
