// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/rpc/issuer"
)

// receipt plus the identifier that was created or changed
type createdReply struct {
	Id       identifier.Identifier `json:"id"`
	Sequence uint64                `json:"sequence,string"`
	TxId     event.TxId            `json:"txId"`
}

func makeCreatedReply(id identifier.Identifier, receipt *event.Receipt) createdReply {
	return createdReply{
		Id:       id,
		Sequence: receipt.Sequence,
		TxId:     receipt.TxId,
	}
}

func runIssuerInitialize(c *cli.Context) error {
	m := getMetadata(c)
	if err := checkCaller(m); nil != err {
		return err
	}

	id, err := checkOrNewIdentifier(c, "id")
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

	receipt, err := client.InitializeIssuer(&issuer.InitializeArguments{
		Caller:           m.caller,
		Id:               id,
		SharesAuthorized: authorized,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, makeCreatedReply(id, receipt))
}

func runIssuerAdjust(c *cli.Context) error {
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

	receipt, err := client.AdjustIssuer(&issuer.AdjustArguments{
		Caller:           m.caller,
		Id:               id,
		SharesAuthorized: authorized,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runIssuerGet(c *cli.Context) error {
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

	reply, err := client.GetIssuer(&issuer.GetArguments{Id: id})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
