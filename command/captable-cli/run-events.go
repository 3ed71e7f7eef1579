// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runEvents(c *cli.Context) error {
	m := getMetadata(c)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("count must be greater than zero")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListEvents(c.Uint64("start"), count)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Connection string      `json:"_connection"`
		Info       interface{} `json:"info"`
	}{
		Connection: m.connect,
		Info:       reply,
	})
}
