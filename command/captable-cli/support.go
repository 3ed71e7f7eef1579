// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/captabled/command/captable-cli/rpccalls"
	"github.com/bitmark-inc/captabled/identifier"
)

// subcommands run in their own app so search up the context chain
func getMetadata(c *cli.Context) *metadata {
	for ctx := c; nil != ctx; ctx = ctx.Parent() {
		if m, ok := ctx.App.Metadata["config"].(*metadata); ok {
			return m
		}
	}
	panic("configuration metadata is missing")
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

// a required identifier flag
func checkIdentifier(c *cli.Context, name string) (identifier.Identifier, error) {
	s := c.String(name)
	if "" == s {
		return identifier.Zero, fmt.Errorf("%s is required", name)
	}
	id, err := identifier.FromString(s)
	if nil != err {
		return identifier.Zero, fmt.Errorf("%s: %q error: %s", name, s, err)
	}
	return id, nil
}

// an identifier flag that defaults to a new random value
func checkOrNewIdentifier(c *cli.Context, name string) (identifier.Identifier, error) {
	if "" == c.String(name) {
		return identifier.New(), nil
	}
	return checkIdentifier(c, name)
}

func checkQuantity(c *cli.Context, name string) (uint64, error) {
	n := c.Uint64(name)
	if 0 == n {
		return 0, fmt.Errorf("%s must be greater than zero", name)
	}
	return n, nil
}

func checkCaller(m *metadata) error {
	if m.caller.IsZero() {
		return fmt.Errorf("caller is required for this command")
	}
	return nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
