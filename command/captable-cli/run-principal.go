// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/captabled/authority"
)

// a random caller principal for use with --caller
func runPrincipal(c *cli.Context) error {
	m := getMetadata(c)

	p := authority.Principal{}
	if _, err := rand.Read(p[:]); nil != err {
		return err
	}

	return printJson(m.w, struct {
		Principal authority.Principal `json:"principal"`
	}{
		Principal: p,
	})
}
