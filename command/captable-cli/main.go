// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/captabled/authority"
)

type metadata struct {
	connect string
	useTLS  bool
	caller  authority.Principal
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "captable-cli"
	app.Usage = "issue and query cap table records on a captabled"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			EnvVar: "CAPTABLE_CONNECT",
			Usage:  " captabled RPC `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "no-tls, n",
			Usage: " connect without TLS",
		},
		cli.StringFlag{
			Name:   "caller, p",
			Value:  "",
			EnvVar: "CAPTABLE_CALLER",
			Usage:  " base58 caller `PRINCIPAL` for state changes",
		},
	}

	idFlag := func(name string, usage string) cli.Flag {
		return cli.StringFlag{
			Name:  name,
			Value: "",
			Usage: usage,
		}
	}
	quantityFlag := func(name string, usage string) cli.Flag {
		return cli.Uint64Flag{
			Name:  name,
			Value: 0,
			Usage: usage,
		}
	}

	app.Commands = []cli.Command{
		{
			Name:      "issuer",
			Usage:     "create, adjust or display an issuer",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "initialize",
					Usage: "create an issuer owned by the caller",
					Flags: []cli.Flag{
						idFlag("id, i", " issuer `UUID` (generated if blank)"),
						quantityFlag("authorized, a", "*shares authorized `NUMBER`"),
					},
					Action: runIssuerInitialize,
				},
				{
					Name:  "adjust",
					Usage: "set an issuer's authorized shares",
					Flags: []cli.Flag{
						idFlag("id, i", "*issuer `UUID`"),
						quantityFlag("authorized, a", "*shares authorized `NUMBER`"),
					},
					Action: runIssuerAdjust,
				},
				{
					Name:   "get",
					Usage:  "display an issuer",
					Flags:  []cli.Flag{idFlag("id, i", "*issuer `UUID`")},
					Action: runIssuerGet,
				},
			},
		},
		{
			Name:      "class",
			Usage:     "create, adjust or display a stock class",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "create",
					Usage: "add a stock class to an issuer",
					Flags: []cli.Flag{
						idFlag("issuer, I", "*issuer `UUID`"),
						idFlag("id, i", " stock class `UUID` (generated if blank)"),
						cli.StringFlag{
							Name:  "type, t",
							Value: "COMMON",
							Usage: " class `TYPE`",
						},
						quantityFlag("price, P", "*price per share `NUMBER`"),
						quantityFlag("authorized, a", "*shares authorized `NUMBER`"),
					},
					Action: runClassCreate,
				},
				{
					Name:  "adjust",
					Usage: "set a stock class's authorized shares",
					Flags: []cli.Flag{
						idFlag("id, i", "*stock class `UUID`"),
						quantityFlag("authorized, a", "*shares authorized `NUMBER`"),
					},
					Action: runClassAdjust,
				},
				{
					Name:   "get",
					Usage:  "display a stock class",
					Flags:  []cli.Flag{idFlag("id, i", "*stock class `UUID`")},
					Action: runClassGet,
				},
				{
					Name:  "positions",
					Usage: "list the stock positions of a class",
					Flags: []cli.Flag{
						idFlag("id, i", "*stock class `UUID`"),
						cli.IntFlag{
							Name:  "count, c",
							Value: 20,
							Usage: " maximum records to output `COUNT`",
						},
					},
					Action: runClassPositions,
				},
			},
		},
		{
			Name:      "stakeholder",
			Usage:     "create or display a stakeholder",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "create",
					Usage: "register a stakeholder with an issuer",
					Flags: []cli.Flag{
						idFlag("issuer, I", "*issuer `UUID`"),
						idFlag("id, i", " stakeholder `UUID` (generated if blank)"),
					},
					Action: runStakeholderCreate,
				},
				{
					Name:   "get",
					Usage:  "display a stakeholder",
					Flags:  []cli.Flag{idFlag("id, i", "*stakeholder `UUID`")},
					Action: runStakeholderGet,
				},
			},
		},
		{
			Name:      "plan",
			Usage:     "create, adjust or display a stock plan",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "create",
					Usage: "reserve shares of some stock classes",
					Flags: []cli.Flag{
						idFlag("issuer, I", "*issuer `UUID`"),
						idFlag("id, i", " stock plan `UUID` (generated if blank)"),
						cli.StringSliceFlag{
							Name:  "class, C",
							Usage: "*stock class `UUID` (repeatable)",
						},
						quantityFlag("reserved, r", "*shares reserved `NUMBER`"),
					},
					Action: runPlanCreate,
				},
				{
					Name:  "adjust",
					Usage: "set a stock plan's reserved shares",
					Flags: []cli.Flag{
						idFlag("id, i", "*stock plan `UUID`"),
						quantityFlag("reserved, r", "*shares reserved `NUMBER`"),
					},
					Action: runPlanAdjust,
				},
				{
					Name:   "get",
					Usage:  "display a stock plan",
					Flags:  []cli.Flag{idFlag("id, i", "*stock plan `UUID`")},
					Action: runPlanGet,
				},
			},
		},
		{
			Name:      "stock",
			Usage:     "issue or display a stock position",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "issue",
					Usage: "issue shares of a class to a stakeholder",
					Flags: []cli.Flag{
						idFlag("class, C", "*stock class `UUID`"),
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", " security `UUID` (generated if blank)"),
						quantityFlag("quantity, q", "*shares to issue `NUMBER`"),
						quantityFlag("price, P", "*share price `NUMBER`"),
					},
					Action: runStockIssue,
				},
				{
					Name:  "get",
					Usage: "display a stock position",
					Flags: []cli.Flag{
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", "*security `UUID`"),
					},
					Action: runStockGet,
				},
			},
		},
		{
			Name:      "convertible",
			Usage:     "issue or display a convertible position",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "issue",
					Usage: "record a convertible investment",
					Flags: []cli.Flag{
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", " security `UUID` (generated if blank)"),
						quantityFlag("amount, a", "*investment amount `NUMBER`"),
					},
					Action: runConvertibleIssue,
				},
				{
					Name:  "get",
					Usage: "display a convertible position",
					Flags: []cli.Flag{
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", "*security `UUID`"),
					},
					Action: runConvertibleGet,
				},
			},
		},
		{
			Name:      "warrant",
			Usage:     "issue or display a warrant position",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "issue",
					Usage: "record a warrant",
					Flags: []cli.Flag{
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", " security `UUID` (generated if blank)"),
						quantityFlag("quantity, q", "*quantity `NUMBER`"),
					},
					Action: runWarrantIssue,
				},
				{
					Name:  "get",
					Usage: "display a warrant position",
					Flags: []cli.Flag{
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", "*security `UUID`"),
					},
					Action: runWarrantGet,
				},
			},
		},
		{
			Name:      "equity",
			Usage:     "grant, exercise or display equity compensation",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "issue",
					Usage: "grant equity compensation",
					Flags: []cli.Flag{
						idFlag("class, C", "*stock class `UUID`"),
						idFlag("plan, P", " stock plan `UUID`"),
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", " security `UUID` (generated if blank)"),
						quantityFlag("quantity, q", "*quantity `NUMBER`"),
					},
					Action: runEquityIssue,
				},
				{
					Name:  "exercise",
					Usage: "convert granted equity into a stock position",
					Flags: []cli.Flag{
						idFlag("class, C", "*stock class `UUID` of the grant"),
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", "*security `UUID` of the grant"),
						idFlag("stock, T", "*security `UUID` of the stock position"),
						quantityFlag("quantity, q", "*quantity `NUMBER`"),
					},
					Action: runEquityExercise,
				},
				{
					Name:  "get",
					Usage: "display an equity compensation position",
					Flags: []cli.Flag{
						idFlag("class, C", "*stock class `UUID`"),
						idFlag("stakeholder, s", "*stakeholder `UUID`"),
						idFlag("security, S", "*security `UUID`"),
					},
					Action: runEquityGet,
				},
			},
		},
		{
			Name:      "events",
			Usage:     "list the event log",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first sequence `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:   "info",
			Usage:  "display captabled status",
			Action: runInfo,
		},
		{
			Name:      "listen",
			Usage:     "print events broadcast by captabled",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "broadcast, b",
					Value: "127.0.0.1:2135",
					Usage: " captabled broadcast `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key, k",
					Value: "",
					Usage: "*captabled publish public key `FILE`",
				},
			},
			Action: runListen,
		},
		{
			Name:   "principal",
			Usage:  "generate a random caller principal",
			Action: runPrincipal,
		},
		{
			Name:  "version",
			Usage: "display captable-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  !c.GlobalBool("no-tls"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if caller := c.GlobalString("caller"); "" != caller {
			p, err := authority.PrincipalFromBase58(caller)
			if nil != err {
				return fmt.Errorf("caller: %q error: %s", caller, err)
			}
			m.caller = p
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %q  tls: %t\n", m.connect, m.useTLS)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	return app
}
