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

	"github.com/bitmark-inc/nftpoold/command/nftpool-cli/rpccalls"
)

type metadata struct {
	connect string
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

func assetFlags(usage string) []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "contract, a",
			Value: "",
			Usage: "*collection contract `ADDRESS`",
		},
		cli.StringFlag{
			Name:  "token, t",
			Value: "",
			Usage: "*token id " + usage + " `DECIMAL`",
		},
	}
}

func termsFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "flash-fee, f",
			Value: "",
			Usage: " fee for a single block flash rental in ether `ETH`",
		},
		cli.StringFlag{
			Name:  "price, p",
			Value: "",
			Usage: " price per block in ether `ETH`",
		},
		cli.Uint64Flag{
			Name:  "max-blocks, m",
			Value: 0,
			Usage: " longest rental in blocks, zero for flash only `COUNT`",
		},
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "nftpool-cli"
	app.Usage = "NFT rental pool client"
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
			Usage:  " nftpoold rpc `HOST:PORT`",
			EnvVar: "NFTPOOL_CONNECT",
		},
		cli.StringFlag{
			Name:   "credential, K",
			Value:  "",
			Usage:  " token from nftpoold issue-token proving the caller `JWT`",
			EnvVar: "NFTPOOL_CREDENTIAL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "put an approved token into the pool",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(assetFlags("to list"), termsFlags()...),
			Action:    runList,
		},
		{
			Name:      "edit",
			Usage:     "change the terms of an idle listing",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(assetFlags("to edit"), termsFlags()...),
			Action:    runEdit,
		},
		{
			Name:      "remove",
			Usage:     "take an idle listing out of the pool, the token is returned",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetFlags("to remove"),
			Action:    runRemove,
		},
		{
			Name:      "rent",
			Usage:     "rent a listing for a number of blocks",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetFlags("to rent"),
				cli.Uint64Flag{
					Name:  "blocks, b",
					Value: 0,
					Usage: "*rental duration `BLOCKS`",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: "*ether sent with the rental, any excess is refunded `ETH`",
				},
			),
			Action: runRent,
		},
		{
			Name:      "flash",
			Usage:     "rent a listing for the current block only",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetFlags("to rent"),
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: "*ether sent with the rental `ETH`",
				},
			),
			Action: runFlash,
		},
		{
			Name:      "quote",
			Usage:     "cost of renting a listing",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetFlags("to price"),
				cli.Uint64Flag{
					Name:  "blocks, b",
					Value: 0,
					Usage: "*rental duration `BLOCKS`",
				},
			),
			Action: runQuote,
		},
		{
			Name:      "listings",
			Usage:     "list the pool a page at a time",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, a",
					Value: "",
					Usage: " start from this collection `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: " start from this token id `DECIMAL`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runListings,
		},
		{
			Name:      "listing",
			Usage:     "display one listing",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetFlags("to display"),
			Action:    runListing,
		},
		{
			Name:      "owned",
			Usage:     "listings belonging to an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ADDRESS` default is the credential holder",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "earnings",
			Usage:     "display the rental income waiting for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ADDRESS` default is the credential holder",
				},
			},
			Action: runEarnings,
		},
		{
			Name:   "withdraw",
			Usage:  "pay out all of the credential holder's earnings",
			Action: runWithdraw,
		},
		{
			Name:   "payouts",
			Usage:  "display payments not yet settled",
			Action: runPayouts,
		},
		{
			Name:      "register",
			Usage:     "register an NFT collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, a",
					Value: "",
					Usage: "*collection contract `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*collection `NAME`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " collection `SYMBOL`",
				},
				cli.StringFlag{
					Name:  "base-uri, u",
					Value: "",
					Usage: " token metadata is fetched from here `URI`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "mint",
			Usage:     "mint the next token of a collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, a",
					Value: "",
					Usage: "*collection contract `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*receiver `ADDRESS`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "approve",
			Usage:     "allow the pool to take a token",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetFlags("to approve"),
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: " `ADDRESS` default is the pool account",
				},
			),
			Action: runApprove,
		},
		{
			Name:      "owner",
			Usage:     "display who holds and who may use a token",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetFlags("to check"),
			Action:    runOwner,
		},
		{
			Name:   "info",
			Usage:  "display nftpoold status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display nftpool-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}
