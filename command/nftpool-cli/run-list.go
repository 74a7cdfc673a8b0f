// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftpoold/rpc/rental"
)

func listArguments(c *cli.Context) (*rental.ListArguments, error) {
	proof, err := checkCredential(c)
	if nil != err {
		return nil, err
	}
	contract, tokenId, err := checkAsset(c)
	if nil != err {
		return nil, err
	}
	flashFee, err := checkEther(c, "flash-fee")
	if nil != err {
		return nil, err
	}
	price, err := checkEther(c, "price")
	if nil != err {
		return nil, err
	}

	return &rental.ListArguments{
		Credential:    proof,
		Contract:      contract,
		TokenId:       tokenId,
		FlashFee:      flashFee,
		PricePerBlock: price,
		MaxBlocks:     c.Uint64("max-blocks"),
	}, nil
}

func runList(c *cli.Context) error {
	arguments, err := listArguments(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "list: %s/%s\n", arguments.Contract, arguments.TokenId)
	}

	response, err := client.List(arguments)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runEdit(c *cli.Context) error {
	arguments, err := listArguments(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Edit(arguments)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRemove(c *cli.Context) error {
	proof, err := checkCredential(c)
	if nil != err {
		return err
	}
	contract, tokenId, err := checkAsset(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Remove(&rental.RemoveArguments{
		Credential: proof,
		Contract:   contract,
		TokenId:    tokenId,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
