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

func runRent(c *cli.Context) error {
	proof, err := checkCredential(c)
	if nil != err {
		return err
	}
	contract, tokenId, err := checkAsset(c)
	if nil != err {
		return err
	}
	blocks := c.Uint64("blocks")
	if 0 == blocks {
		return ErrRequiredBlocks
	}
	if "" == c.String("payment") {
		return ErrRequiredPayment
	}
	payment, err := checkEther(c, "payment")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "rent: %s/%s for: %d blocks paying: %s\n", contract, tokenId, blocks, payment.Ether())
	}

	response, err := client.RentLong(&rental.RentArguments{
		Credential: proof,
		Contract:   contract,
		TokenId:    tokenId,
		Blocks:     blocks,
		Payment:    payment,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runFlash(c *cli.Context) error {
	proof, err := checkCredential(c)
	if nil != err {
		return err
	}
	contract, tokenId, err := checkAsset(c)
	if nil != err {
		return err
	}
	if "" == c.String("payment") {
		return ErrRequiredPayment
	}
	payment, err := checkEther(c, "payment")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RentFlash(&rental.RentArguments{
		Credential: proof,
		Contract:   contract,
		TokenId:    tokenId,
		Payment:    payment,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runQuote(c *cli.Context) error {
	contract, tokenId, err := checkAsset(c)
	if nil != err {
		return err
	}
	blocks := c.Uint64("blocks")
	if 0 == blocks {
		return ErrRequiredBlocks
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Quote(&rental.QuoteArguments{
		Contract: contract,
		TokenId:  tokenId,
		Blocks:   blocks,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
