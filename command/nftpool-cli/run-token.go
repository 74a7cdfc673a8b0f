// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftpoold/rpc/token"
)

func runRegister(c *cli.Context) error {
	contract, err := checkContract(c)
	if nil != err {
		return err
	}
	name := strings.TrimSpace(c.String("name"))
	if "" == name {
		return ErrRequiredName
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(&token.RegisterArguments{
		Contract: contract,
		Name:     name,
		Symbol:   strings.TrimSpace(c.String("symbol")),
		BaseURI:  strings.TrimSpace(c.String("base-uri")),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runMint(c *cli.Context) error {
	contract, err := checkContract(c)
	if nil != err {
		return err
	}
	to := strings.TrimSpace(c.String("to"))
	if "" == to {
		return ErrRequiredTo
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(&token.MintArguments{
		Contract: contract,
		To:       to,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApprove(c *cli.Context) error {
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

	response, err := client.Approve(&token.ApproveArguments{
		Credential: proof,
		Contract:   contract,
		TokenId:    tokenId,
		Spender:    strings.TrimSpace(c.String("spender")),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwner(c *cli.Context) error {
	contract, tokenId, err := checkAsset(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owner(&token.OwnerArguments{
		Contract: contract,
		TokenId:  tokenId,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
