// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftpoold/rpc/rental"
)

func runListings(c *cli.Context) error {
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	var start *rental.Asset
	contract := strings.TrimSpace(c.String("contract"))
	tokenId := strings.TrimSpace(c.String("token"))
	if "" != contract || "" != tokenId {
		if "" == contract {
			return ErrRequiredContract
		}
		if "" == tokenId {
			return ErrRequiredTokenId
		}
		start = &rental.Asset{
			Contract: contract,
			TokenId:  tokenId,
		}
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.All(&rental.AllArguments{
		Start: start,
		Count: count,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runListing(c *cli.Context) error {
	contract, tokenId, err := checkAsset(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(&rental.Asset{
		Contract: contract,
		TokenId:  tokenId,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {
	owner, err := ownerOrCaller(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	response, err := client.Owned(&rental.OwnedArguments{
		Owner: owner,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
