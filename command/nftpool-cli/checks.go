// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/wei"
)

// the daemon checks the credential, here it only has to be present
func checkCredential(c *cli.Context) (string, error) {
	token := strings.TrimSpace(c.GlobalString("credential"))
	if "" == token {
		return "", ErrRequiredCredential
	}
	return token, nil
}

// an explicit owner, or the address the credential was issued to
func ownerOrCaller(c *cli.Context) (string, error) {
	owner := strings.TrimSpace(c.String("owner"))
	if "" != owner {
		return owner, nil
	}
	token := strings.TrimSpace(c.GlobalString("credential"))
	if "" == token {
		return "", ErrRequiredOwner
	}
	subject, err := credential.Subject(token)
	if nil != err {
		return "", err
	}
	return subject.Hex(), nil
}

func checkContract(c *cli.Context) (string, error) {
	contract := strings.TrimSpace(c.String("contract"))
	if "" == contract {
		return "", ErrRequiredContract
	}
	return contract, nil
}

func checkAsset(c *cli.Context) (string, string, error) {
	contract, err := checkContract(c)
	if nil != err {
		return "", "", err
	}
	tokenId := strings.TrimSpace(c.String("token"))
	if "" == tokenId {
		return "", "", ErrRequiredTokenId
	}
	return contract, tokenId, nil
}

// amounts on the command line are in ether, blank is zero
func checkEther(c *cli.Context, name string) (wei.Amount, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return wei.Zero(), nil
	}
	return wei.FromEther(s)
}
