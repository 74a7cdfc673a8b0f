// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runEarnings(c *cli.Context) error {
	owner, err := ownerOrCaller(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Earnings(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runWithdraw(c *cli.Context) error {
	proof, err := checkCredential(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Withdraw(proof)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPayouts(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Payouts()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
