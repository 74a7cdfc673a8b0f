// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nftpoold/rpc/earnings"
)

// Earnings - accumulated balance of an owner
func (client *Client) Earnings(owner string) (*earnings.GetReply, error) {
	var reply earnings.GetReply
	if err := client.call("Earnings.Get", &earnings.GetArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Withdraw - pay out the whole balance of the credential holder
func (client *Client) Withdraw(credential string) (*earnings.WithdrawReply, error) {
	var reply earnings.WithdrawReply
	if err := client.call("Earnings.Withdraw", &earnings.WithdrawArguments{Credential: credential}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Payouts - unsettled payout orders
func (client *Client) Payouts() (*earnings.PayoutsReply, error) {
	var reply earnings.PayoutsReply
	if err := client.call("Earnings.Payouts", &earnings.PayoutsArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
