// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nftpoold/rpc/token"
)

// Register - add a token collection
func (client *Client) Register(arguments *token.RegisterArguments) (*token.RegisterReply, error) {
	var reply token.RegisterReply
	if err := client.call("Token.Register", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Mint - create the next token of a collection
func (client *Client) Mint(arguments *token.MintArguments) (*token.MintReply, error) {
	var reply token.MintReply
	if err := client.call("Token.Mint", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Approve - let a spender, by default the pool, take a token
func (client *Client) Approve(arguments *token.ApproveArguments) (*token.ApproveReply, error) {
	var reply token.ApproveReply
	if err := client.call("Token.Approve", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owner - custody state of a token
func (client *Client) Owner(arguments *token.OwnerArguments) (*token.OwnerReply, error) {
	var reply token.OwnerReply
	if err := client.call("Token.Owner", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
