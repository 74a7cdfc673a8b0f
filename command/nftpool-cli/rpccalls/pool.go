// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/rpc/rental"
)

// List - place an approved token in the pool
func (client *Client) List(arguments *rental.ListArguments) (*rental.ListReply, error) {
	var reply rental.ListReply
	if err := client.call("Pool.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Edit - replace the terms of a listing
func (client *Client) Edit(arguments *rental.ListArguments) (*rental.ListReply, error) {
	var reply rental.ListReply
	if err := client.call("Pool.Edit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Remove - take an idle token back
func (client *Client) Remove(arguments *rental.RemoveArguments) (*rental.ListReply, error) {
	var reply rental.ListReply
	if err := client.call("Pool.Remove", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RentLong - rent for a number of blocks
func (client *Client) RentLong(arguments *rental.RentArguments) (*pool.RentReceipt, error) {
	var reply pool.RentReceipt
	if err := client.call("Pool.RentLong", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RentFlash - rent for the current block
func (client *Client) RentFlash(arguments *rental.RentArguments) (*pool.RentReceipt, error) {
	var reply pool.RentReceipt
	if err := client.call("Pool.RentFlash", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Quote - exact payment for a long rental
func (client *Client) Quote(arguments *rental.QuoteArguments) (*rental.QuoteReply, error) {
	var reply rental.QuoteReply
	if err := client.call("Pool.Quote", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Get - one listing
func (client *Client) Get(asset *rental.Asset) (*pool.Summary, error) {
	var reply pool.Summary
	if err := client.call("Pool.Get", asset, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// All - one page of listings
func (client *Client) All(arguments *rental.AllArguments) (*rental.AllReply, error) {
	var reply rental.AllReply
	if err := client.call("Pool.All", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owned - listings of one owner
func (client *Client) Owned(arguments *rental.OwnedArguments) (*rental.OwnedReply, error) {
	var reply rental.OwnedReply
	if err := client.call("Pool.Owned", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
