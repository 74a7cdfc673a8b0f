// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package earnings

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/payment"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/rpc/ratelimit"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Payouts - orders waiting for settlement
type Payouts interface {
	Pending() ([]*payment.Order, error)
}

// Earnings - type for the RPC
type Earnings struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Pool        pool.Operations
	Outbox      Payouts
	Credentials *credential.Issuer
}

// New - create the earnings service, payouts may be nil when the
// transfer primitive is not the outbox
func New(log *logger.L, p pool.Operations, payouts Payouts, credentials *credential.Issuer) *Earnings {
	return &Earnings{
		Log:         log,
		Limiter:     ratelimit.NewLimiter(),
		Pool:        p,
		Outbox:      payouts,
		Credentials: credentials,
	}
}

// GetArguments - arguments for Earnings.Get
type GetArguments struct {
	Owner string `json:"owner"`
}

// GetReply - accumulated balance
type GetReply struct {
	Owner   string     `json:"owner"`
	Balance wei.Amount `json:"balance"`
}

// Get - balance of an address, zero if it never earned
func (e *Earnings) Get(arguments *GetArguments, reply *GetReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	owner, err := nft.ParseAddress(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Owner = owner.Hex()
	reply.Balance = e.Pool.Earnings(owner)
	return nil
}

// WithdrawArguments - arguments for Earnings.Withdraw
type WithdrawArguments struct {
	Credential string `json:"credential"`
}

// WithdrawReply - amount sent
type WithdrawReply struct {
	Amount wei.Amount `json:"amount"`
}

// Withdraw - pay out the caller's whole balance
func (e *Earnings) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	caller, err := e.Credentials.Caller(arguments.Credential)
	if nil != err {
		return err
	}

	e.Log.Infof("Earnings.Withdraw: caller: %s", caller.Hex())

	amount, err := e.Pool.Withdraw(caller)
	if nil != err {
		return err
	}
	reply.Amount = amount
	return nil
}

// PayoutsArguments - empty arguments for Earnings.Payouts
type PayoutsArguments struct{}

// PayoutsReply - unsettled payout orders, oldest first
type PayoutsReply struct {
	Orders []*payment.Order `json:"orders"`
}

// Payouts - orders the settlement signer has not confirmed
func (e *Earnings) Payouts(_ *PayoutsArguments, reply *PayoutsReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	reply.Orders = []*payment.Order{}
	if nil == e.Outbox {
		return nil
	}

	orders, err := e.Outbox.Pending()
	if nil != err {
		return err
	}
	reply.Orders = orders
	return nil
}
