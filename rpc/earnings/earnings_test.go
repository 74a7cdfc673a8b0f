// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package earnings_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/payment"
	poolmocks "github.com/bitmark-inc/nftpoold/pool/mocks"
	"github.com/bitmark-inc/nftpoold/rpc/earnings"
	"github.com/bitmark-inc/nftpoold/rpc/mocks"
	"github.com/bitmark-inc/nftpoold/wei"
)

var issuer = credential.New("earnings secret")

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := poolmocks.NewMockOperations(ctl)
	p.EXPECT().Earnings(fixtures.Owner).Return(fixtures.Ether("3")).Times(1)

	e := earnings.New(logger.New(fixtures.LogCategory), p, nil, issuer)

	var reply earnings.GetReply
	err := e.Get(&earnings.GetArguments{Owner: fixtures.Owner.Hex()}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, fixtures.Owner.Hex(), reply.Owner, "wrong owner")
	assert.Equal(t, fixtures.Ether("3"), reply.Balance, "wrong balance")

	err = e.Get(&earnings.GetArguments{Owner: "0x12"}, &reply)
	assert.True(t, errors.Is(err, fault.InvalidAddress), "short address: %v", err)
	assert.Equal(t, "InvalidArgument: invalid address", err.Error(), "wrong text")
}

func TestWithdraw(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := poolmocks.NewMockOperations(ctl)
	gomock.InOrder(
		p.EXPECT().Withdraw(fixtures.Owner).Return(fixtures.Ether("5"), nil).Times(1),
		p.EXPECT().Withdraw(fixtures.Owner).Return(wei.Zero(), fault.InsufficientBalance).Times(1),
	)

	e := earnings.New(logger.New(fixtures.LogCategory), p, nil, issuer)

	token, err := issuer.Issue(fixtures.Owner, time.Minute)
	assert.Nil(t, err, "issue credential")

	var reply earnings.WithdrawReply
	err = e.Withdraw(&earnings.WithdrawArguments{Credential: token}, &reply)
	assert.Nil(t, err, "wrong Withdraw")
	assert.Equal(t, fixtures.Ether("5"), reply.Amount, "wrong amount")

	err = e.Withdraw(&earnings.WithdrawArguments{Credential: token}, &reply)
	assert.True(t, errors.Is(err, fault.InsufficientBalance), "second withdraw: %v", err)
	assert.Equal(t, "InsufficientBalance: balance is zero", err.Error(), "wrong text")
}

func TestWithdrawNeedsCredential(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := poolmocks.NewMockOperations(ctl)
	e := earnings.New(logger.New(fixtures.LogCategory), p, nil, issuer)

	var reply earnings.WithdrawReply
	err := e.Withdraw(&earnings.WithdrawArguments{Credential: fixtures.Owner.Hex()}, &reply)
	assert.True(t, errors.Is(err, fault.Unauthorised), "address accepted as credential: %v", err)
	assert.Equal(t, fault.KindUnauthorised, fault.Kind(err), "wrong kind")
}

func TestPayouts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := poolmocks.NewMockOperations(ctl)
	o := mocks.NewMockPayouts(ctl)

	orders := []*payment.Order{
		{
			Id:      uuid.New(),
			Address: fixtures.Owner,
			Amount:  fixtures.Ether("1"),
			Block:   1000,
		},
	}
	o.EXPECT().Pending().Return(orders, nil).Times(1)

	e := earnings.New(logger.New(fixtures.LogCategory), p, o, issuer)

	var reply earnings.PayoutsReply
	err := e.Payouts(&earnings.PayoutsArguments{}, &reply)
	assert.Nil(t, err, "wrong Payouts")
	assert.Equal(t, orders, reply.Orders, "wrong orders")

	e = earnings.New(logger.New(fixtures.LogCategory), p, nil, issuer)
	err = e.Payouts(&earnings.PayoutsArguments{}, &reply)
	assert.Nil(t, err, "Payouts without outbox")
	assert.Empty(t, reply.Orders, "orders without outbox")
}
