// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/payment"
	"github.com/bitmark-inc/nftpoold/payment/mocks"
	"github.com/bitmark-inc/nftpoold/wei"
)

// balance zero
func TestScenarioE(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mocks.NewMockTransfer(ctrl)
	tp := setupPool(t, transfer)
	defer tp.done()

	amount, err := tp.pool.Withdraw(fixtures.Owner)
	assert.Equal(t, fault.InsufficientBalance, err, "empty withdraw")
	assert.True(t, amount.IsZero(), "amount")
}

func TestWithdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mocks.NewMockTransfer(ctrl)
	tp := setupPool(t, transfer)
	defer tp.done()

	id := tp.list(t)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 10, fixtures.Ether("10"))
	assert.Nil(t, err, "rent")

	transfer.EXPECT().Pay(fixtures.Owner, fixtures.Ether("10")).Return(nil).Times(1)

	amount, err := tp.pool.Withdraw(fixtures.Owner)
	assert.Nil(t, err, "withdraw")
	assert.Equal(t, fixtures.Ether("10"), amount, "amount")

	assert.True(t, tp.pool.Earnings(fixtures.Owner).IsZero(), "earnings after withdraw")

	_, err = tp.pool.Withdraw(fixtures.Owner)
	assert.Equal(t, fault.InsufficientBalance, err, "second withdraw")

	totals, outstanding, err := tp.pool.Totals()
	assert.Nil(t, err, "totals")
	assert.Equal(t, fixtures.Ether("10"), totals.Received, "received")
	assert.Equal(t, fixtures.Ether("10"), totals.Withdrawn, "withdrawn")
	assert.True(t, outstanding.IsZero(), "outstanding")
	assert.Nil(t, tp.pool.CheckInvariant(), "invariant")

	assert.Equal(t, []string{event.Listed, event.Rented, event.Withdrawn}, tp.events.Kinds(), "events")
}

// a nested call made by the transfer primitive sees a zero balance
func TestWithdrawReentry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mocks.NewMockTransfer(ctrl)
	tp := setupPool(t, transfer)
	defer tp.done()

	id := tp.list(t)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 10, fixtures.Ether("10"))
	assert.Nil(t, err, "rent")

	var nested error
	transfer.EXPECT().Pay(fixtures.Owner, fixtures.Ether("10")).DoAndReturn(
		func(to common.Address, amount wei.Amount) error {
			assert.True(t, tp.pool.Earnings(fixtures.Owner).IsZero(), "debit not committed before transfer")
			_, nested = tp.pool.Withdraw(fixtures.Owner)
			return nil
		},
	).Times(1)

	amount, err := tp.pool.Withdraw(fixtures.Owner)
	assert.Nil(t, err, "withdraw")
	assert.Equal(t, fixtures.Ether("10"), amount, "paid once")
	assert.Equal(t, fault.InsufficientBalance, nested, "nested withdraw")
}

// a credit arriving during the transfer is protected by the in-flight marker
func TestWithdrawInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mocks.NewMockTransfer(ctrl)
	tp := setupPool(t, transfer)
	defer tp.done()

	id := tp.list(t)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 10, fixtures.Ether("10"))
	assert.Nil(t, err, "rent")
	tp.counter.Set(1010)

	var nested error
	gomock.InOrder(
		transfer.EXPECT().Pay(fixtures.Owner, fixtures.Ether("10")).DoAndReturn(
			func(to common.Address, amount wei.Amount) error {
				_, err := tp.pool.RentLong(fixtures.Renter, id, 3, fixtures.Ether("3"))
				assert.Nil(t, err, "rent during transfer")
				_, nested = tp.pool.Withdraw(fixtures.Owner)
				return nil
			},
		),
		transfer.EXPECT().Pay(fixtures.Owner, fixtures.Ether("3")).Return(nil),
	)

	_, err = tp.pool.Withdraw(fixtures.Owner)
	assert.Nil(t, err, "withdraw")
	assert.Equal(t, fault.WithdrawalInProgress, nested, "nested withdraw")
	assert.Equal(t, fixtures.Ether("3"), tp.pool.Earnings(fixtures.Owner), "credit kept")

	// marker cleared once the transfer completed
	amount, err := tp.pool.Withdraw(fixtures.Owner)
	assert.Nil(t, err, "later withdraw")
	assert.Equal(t, fixtures.Ether("3"), amount, "later amount")
}

func TestWithdrawTransferFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mocks.NewMockTransfer(ctrl)
	tp := setupPool(t, transfer)
	defer tp.done()

	id := tp.list(t)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 4, fixtures.Ether("4"))
	assert.Nil(t, err, "rent")

	failure := errors.New("signer offline")
	transfer.EXPECT().Pay(fixtures.Owner, fixtures.Ether("4")).Return(failure).Times(1)

	_, err = tp.pool.Withdraw(fixtures.Owner)
	assert.True(t, errors.Is(err, fault.PaymentFailed), "wrong error: %v", err)
	assert.True(t, errors.Is(err, failure), "cause lost: %v", err)

	assert.Equal(t, fixtures.Ether("4"), tp.pool.Earnings(fixtures.Owner), "balance not restored")
	totals, _, err := tp.pool.Totals()
	assert.Nil(t, err, "totals")
	assert.True(t, totals.Withdrawn.IsZero(), "withdrawn not restored")
	assert.Nil(t, tp.pool.CheckInvariant(), "invariant")

	assert.Equal(t, []string{event.Listed, event.Rented}, tp.events.Kinds(), "events")
}

// a transfer that panics leaves neither the debit nor the marker behind
func TestWithdrawTransferPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mocks.NewMockTransfer(ctrl)
	tp := setupPool(t, transfer)
	defer tp.done()

	id := tp.list(t)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 4, fixtures.Ether("4"))
	assert.Nil(t, err, "rent")

	gomock.InOrder(
		transfer.EXPECT().Pay(fixtures.Owner, fixtures.Ether("4")).DoAndReturn(
			func(to common.Address, amount wei.Amount) error {
				panic("signer crashed")
			}),
		transfer.EXPECT().Pay(fixtures.Owner, fixtures.Ether("4")).Return(nil),
	)

	assert.Panics(t, func() { tp.pool.Withdraw(fixtures.Owner) }, "panic swallowed")

	assert.Equal(t, fixtures.Ether("4"), tp.pool.Earnings(fixtures.Owner), "balance not restored")
	assert.Nil(t, tp.pool.CheckInvariant(), "invariant")

	amount, err := tp.pool.Withdraw(fixtures.Owner)
	assert.Nil(t, err, "withdraw after panic")
	assert.Equal(t, fixtures.Ether("4"), amount, "amount")
}

func TestWithdrawToOutbox(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	outbox := payment.NewOutbox(tp.log, tp.db, tp.counter, tp.events)
	tp.useTransfer(outbox)

	id := tp.list(t)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 2, fixtures.Ether("2"))
	assert.Nil(t, err, "rent")

	_, err = tp.pool.Withdraw(fixtures.Owner)
	assert.Nil(t, err, "withdraw")

	pending, err := outbox.Pending()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 1, len(pending), "orders")
	assert.Equal(t, fixtures.Owner, pending[0].Address, "order address")
	assert.Equal(t, fixtures.Ether("2"), pending[0].Amount, "order amount")

	assert.Equal(t, []string{event.Listed, event.Rented, event.Payout, event.Withdrawn}, tp.events.Kinds(), "events")
}
