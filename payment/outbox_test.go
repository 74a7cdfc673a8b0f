// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/messagebus"
	"github.com/bitmark-inc/nftpoold/payment"
	"github.com/bitmark-inc/nftpoold/wei"
)

func TestOutbox(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, done := fixtures.NewTestStore(t)
	defer done()

	queue := messagebus.NewBroadcastQueue()
	defer queue.Close()
	events := queue.Chan(10)

	log := logger.New(fixtures.LogCategory)
	counter := blockcount.NewFixed(5)
	outbox := payment.NewOutbox(log, db, counter, event.NewBus(log, queue))

	var transfer payment.Transfer = outbox

	err := transfer.Pay(fixtures.Owner, wei.Zero())
	assert.Equal(t, fault.InvalidAmount, err, "zero payout accepted")

	err = transfer.Pay(fixtures.Owner, fixtures.Ether("1.5"))
	assert.Nil(t, err, "first payout")

	counter.Advance()
	err = transfer.Pay(fixtures.Renter, fixtures.Ether("0.25"))
	assert.Nil(t, err, "second payout")

	m := <-events
	assert.Equal(t, event.Payout, m.Command, "first event")
	e, err := event.Decode(m)
	assert.Nil(t, err, "decode")
	assert.Equal(t, uint64(5), e.Block, "event block")
	<-events

	pending, err := outbox.Pending()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 2, len(pending), "pending count")
	assert.Equal(t, fixtures.Owner, pending[0].Address, "oldest first")
	assert.Equal(t, fixtures.Ether("1.5"), pending[0].Amount, "amount")
	assert.Equal(t, uint64(6), pending[1].Block, "block")

	order, err := outbox.Get(pending[1].Id)
	assert.Nil(t, err, "get")
	assert.Equal(t, pending[1], order, "get order")

	err = outbox.Settle(pending[0].Id)
	assert.Nil(t, err, "settle")
	err = outbox.Settle(pending[0].Id)
	assert.Equal(t, fault.UnknownPayout, err, "settled twice")

	_, err = outbox.Get(uuid.New())
	assert.Equal(t, fault.UnknownPayout, err, "unknown order")

	pending, err = outbox.Pending()
	assert.Nil(t, err, "pending after settle")
	assert.Equal(t, 1, len(pending), "pending count after settle")
	assert.Equal(t, fixtures.Renter, pending[0].Address, "remaining order")
}
