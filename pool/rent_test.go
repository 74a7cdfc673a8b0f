// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool_test

import (
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/wei"
)

// list at one ether per block for 100 blocks, rent ten blocks for
// ten ether at block 1000
func TestScenarioA(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.list(t)

	receipt, err := tp.pool.RentLong(fixtures.Renter, id, 10, fixtures.Ether("10.0"))
	assert.Nil(t, err, "rent")
	assert.Equal(t, uint64(1010), receipt.RentedUntil, "receipt until")
	assert.Equal(t, fixtures.Ether("10"), receipt.Cost, "receipt cost")
	assert.True(t, receipt.Refund.IsZero(), "refund")
	assert.Equal(t, uint64(10), receipt.Duration, "duration")
	assert.Equal(t, uint64(1000), receipt.Block, "block")
	assert.Equal(t, id.ListingId(), receipt.ListingId, "listing id")

	record, _ := tp.pool.Get(id)
	assert.Equal(t, uint64(1010), record.RentedUntil, "rented until")
	assert.Equal(t, fixtures.Renter, record.Operator, "operator")
	assert.Equal(t, uint64(1), record.Rentals, "rentals")

	assert.Equal(t, fixtures.Ether("10"), tp.pool.Earnings(fixtures.Owner), "owner balance")

	assert.Equal(t, fixtures.Renter, tp.registry.UserOf(id, 1005), "usage not delegated")
	assert.Equal(t, common.Address{}, tp.registry.UserOf(id, 1010), "usage after expiry")

	assert.Equal(t, []string{event.Listed, event.Rented}, tp.events.Kinds(), "events")
}

// occupied until block 1010
func TestScenarioB(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.list(t)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 10, fixtures.Ether("10"))
	assert.Nil(t, err, "rent")

	tp.counter.Set(1005)
	_, err = tp.pool.RentLong(fixtures.Stranger, id, 1, fixtures.Ether("100"))
	assert.Equal(t, fault.AssetOccupied, err, "rented twice")

	// regardless of caller or payment
	_, err = tp.pool.RentLong(fixtures.Renter, id, 200, wei.Zero())
	assert.Equal(t, fault.AssetOccupied, err, "occupancy checked before duration")
	_, err = tp.pool.RentFlash(fixtures.Owner, id, fixtures.Ether("100"))
	assert.Equal(t, fault.AssetOccupied, err, "flash on occupied")

	tp.counter.Set(1009)
	_, err = tp.pool.RentLong(fixtures.Stranger, id, 1, fixtures.Ether("1"))
	assert.Equal(t, fault.AssetOccupied, err, "last block of rental")

	tp.counter.Set(1010)
	_, err = tp.pool.RentLong(fixtures.Stranger, id, 1, fixtures.Ether("1"))
	assert.Nil(t, err, "available once elapsed")
}

func TestScenarioC(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.list(t)

	_, err := tp.pool.RentLong(fixtures.Renter, id, 200, fixtures.Ether("200"))
	assert.Equal(t, fault.InvalidDuration, err, "beyond max blocks")

	_, err = tp.pool.RentLong(fixtures.Renter, id, 0, fixtures.Ether("1"))
	assert.Equal(t, fault.InvalidDuration, err, "zero blocks")

	_, err = tp.pool.RentLong(fixtures.Renter, id, 100, fixtures.Ether("100"))
	assert.Nil(t, err, "exactly max blocks")
}

func TestScenarioD(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.list(t)

	_, err := tp.pool.RentLong(fixtures.Renter, id, 10, fixtures.Ether("9.0"))
	assert.Equal(t, fault.InsufficientPayment, err, "underpaid")

	record, _ := tp.pool.Get(id)
	assert.Equal(t, uint64(0), record.RentedUntil, "rented until changed")
	assert.Equal(t, common.Address{}, record.Operator, "operator changed")
	assert.True(t, tp.pool.Earnings(fixtures.Owner).IsZero(), "owner credited")
	assert.True(t, tp.pool.Earnings(fixtures.Renter).IsZero(), "renter credited")
	assert.Equal(t, common.Address{}, tp.registry.UserOf(id, 1000), "usage delegated")

	totals, outstanding, err := tp.pool.Totals()
	assert.Nil(t, err, "totals")
	assert.True(t, totals.Received.IsZero(), "payment recorded")
	assert.True(t, outstanding.IsZero(), "outstanding")

	assert.Equal(t, []string{event.Listed}, tp.events.Kinds(), "events")
}

func TestNotFound(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := nft.NewIdentity(fixtures.Contract, 77)
	_, err := tp.pool.RentLong(fixtures.Renter, id, 1, fixtures.Ether("1"))
	assert.Equal(t, fault.NotFound, err, "long")
	_, err = tp.pool.RentFlash(fixtures.Renter, id, fixtures.Ether("1"))
	assert.Equal(t, fault.NotFound, err, "flash")
	_, err = tp.pool.Quote(id, 1)
	assert.Equal(t, fault.NotFound, err, "quote")
}

func TestMonotonicRentedUntil(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.list(t)

	durations := []uint64{5, 1, 30, 2, 100}
	previous := uint64(0)
	for i, d := range durations {
		receipt, err := tp.pool.RentLong(fixtures.Renter, id, d, fixtures.Ether("100"))
		assert.Nil(t, err, "%d: rent", i)

		record, _ := tp.pool.Get(id)
		assert.True(t, record.RentedUntil > previous, "%d: rented until decreased", i)
		assert.Equal(t, receipt.RentedUntil, record.RentedUntil, "%d: receipt", i)
		previous = record.RentedUntil

		// attempts while occupied change nothing
		_, err = tp.pool.RentLong(fixtures.Stranger, id, 1, fixtures.Ether("1"))
		assert.Equal(t, fault.AssetOccupied, err, "%d: occupied", i)
		record, _ = tp.pool.Get(id)
		assert.Equal(t, previous, record.RentedUntil, "%d: rejected rental moved rented until", i)

		tp.counter.Set(record.RentedUntil + uint64(i))
	}
}

func TestOwnerCreditedExactCost(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.mint(t)
	terms := listing.Terms{
		PricePerBlock: fixtures.Ether("0.000000000000000007"),
		MaxBlocks:     1000,
	}
	_, err := tp.pool.AddListing(fixtures.Owner, id, terms)
	assert.Nil(t, err, "add")

	expected := wei.Zero()
	for _, blocks := range []uint64{1, 13, 999} {
		before := tp.pool.Earnings(fixtures.Owner)
		cost, err := tp.pool.Quote(id, blocks)
		assert.Nil(t, err, "quote")

		_, err = tp.pool.RentLong(fixtures.Renter, id, blocks, cost)
		assert.Nil(t, err, "rent %d", blocks)

		gained, err := tp.pool.Earnings(fixtures.Owner).Sub(before)
		assert.Nil(t, err, "balance decreased")
		assert.Equal(t, wei.FromUint64(7*blocks), gained, "credit for %d blocks", blocks)

		expected, _ = expected.Add(gained)
		tp.counter.Set(tp.counter.Height() + blocks)
	}
	assert.Equal(t, expected, tp.pool.Earnings(fixtures.Owner), "total")
	assert.Nil(t, tp.pool.CheckInvariant(), "invariant")
}

func TestOverpayment(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.list(t)

	receipt, err := tp.pool.RentLong(fixtures.Renter, id, 10, fixtures.Ether("12.5"))
	assert.Nil(t, err, "rent")
	assert.Equal(t, fixtures.Ether("2.5"), receipt.Refund, "refund")

	assert.Equal(t, fixtures.Ether("10"), tp.pool.Earnings(fixtures.Owner), "owner balance")
	assert.Equal(t, fixtures.Ether("2.5"), tp.pool.Earnings(fixtures.Renter), "renter refund")

	totals, outstanding, err := tp.pool.Totals()
	assert.Nil(t, err, "totals")
	assert.Equal(t, fixtures.Ether("12.5"), totals.Received, "received")
	assert.Equal(t, fixtures.Ether("12.5"), outstanding, "outstanding")
	assert.Nil(t, tp.pool.CheckInvariant(), "invariant")
}

func TestRentFlash(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	longOnly := tp.list(t)
	_, err := tp.pool.RentFlash(fixtures.Renter, longOnly, fixtures.Ether("1"))
	assert.Equal(t, fault.InvalidTerms, err, "flash on long only listing")

	id := tp.mint(t)
	_, err = tp.pool.AddListing(fixtures.Owner, id, listing.Terms{
		FlashFee:  fixtures.Ether("0.05"),
		MaxBlocks: 1,
	})
	assert.Nil(t, err, "add flash listing")

	_, err = tp.pool.RentFlash(fixtures.Renter, id, fixtures.Ether("0.04"))
	assert.Equal(t, fault.InsufficientPayment, err, "underpaid flash")

	receipt, err := tp.pool.RentFlash(fixtures.Renter, id, fixtures.Ether("0.05"))
	assert.Nil(t, err, "flash")
	assert.True(t, receipt.Flash, "flash flag")
	assert.Equal(t, uint64(1), receipt.Duration, "duration")
	assert.Equal(t, uint64(1001), receipt.RentedUntil, "until")
	assert.Equal(t, fixtures.Ether("0.05"), tp.pool.Earnings(fixtures.Owner), "owner balance")

	_, err = tp.pool.RentFlash(fixtures.Stranger, id, fixtures.Ether("0.05"))
	assert.Equal(t, fault.AssetOccupied, err, "flash twice in one block")

	tp.counter.Advance()
	_, err = tp.pool.RentFlash(fixtures.Stranger, id, fixtures.Ether("0.05"))
	assert.Nil(t, err, "flash next block")
}

func TestOverflow(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	huge, err := wei.FromWei("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	assert.Nil(t, err, "max amount")

	id := tp.mint(t)
	_, err = tp.pool.AddListing(fixtures.Owner, id, listing.Terms{
		PricePerBlock: huge,
		MaxBlocks:     10,
	})
	assert.Nil(t, err, "add")

	_, err = tp.pool.RentLong(fixtures.Renter, id, 2, huge)
	assert.Equal(t, fault.Overflow, err, "cost overflow")
	_, err = tp.pool.Quote(id, 2)
	assert.Equal(t, fault.Overflow, err, "quote overflow")

	other := tp.list(t)
	tp.counter.Set(math.MaxUint64 - 2)
	_, err = tp.pool.RentLong(fixtures.Renter, other, 5, fixtures.Ether("5"))
	assert.Equal(t, fault.Overflow, err, "block overflow")

	record, _ := tp.pool.Get(other)
	assert.Equal(t, uint64(0), record.RentedUntil, "state changed")
}
