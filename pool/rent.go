// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/wei"
)

// RentReceipt - result of a successful rental
//
// any payment above the cost is credited to the renter's own
// balance and reported as Refund
type RentReceipt struct {
	ListingId   nft.ListingId  `json:"listingId"`
	Renter      common.Address `json:"renter"`
	Flash       bool           `json:"flash"`
	Duration    uint64         `json:"duration"`
	Cost        wei.Amount     `json:"cost"`
	Refund      wei.Amount     `json:"refund"`
	RentedUntil uint64         `json:"rentedUntil"`
	Block       uint64         `json:"block"`
}

// RentLong - rent for a number of blocks at the per block price
func (p *Pool) RentLong(caller common.Address, id nft.Identity, blocks uint64, paymentSent wei.Amount) (*RentReceipt, error) {
	return p.rent(caller, id, blocks, false, paymentSent)
}

// RentFlash - rent for a single block at the flash fee
func (p *Pool) RentFlash(caller common.Address, id nft.Identity, paymentSent wei.Amount) (*RentReceipt, error) {
	return p.rent(caller, id, 1, true, paymentSent)
}

// Quote - the exact payment a long rental of blocks needs
func (p *Pool) Quote(id nft.Identity, blocks uint64) (wei.Amount, error) {
	record, found := p.Get(id)
	if !found {
		return wei.Zero(), fault.NotFound
	}
	return longCost(record, blocks)
}

func longCost(record *listing.Record, blocks uint64) (wei.Amount, error) {
	if 0 == blocks || blocks > record.MaxBlocks {
		return wei.Zero(), fault.InvalidDuration
	}
	return record.PricePerBlock.MulUint64(blocks)
}

func (p *Pool) rent(caller common.Address, id nft.Identity, blocks uint64, flash bool, paymentSent wei.Amount) (*RentReceipt, error) {
	p.Lock()
	defer p.Unlock()

	p.log.Debugf("rent: %s  caller: %s  blocks: %d  flash: %t  payment: %s", id, caller.Hex(), blocks, flash, paymentSent)

	block := p.counter.Height()

	trx, adapter, err := p.begin()
	if nil != err {
		return nil, err
	}

	// always the latest state, pending writes of this transaction included
	record, found := p.ledger.Get(trx, id)
	if !found {
		trx.Abort()
		return nil, fault.NotFound
	}
	if !record.Available(block) {
		trx.Abort()
		return nil, fault.AssetOccupied
	}

	var cost wei.Amount
	if flash {
		if record.FlashFee.IsZero() {
			trx.Abort()
			return nil, fault.InvalidTerms
		}
		cost = record.FlashFee
	} else {
		cost, err = longCost(record, blocks)
		if nil != err {
			trx.Abort()
			return nil, err
		}
	}

	until := block + blocks
	if until < block {
		trx.Abort()
		return nil, fault.Overflow
	}

	if paymentSent.Cmp(cost) < 0 {
		trx.Abort()
		return nil, fault.InsufficientPayment
	}
	refund, err := paymentSent.Sub(cost)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = p.ledger.CreditOwner(trx, record.Owner, cost)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	err = p.ledger.CreditOwner(trx, caller, refund)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	totals := p.ledger.Totals(trx)
	totals.Received, err = totals.Received.Add(paymentSent)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	p.ledger.PutTotals(trx, totals)

	record.RentedUntil = until
	record.Operator = caller
	record.Rentals += 1
	p.ledger.Put(trx, record)

	err = adapter.DelegateUsage(id, caller, until)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("rent: %s  commit error: %s", id, err)
		return nil, err
	}

	receipt := &RentReceipt{
		ListingId:   record.ListingId(),
		Renter:      caller,
		Flash:       flash,
		Duration:    blocks,
		Cost:        cost,
		Refund:      refund,
		RentedUntil: until,
		Block:       block,
	}

	p.log.Infof("rented: %s  renter: %s  until: %d  cost: %s  refund: %s", id, caller.Hex(), until, cost, refund)
	p.emitter.Emit(event.Rented, block, event.Rental{
		ListingId:   receipt.ListingId,
		Contract:    id.Contract,
		TokenId:     id.TokenId.Dec(),
		Renter:      caller,
		Flash:       flash,
		Duration:    blocks,
		Cost:        cost,
		Refund:      refund,
		RentedUntil: until,
	})

	return receipt, nil
}
