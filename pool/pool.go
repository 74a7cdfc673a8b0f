// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/ledger"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/payment"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Pool - the rental pool
type Pool struct {
	sync.Mutex

	log      *logger.L
	db       *storage.Store
	ledger   *ledger.Ledger
	custody  custody.Adapter
	counter  blockcount.Counter
	transfer payment.Transfer
	emitter  event.Emitter

	// addresses with a withdrawal waiting on the transfer primitive
	inFlight map[common.Address]struct{}
}

// New - create a pool over an open store
func New(
	log *logger.L,
	db *storage.Store,
	adapter custody.Adapter,
	counter blockcount.Counter,
	transfer payment.Transfer,
	emitter event.Emitter,
) *Pool {
	if nil == emitter {
		emitter = event.Discard{}
	}
	return &Pool{
		log:      log,
		db:       db,
		ledger:   ledger.New(db),
		custody:  adapter,
		counter:  counter,
		transfer: transfer,
		emitter:  emitter,
		inFlight: make(map[common.Address]struct{}),
	}
}

// Height - current block
func (p *Pool) Height() uint64 {
	return p.counter.Height()
}

// Get - committed listing
func (p *Pool) Get(id nft.Identity) (*listing.Record, bool) {
	return p.ledger.Get(storage.Committed, id)
}

// All - snapshot of every listing
func (p *Pool) All() ([]*listing.Record, error) {
	return p.ledger.All()
}

// Page - count listings starting at start, nil start for the first page
func (p *Pool) Page(start *nft.Identity, count int) ([]*listing.Record, *nft.Identity, error) {
	return p.ledger.Page(start, count)
}

// Owned - listings registered by owner
func (p *Pool) Owned(owner common.Address) ([]*listing.Record, error) {
	return p.ledger.Owned(owner)
}

// Count - number of listings
func (p *Pool) Count() (int, error) {
	return p.ledger.Count()
}

// Totals - all ether received and paid out, and the sum of balances
func (p *Pool) Totals() (ledger.Totals, wei.Amount, error) {
	totals := p.ledger.Totals(storage.Committed)
	outstanding, err := p.ledger.Outstanding()
	return totals, outstanding, err
}

// CheckInvariant - sum of balances must not exceed ether held
func (p *Pool) CheckInvariant() error {
	p.Lock()
	defer p.Unlock()

	totals, outstanding, err := p.Totals()
	if nil != err {
		return err
	}
	held, err := totals.Held()
	if nil != err {
		return fault.LedgerImbalance
	}
	if outstanding.Cmp(held) > 0 {
		p.log.Criticalf("outstanding: %s  exceeds held: %s", outstanding, held)
		return fault.LedgerImbalance
	}
	return nil
}

// begin a transaction with custody bound to it
func (p *Pool) begin() (storage.Transaction, custody.Adapter, error) {
	trx, err := p.db.Begin()
	if nil != err {
		p.log.Errorf("begin transaction error: %s", err)
		return nil, nil, err
	}
	return trx, custody.Bind(p.custody, trx), nil
}

func listingPayload(r *listing.Record) event.Listing {
	return event.Listing{
		ListingId:     r.ListingId(),
		Contract:      r.Contract,
		TokenId:       r.TokenId.Dec(),
		Owner:         r.Owner,
		FlashFee:      r.FlashFee,
		PricePerBlock: r.PricePerBlock,
		MaxBlocks:     r.MaxBlocks,
	}
}
