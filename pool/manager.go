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
	"github.com/bitmark-inc/nftpoold/storage"
)

// AddListing - take custody of an asset and list it
//
// terms are validated before custody is requested so a rejected
// listing never moves the asset
func (p *Pool) AddListing(caller common.Address, id nft.Identity, terms listing.Terms) (nft.ListingId, error) {
	p.Lock()
	defer p.Unlock()

	p.log.Debugf("add: %s  caller: %s  terms: %+v", id, caller.Hex(), terms)

	block := p.counter.Height()

	trx, adapter, err := p.begin()
	if nil != err {
		return nft.ListingId{}, err
	}

	if p.ledger.Has(trx, id) {
		trx.Abort()
		return nft.ListingId{}, fault.DuplicateListing
	}

	err = terms.Validate()
	if nil != err {
		trx.Abort()
		return nft.ListingId{}, err
	}

	err = adapter.TransferIn(id, caller)
	if nil != err {
		trx.Abort()
		return nft.ListingId{}, fault.Wrap(fault.NotOwner, err)
	}

	record := &listing.Record{
		Identity: id,
		Terms:    terms,
		Owner:    caller,
		ListedAt: block,
	}
	p.ledger.Put(trx, record)

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("add: %s  commit error: %s", id, err)
		return nft.ListingId{}, err
	}

	p.log.Infof("listed: %s  owner: %s", id, caller.Hex())
	p.emitter.Emit(event.Listed, block, listingPayload(record))

	return record.ListingId(), nil
}

// EditListing - replace the terms of an available listing
func (p *Pool) EditListing(caller common.Address, id nft.Identity, terms listing.Terms) error {
	p.Lock()
	defer p.Unlock()

	p.log.Debugf("edit: %s  caller: %s  terms: %+v", id, caller.Hex(), terms)

	block := p.counter.Height()

	trx, _, err := p.begin()
	if nil != err {
		return err
	}

	record, err := p.owned(trx, caller, id, block)
	if nil != err {
		trx.Abort()
		return err
	}

	err = terms.Validate()
	if nil != err {
		trx.Abort()
		return err
	}

	record.Terms = terms
	p.ledger.Put(trx, record)

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("edit: %s  commit error: %s", id, err)
		return err
	}

	p.log.Infof("edited: %s", id)
	p.emitter.Emit(event.Edited, block, listingPayload(record))

	return nil
}

// RemoveListing - delist an available asset and return it to its owner
func (p *Pool) RemoveListing(caller common.Address, id nft.Identity) error {
	p.Lock()
	defer p.Unlock()

	p.log.Debugf("remove: %s  caller: %s", id, caller.Hex())

	block := p.counter.Height()

	trx, adapter, err := p.begin()
	if nil != err {
		return err
	}

	record, err := p.owned(trx, caller, id, block)
	if nil != err {
		trx.Abort()
		return err
	}

	err = adapter.TransferOut(id, caller)
	if nil != err {
		trx.Abort()
		return err
	}

	p.ledger.Remove(trx, id)

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("remove: %s  commit error: %s", id, err)
		return err
	}

	p.log.Infof("removed: %s  returned to: %s", id, caller.Hex())
	p.emitter.Emit(event.Removed, block, listingPayload(record))

	return nil
}

// the listing if it exists, belongs to caller and is available
func (p *Pool) owned(r storage.Reader, caller common.Address, id nft.Identity, block uint64) (*listing.Record, error) {
	record, found := p.ledger.Get(r, id)
	if !found {
		return nil, fault.NotFound
	}
	if record.Owner != caller {
		return nil, fault.NotOwner
	}
	if !record.Available(block) {
		return nil, fault.AssetOccupied
	}
	return record, nil
}
