// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Ledger - handles on the pools holding pool state
type Ledger struct {
	listings   *storage.PoolHandle
	ownerIndex *storage.PoolHandle
	balances   *storage.PoolHandle
	totals     *storage.PoolHandle
}

// New - ledger over an open store
func New(db *storage.Store) *Ledger {
	return &Ledger{
		listings:   db.Listings,
		ownerIndex: db.OwnerIndex,
		balances:   db.Balances,
		totals:     db.Totals,
	}
}

// Get - fetch a listing, absence is not an error
func (l *Ledger) Get(r storage.Reader, id nft.Identity) (*listing.Record, bool) {
	key := id.Key()
	packed := r.Get(l.listings, key)
	if nil == packed {
		return nil, false
	}
	record, err := listing.Unpack(key, packed)
	if nil != err {
		logger.Criticalf("ledger: listing: %s  unpack error: %s", id, err)
		logger.Panicf("ledger: corrupt listing: %s  error: %s", id, err)
	}
	return record, true
}

// Has - check if an asset is listed
func (l *Ledger) Has(r storage.Reader, id nft.Identity) bool {
	return r.Has(l.listings, id.Key())
}

// Put - store a listing and index it under its owner
func (l *Ledger) Put(trx storage.Transaction, record *listing.Record) {
	key := record.Key()
	trx.Put(l.listings, key, record.Pack())
	trx.Put(l.ownerIndex, ownerKey(record.Owner, key), []byte{})
}

// Remove - delete a listing and its owner index entry
func (l *Ledger) Remove(trx storage.Transaction, id nft.Identity) {
	record, found := l.Get(trx, id)
	if !found {
		return
	}
	key := id.Key()
	trx.Delete(l.ownerIndex, ownerKey(record.Owner, key))
	trx.Delete(l.listings, key)
}

// Balance - withdrawable amount of an address
func (l *Ledger) Balance(r storage.Reader, address common.Address) wei.Amount {
	packed := r.Get(l.balances, address.Bytes())
	if nil == packed {
		return wei.Zero()
	}
	amount, _, err := wei.Unpack(packed)
	if nil != err {
		logger.Panicf("ledger: corrupt balance: %s  error: %s", address.Hex(), err)
	}
	return amount
}

// CreditOwner - add to a balance, creating it on first credit
func (l *Ledger) CreditOwner(trx storage.Transaction, address common.Address, amount wei.Amount) error {
	if amount.IsZero() {
		return nil
	}
	balance, err := l.Balance(trx, address).Add(amount)
	if nil != err {
		return err
	}
	trx.Put(l.balances, address.Bytes(), balance.Pack())
	return nil
}

// DebitOwner - return and zero a balance
func (l *Ledger) DebitOwner(trx storage.Transaction, address common.Address) (wei.Amount, error) {
	balance := l.Balance(trx, address)
	if balance.IsZero() {
		return wei.Zero(), fault.InsufficientBalance
	}
	trx.Delete(l.balances, address.Bytes())
	return balance, nil
}

// owner ++ contract ++ token
func ownerKey(owner common.Address, key []byte) []byte {
	k := make([]byte, 0, common.AddressLength+len(key))
	k = append(k, owner.Bytes()...)
	return append(k, key...)
}
