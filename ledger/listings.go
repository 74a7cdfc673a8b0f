// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/storage"
)

// All - snapshot of every committed listing in key order
func (l *Ledger) All() ([]*listing.Record, error) {
	records := make([]*listing.Record, 0)
	err := l.listings.NewFetchCursor().Map(func(key []byte, value []byte) error {
		record, err := listing.Unpack(key, value)
		if nil != err {
			return err
		}
		records = append(records, record)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return records, nil
}

// Page - up to count listings beginning at start
//
// start is nil for the first page, the returned key is the start of
// the next page and is nil after the last page
func (l *Ledger) Page(start *nft.Identity, count int) ([]*listing.Record, *nft.Identity, error) {
	if count <= 0 {
		return nil, nil, fault.InvalidCount
	}

	cursor := l.listings.NewFetchCursor()
	if nil != start {
		cursor.Seek(start.Key())
	}

	// one extra to find the following key
	elements, err := cursor.Fetch(count + 1)
	if nil != err {
		return nil, nil, err
	}

	records := make([]*listing.Record, 0, count)
	var next *nft.Identity
	for i, e := range elements {
		record, err := listing.Unpack(e.Key, e.Value)
		if nil != err {
			return nil, nil, err
		}
		if i == count {
			next = &record.Identity
			break
		}
		records = append(records, record)
	}
	return records, next, nil
}

// Owned - committed listings registered by owner
func (l *Ledger) Owned(owner common.Address) ([]*listing.Record, error) {
	records := make([]*listing.Record, 0)
	err := l.ownerIndex.NewFetchCursor().Prefix(owner.Bytes()).Map(func(key []byte, value []byte) error {
		id, err := nft.IdentityFromKey(key[common.AddressLength:])
		if nil != err {
			return err
		}
		record, found := l.Get(storage.Committed, id)
		if found {
			records = append(records, record)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return records, nil
}

// Count - number of committed listings
func (l *Ledger) Count() (int, error) {
	n := 0
	err := l.listings.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	return n, err
}
