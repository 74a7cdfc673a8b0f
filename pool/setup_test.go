// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/custody/registry"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/payment"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/storage"
)

// records the kinds of emitted events
type recorder struct {
	sync.Mutex
	kinds []string
}

func (r *recorder) Emit(kind string, block uint64, payload interface{}) {
	r.Lock()
	defer r.Unlock()
	r.kinds = append(r.kinds, kind)
}

func (r *recorder) Kinds() []string {
	r.Lock()
	defer r.Unlock()
	return append([]string{}, r.kinds...)
}

type testPool struct {
	log      *logger.L
	adapter  custody.Adapter
	db       *storage.Store
	registry *registry.Registry
	counter  *blockcount.Fixed
	events   *recorder
	pool     *pool.Pool
	done     func()
}

// pool over a registry with one collection, block 1000
func setupPool(t *testing.T, transfer payment.Transfer) *testPool {
	return setupPoolWithCustody(t, transfer, nil)
}

// adapter nil selects the registry
func setupPoolWithCustody(t *testing.T, transfer payment.Transfer, adapter custody.Adapter) *testPool {
	fixtures.SetupTestLogger()
	db, closer := fixtures.NewTestStore(t)

	log := logger.New(fixtures.LogCategory)
	r := registry.New(log, db, fixtures.Pool)
	err := r.RegisterCollection(fixtures.Contract, "Rentable", "RNT", "ipfs://rentable/")
	if nil != err {
		t.Fatalf("register collection error: %s", err)
	}

	if nil == adapter {
		adapter = r
	}

	tp := &testPool{
		log:      log,
		adapter:  adapter,
		db:       db,
		registry: r,
		counter:  blockcount.NewFixed(1000),
		events:   &recorder{},
		done: func() {
			closer()
			fixtures.TeardownTestLogger()
		},
	}
	tp.pool = pool.New(log, db, adapter, tp.counter, transfer, tp.events)
	return tp
}

// replace the pool with one paying through transfer
func (tp *testPool) useTransfer(transfer payment.Transfer) {
	tp.pool = pool.New(tp.log, tp.db, tp.adapter, tp.counter, transfer, tp.events)
}

// mint a token to the owner and approve the pool
func (tp *testPool) mint(t *testing.T) nft.Identity {
	id, err := tp.registry.Mint(fixtures.Contract, fixtures.Owner)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	err = tp.registry.Approve(fixtures.Owner, id, fixtures.Pool)
	if nil != err {
		t.Fatalf("approve error: %s", err)
	}
	return id
}

// mint and list at one ether per block for up to 100 blocks
func (tp *testPool) list(t *testing.T) nft.Identity {
	id := tp.mint(t)
	_, err := tp.pool.AddListing(fixtures.Owner, id, longTerms())
	if nil != err {
		t.Fatalf("add listing error: %s", err)
	}
	return id
}

func longTerms() listing.Terms {
	return listing.Terms{
		PricePerBlock: fixtures.Ether("1.0"),
		MaxBlocks:     100,
	}
}
