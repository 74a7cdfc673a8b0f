// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockcount

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/storage"
)

// key of the local chain height in the heights pool
var tickerKey = []byte("ticker")

// Ticker - local chain, one block per interval
//
// with a store the height is saved on every block and a restart
// continues from the saved height
type Ticker struct {
	Fixed
	log      *logger.L
	store    *storage.Store
	interval time.Duration
}

// NewTicker - ticker starting at the larger of start and any saved
// height, store may be nil
func NewTicker(log *logger.L, store *storage.Store, start uint64, interval time.Duration) *Ticker {
	t := &Ticker{
		log:      log,
		store:    store,
		interval: interval,
	}
	t.height.Raise(start)
	if nil != store {
		if saved, ok := store.Heights.GetN(tickerKey); ok {
			t.height.Raise(saved)
		}
	}
	return t
}

// Run - background process advancing the height
func (t *Ticker) Run(args interface{}, shutdown <-chan struct{}) {
	log := t.log
	log.Infof("starting at: %d  interval: %s", t.Height(), t.interval)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			h := t.Advance()
			t.save(h)
			log.Debugf("block: %d", h)
		}
	}
	log.Infof("stopped at: %d", t.Height())
}

func (t *Ticker) save(height uint64) {
	if nil == t.store {
		return
	}
	trx, err := t.store.Begin()
	if nil != err {
		t.log.Errorf("save height: %d  error: %s", height, err)
		return
	}
	trx.PutN(t.store.Heights, tickerKey, height)
	err = trx.Commit()
	if nil != err {
		t.log.Errorf("save height: %d  commit error: %s", height, err)
	}
}
