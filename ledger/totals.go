// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/wei"
)

var totalsKey = []byte("totals")

// Totals - all ether ever received by the pool and all ether paid out
type Totals struct {
	Received  wei.Amount `json:"received"`
	Withdrawn wei.Amount `json:"withdrawn"`
}

// Held - ether the pool should still hold
func (t Totals) Held() (wei.Amount, error) {
	return t.Received.Sub(t.Withdrawn)
}

// Totals - read the totals record
func (l *Ledger) Totals(r storage.Reader) Totals {
	packed := r.Get(l.totals, totalsKey)
	if nil == packed {
		return Totals{}
	}
	received, n, err := wei.Unpack(packed)
	if nil != err {
		logger.Panicf("ledger: corrupt totals: %x", packed)
	}
	withdrawn, _, err := wei.Unpack(packed[n:])
	if nil != err {
		logger.Panicf("ledger: corrupt totals: %x", packed)
	}
	return Totals{
		Received:  received,
		Withdrawn: withdrawn,
	}
}

// PutTotals - write the totals record
func (l *Ledger) PutTotals(trx storage.Transaction, totals Totals) {
	packed := make([]byte, 0, 2*wei.PackedSize)
	packed = append(packed, totals.Received.Pack()...)
	packed = append(packed, totals.Withdrawn.Pack()...)
	trx.Put(l.totals, totalsKey, packed)
}

// Outstanding - sum of every committed balance
func (l *Ledger) Outstanding() (wei.Amount, error) {
	sum := wei.Zero()
	err := l.balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		amount, _, err := wei.Unpack(value)
		if nil != err {
			return err
		}
		sum, err = sum.Add(amount)
		return err
	})
	return sum, err
}
