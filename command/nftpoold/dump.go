// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/ledger"
	"github.com/bitmark-inc/nftpoold/payment"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/wei"
)

type dumpTotals struct {
	Received    wei.Amount `json:"received"`
	Withdrawn   wei.Amount `json:"withdrawn"`
	Outstanding wei.Amount `json:"outstanding"`
}

type dump struct {
	Block    uint64         `json:"block"`
	Totals   dumpTotals     `json:"totals"`
	Listings []pool.Summary `json:"listings"`
}

// every listing as it would be seen at block
func dumpListings(w io.Writer, db *storage.Store, block uint64) error {
	l := ledger.New(db)

	records, err := l.All()
	if nil != err {
		return err
	}
	totals := l.Totals(storage.Committed)
	outstanding, err := l.Outstanding()
	if nil != err {
		return err
	}

	d := dump{
		Block: block,
		Totals: dumpTotals{
			Received:    totals.Received,
			Withdrawn:   totals.Withdrawn,
			Outstanding: outstanding,
		},
		Listings: pool.SummariseAll(records, block, nil),
	}

	s, err := json.MarshalIndent(d, "", "  ")
	if nil != err {
		return err
	}
	_, err = w.Write(append(s, '\n'))
	return err
}

func pendingPayouts(log *logger.L, db *storage.Store, blocks blockcount.Counter) ([]*payment.Order, error) {
	return payment.NewOutbox(log, db, blocks, event.Discard{}).Pending()
}

func settlePayout(log *logger.L, db *storage.Store, blocks blockcount.Counter, id uuid.UUID) error {
	return payment.NewOutbox(log, db, blocks, event.Discard{}).Settle(id)
}
