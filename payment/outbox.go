// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Outbox - persisted payout orders awaiting settlement
type Outbox struct {
	log     *logger.L
	db      *storage.Store
	payouts *storage.PoolHandle
	counter blockcount.Counter
	emitter event.Emitter
}

// NewOutbox - outbox over the payouts pool of db
func NewOutbox(log *logger.L, db *storage.Store, counter blockcount.Counter, emitter event.Emitter) *Outbox {
	return &Outbox{
		log:     log,
		db:      db,
		payouts: db.Payouts,
		counter: counter,
		emitter: emitter,
	}
}

// Pay - record a payout order and publish it
func (o *Outbox) Pay(to common.Address, amount wei.Amount) error {
	if amount.IsZero() {
		return fault.InvalidAmount
	}

	order := &Order{
		Id:      uuid.New(),
		Address: to,
		Amount:  amount,
		Block:   o.counter.Height(),
	}

	trx, err := o.db.Begin()
	if nil != err {
		return err
	}
	trx.Put(o.payouts, order.Id[:], order.pack())
	err = trx.Commit()
	if nil != err {
		return err
	}

	o.log.Infof("payout: %s  to: %s  amount: %s", order.Id, to.Hex(), amount)

	o.emitter.Emit(event.Payout, order.Block, event.PayoutOrder{
		Id:      order.Id,
		Address: order.Address,
		Amount:  order.Amount,
	})
	return nil
}

// Get - a single pending order
func (o *Outbox) Get(id uuid.UUID) (*Order, error) {
	packed := o.payouts.Get(id[:])
	if nil == packed {
		return nil, fault.UnknownPayout
	}
	return unpackOrder(id[:], packed)
}

// Pending - all unsettled orders, oldest first
func (o *Outbox) Pending() ([]*Order, error) {
	orders := make([]*Order, 0)
	err := o.payouts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		order, err := unpackOrder(key, value)
		if nil != err {
			return err
		}
		orders = append(orders, order)
		return nil
	})
	if nil != err {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Block < orders[j].Block
	})
	return orders, nil
}

// Settle - remove an order once the signer has executed it
func (o *Outbox) Settle(id uuid.UUID) error {
	trx, err := o.db.Begin()
	if nil != err {
		return err
	}
	if !trx.Has(o.payouts, id[:]) {
		trx.Abort()
		return fault.UnknownPayout
	}
	trx.Delete(o.payouts, id[:])
	err = trx.Commit()
	if nil != err {
		return err
	}
	o.log.Infof("settled: %s", id)
	return nil
}
