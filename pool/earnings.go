// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Earnings - withdrawable balance of owner
func (p *Pool) Earnings(owner common.Address) wei.Amount {
	return p.ledger.Balance(storage.Committed, owner)
}

// Withdraw - zero the caller's balance then pay it out
//
// the debit is committed and the lock released before the transfer
// is requested; a call made while the transfer is outstanding sees
// the zero balance, or if the balance was credited in the meantime,
// the in-flight marker
func (p *Pool) Withdraw(caller common.Address) (wei.Amount, error) {
	amount, block, err := p.debit(caller)
	if nil != err {
		return wei.Zero(), err
	}

	// a transfer that fails or panics returns the debit to the caller
	paid := false
	defer func() {
		if !paid {
			p.restore(caller, amount)
		}
	}()

	err = p.transfer.Pay(caller, amount)
	if nil != err {
		p.log.Errorf("withdraw: %s  amount: %s  transfer error: %s", caller.Hex(), amount, err)
		return wei.Zero(), fault.Wrap(fault.PaymentFailed, err)
	}
	paid = true

	p.Lock()
	delete(p.inFlight, caller)
	p.Unlock()

	p.log.Infof("withdrawn: %s  amount: %s", caller.Hex(), amount)
	p.emitter.Emit(event.Withdrawn, block, event.Withdrawal{
		Owner:  caller,
		Amount: amount,
	})

	return amount, nil
}

// zero the balance, count it as withdrawn and mark the caller in flight
func (p *Pool) debit(caller common.Address) (wei.Amount, uint64, error) {
	p.Lock()
	defer p.Unlock()

	block := p.counter.Height()

	trx, _, err := p.begin()
	if nil != err {
		return wei.Zero(), block, err
	}

	amount, err := p.ledger.DebitOwner(trx, caller)
	if nil != err {
		trx.Abort()
		return wei.Zero(), block, err
	}

	if _, ok := p.inFlight[caller]; ok {
		trx.Abort()
		return wei.Zero(), block, fault.WithdrawalInProgress
	}

	totals := p.ledger.Totals(trx)
	totals.Withdrawn, err = totals.Withdrawn.Add(amount)
	if nil != err {
		trx.Abort()
		return wei.Zero(), block, err
	}
	p.ledger.PutTotals(trx, totals)

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("withdraw: %s  commit error: %s", caller.Hex(), err)
		return wei.Zero(), block, err
	}

	p.inFlight[caller] = struct{}{}
	return amount, block, nil
}

// put back a debit whose transfer failed
func (p *Pool) restore(caller common.Address, amount wei.Amount) {
	p.Lock()
	defer p.Unlock()

	delete(p.inFlight, caller)

	trx, _, err := p.begin()
	if nil != err {
		p.log.Criticalf("restore: %s  amount: %s  begin error: %s", caller.Hex(), amount, err)
		return
	}

	err = p.ledger.CreditOwner(trx, caller, amount)
	if nil != err {
		trx.Abort()
		p.log.Criticalf("restore: %s  amount: %s  credit error: %s", caller.Hex(), amount, err)
		return
	}

	totals := p.ledger.Totals(trx)
	totals.Withdrawn, err = totals.Withdrawn.Sub(amount)
	if nil != err {
		trx.Abort()
		p.log.Criticalf("restore: %s  amount: %s  totals error: %s", caller.Hex(), amount, err)
		return
	}
	p.ledger.PutTotals(trx, totals)

	err = trx.Commit()
	if nil != err {
		p.log.Criticalf("restore: %s  amount: %s  commit error: %s", caller.Hex(), amount, err)
		return
	}
	p.log.Warnf("restored: %s  amount: %s", caller.Hex(), amount)
}
