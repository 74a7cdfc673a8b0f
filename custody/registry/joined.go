// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/storage"
)

// custody operations inside a caller's transaction
type joined struct {
	registry *Registry
	trx      storage.Transaction
}

// TransferIn - the pool takes the token, it must be approved as spender
func (j *joined) TransferIn(id nft.Identity, from common.Address) error {
	r := j.registry
	t, err := r.token(j.trx, "transfer in", id)
	if nil != err {
		return err
	}
	if t.owner != from {
		return &fault.CustodyError{Op: "transfer in", Asset: id.String(), Err: fault.NotTokenOwner}
	}
	if t.approved != r.pool {
		return &fault.CustodyError{Op: "transfer in", Asset: id.String(), Err: fault.TokenNotApproved}
	}

	putToken(j.trx, r.tokens, id, token{owner: r.pool})
	r.log.Debugf("transfer in: %s  from: %s", id, from.Hex())
	return nil
}

// TransferOut - the pool returns the token and any delegation ends
func (j *joined) TransferOut(id nft.Identity, to common.Address) error {
	r := j.registry
	t, err := r.token(j.trx, "transfer out", id)
	if nil != err {
		return err
	}
	if t.owner != r.pool {
		return &fault.CustodyError{Op: "transfer out", Asset: id.String(), Err: fault.NotTokenOwner}
	}

	putToken(j.trx, r.tokens, id, token{owner: to})
	j.trx.Delete(r.users, id.Key())
	r.log.Debugf("transfer out: %s  to: %s", id, to.Hex())
	return nil
}

// DelegateUsage - record the user and the block its rights end
func (j *joined) DelegateUsage(id nft.Identity, to common.Address, until uint64) error {
	r := j.registry
	t, err := r.token(j.trx, "delegate", id)
	if nil != err {
		return err
	}
	if t.owner != r.pool {
		return &fault.CustodyError{Op: "delegate", Asset: id.String(), Err: fault.NotTokenOwner}
	}

	putDelegation(j.trx, r.users, id, delegation{user: to, expires: until})
	r.log.Debugf("delegate: %s  to: %s  until: %d", id, to.Hex(), until)
	return nil
}

// MetadataURI - reads committed data only
func (j *joined) MetadataURI(id nft.Identity) (string, bool) {
	return j.registry.MetadataURI(id)
}
