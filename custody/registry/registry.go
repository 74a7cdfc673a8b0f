// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - a local ERC-721 style token registry
//
// collections are registered, tokens minted and approved here; the
// pool account is the only spender that can take custody
package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/storage"
)

// Registry - token ownership over the shared store
type Registry struct {
	log         *logger.L
	db          *storage.Store
	pool        common.Address
	collections *storage.PoolHandle
	tokens      *storage.PoolHandle
	users       *storage.PoolHandle
}

// New - registry whose custodian is the pool account
func New(log *logger.L, db *storage.Store, poolAccount common.Address) *Registry {
	return &Registry{
		log:         log,
		db:          db,
		pool:        poolAccount,
		collections: db.Collections,
		tokens:      db.Tokens,
		users:       db.Users,
	}
}

// PoolAccount - the custodian address
func (r *Registry) PoolAccount() common.Address {
	return r.pool
}

// run f in its own transaction
func (r *Registry) update(f func(trx storage.Transaction) error) error {
	trx, err := r.db.Begin()
	if nil != err {
		return err
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// RegisterCollection - add a new collection
func (r *Registry) RegisterCollection(contract common.Address, name string, symbol string, baseURI string) error {
	return r.update(func(trx storage.Transaction) error {
		if trx.Has(r.collections, contract.Bytes()) {
			return fault.CollectionAlreadyExists
		}
		c := &Collection{
			Name:      name,
			Symbol:    symbol,
			BaseURI:   baseURI,
			NextToken: 1,
		}
		trx.Put(r.collections, contract.Bytes(), c.pack())
		r.log.Infof("register collection: %s  name: %q  symbol: %q", contract.Hex(), name, symbol)
		return nil
	})
}

// Collection - read a registered collection
func (r *Registry) Collection(contract common.Address) (*Collection, bool) {
	return r.collection(storage.Committed, contract)
}

func (r *Registry) collection(reader storage.Reader, contract common.Address) (*Collection, bool) {
	packed := reader.Get(r.collections, contract.Bytes())
	if nil == packed {
		return nil, false
	}
	c, err := unpackCollection(packed)
	if nil != err {
		logger.Panicf("registry: corrupt collection: %s  error: %s", contract.Hex(), err)
	}
	return c, true
}

// Mint - create the next token of a collection for an owner
func (r *Registry) Mint(contract common.Address, to common.Address) (nft.Identity, error) {
	var id nft.Identity
	err := r.update(func(trx storage.Transaction) error {
		c, found := r.collection(trx, contract)
		if !found {
			return &fault.CustodyError{Op: "mint", Asset: contract.Hex(), Err: fault.UnknownCollection}
		}

		id = nft.NewIdentity(contract, c.NextToken)
		c.NextToken += 1

		trx.Put(r.collections, contract.Bytes(), c.pack())
		putToken(trx, r.tokens, id, token{owner: to})

		r.log.Infof("mint: %s  to: %s", id, to.Hex())
		return nil
	})
	return id, err
}

// Approve - owner allows spender to transfer the token
func (r *Registry) Approve(caller common.Address, id nft.Identity, spender common.Address) error {
	return r.update(func(trx storage.Transaction) error {
		t, err := r.token(trx, "approve", id)
		if nil != err {
			return err
		}
		if t.owner != caller {
			return &fault.CustodyError{Op: "approve", Asset: id.String(), Err: fault.NotTokenOwner}
		}
		t.approved = spender
		putToken(trx, r.tokens, id, t)
		r.log.Debugf("approve: %s  spender: %s", id, spender.Hex())
		return nil
	})
}

// OwnerOf - current token owner
func (r *Registry) OwnerOf(id nft.Identity) (common.Address, error) {
	t, err := r.token(storage.Committed, "owner of", id)
	if nil != err {
		return common.Address{}, err
	}
	return t.owner, nil
}

// Approved - current approved spender, zero if none
func (r *Registry) Approved(id nft.Identity) (common.Address, error) {
	t, err := r.token(storage.Committed, "approved", id)
	if nil != err {
		return common.Address{}, err
	}
	return t.approved, nil
}

// UserOf - holder of usage rights at block, zero once expired
func (r *Registry) UserOf(id nft.Identity, block uint64) common.Address {
	d, found := getDelegation(storage.Committed, r.users, id)
	if !found || d.expires <= block {
		return common.Address{}
	}
	return d.user
}

// MetadataURI - base uri ++ token id
func (r *Registry) MetadataURI(id nft.Identity) (string, bool) {
	c, found := r.Collection(id.Contract)
	if !found || "" == c.BaseURI {
		return "", false
	}
	if !storage.Committed.Has(r.tokens, id.Key()) {
		return "", false
	}
	return c.BaseURI + id.TokenId.Dec(), true
}

// TransferIn - custody.Adapter in a transaction of its own
func (r *Registry) TransferIn(id nft.Identity, from common.Address) error {
	return r.update(func(trx storage.Transaction) error {
		return r.Join(trx).TransferIn(id, from)
	})
}

// TransferOut - custody.Adapter in a transaction of its own
func (r *Registry) TransferOut(id nft.Identity, to common.Address) error {
	return r.update(func(trx storage.Transaction) error {
		return r.Join(trx).TransferOut(id, to)
	})
}

// DelegateUsage - custody.Adapter in a transaction of its own
func (r *Registry) DelegateUsage(id nft.Identity, to common.Address, until uint64) error {
	return r.update(func(trx storage.Transaction) error {
		return r.Join(trx).DelegateUsage(id, to, until)
	})
}

// Join - adapter writing into an existing transaction
func (r *Registry) Join(trx storage.Transaction) custody.Adapter {
	return &joined{
		registry: r,
		trx:      trx,
	}
}

// fetch a token record, errors are custody errors
func (r *Registry) token(reader storage.Reader, op string, id nft.Identity) (token, error) {
	if !reader.Has(r.collections, id.Contract.Bytes()) {
		return token{}, &fault.CustodyError{Op: op, Asset: id.String(), Err: fault.UnknownCollection}
	}
	t, found := getToken(reader, r.tokens, id)
	if !found {
		return token{}, &fault.CustodyError{Op: op, Asset: id.String(), Err: fault.UnknownToken}
	}
	return t, nil
}
