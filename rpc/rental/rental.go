// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rental

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/rpc/ratelimit"
	"github.com/bitmark-inc/nftpoold/wei"
)

// MaximumListingCount - largest page for Pool.All
const MaximumListingCount = 100

// Pool - type for the RPC
type Pool struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Pool        pool.Operations
	Metadata    *custody.Metadata
	Credentials *credential.Issuer
}

// New - create the rental service, metadata may be nil
func New(log *logger.L, p pool.Operations, metadata *custody.Metadata, credentials *credential.Issuer) *Pool {
	return &Pool{
		Log:         log,
		Limiter:     ratelimit.NewLimiter(),
		Pool:        p,
		Metadata:    metadata,
		Credentials: credentials,
	}
}

// Asset - the contract and token of a request
type Asset struct {
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId"`
}

func (a Asset) identity() (nft.Identity, error) {
	return nft.ParseIdentity(a.Contract, a.TokenId)
}

// Listing management
// ------------------

// ListArguments - arguments for Pool.List and Pool.Edit
type ListArguments struct {
	Credential    string     `json:"credential"`
	Contract      string     `json:"contract"`
	TokenId       string     `json:"tokenId"`
	FlashFee      wei.Amount `json:"flashFee"`
	PricePerBlock wei.Amount `json:"pricePerBlock"`
	MaxBlocks     uint64     `json:"maxBlocks"`
}

// ListReply - result of Pool.List and Pool.Edit
type ListReply struct {
	ListingId nft.ListingId `json:"listingId"`
}

func (arguments *ListArguments) parse() (nft.Identity, listing.Terms, error) {
	id, err := Asset{Contract: arguments.Contract, TokenId: arguments.TokenId}.identity()
	if nil != err {
		return nft.Identity{}, listing.Terms{}, err
	}
	terms := listing.Terms{
		FlashFee:      arguments.FlashFee,
		PricePerBlock: arguments.PricePerBlock,
		MaxBlocks:     arguments.MaxBlocks,
	}
	return id, terms, nil
}

// List - put an asset into the pool
func (p *Pool) List(arguments *ListArguments, reply *ListReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	caller, err := p.Credentials.Caller(arguments.Credential)
	if nil != err {
		return err
	}
	id, terms, err := arguments.parse()
	if nil != err {
		return err
	}

	p.Log.Infof("Pool.List: caller: %s  asset: %s  terms: %+v", caller.Hex(), id, terms)

	listingId, err := p.Pool.AddListing(caller, id, terms)
	if nil != err {
		return err
	}
	reply.ListingId = listingId
	return nil
}

// Edit - replace the terms of a listing
func (p *Pool) Edit(arguments *ListArguments, reply *ListReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	caller, err := p.Credentials.Caller(arguments.Credential)
	if nil != err {
		return err
	}
	id, terms, err := arguments.parse()
	if nil != err {
		return err
	}

	p.Log.Infof("Pool.Edit: caller: %s  asset: %s  terms: %+v", caller.Hex(), id, terms)

	err = p.Pool.EditListing(caller, id, terms)
	if nil != err {
		return err
	}
	reply.ListingId = id.ListingId()
	return nil
}

// RemoveArguments - arguments for Pool.Remove
type RemoveArguments struct {
	Credential string `json:"credential"`
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId"`
}

// Remove - return an idle asset to its owner
func (p *Pool) Remove(arguments *RemoveArguments, reply *ListReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	caller, err := p.Credentials.Caller(arguments.Credential)
	if nil != err {
		return err
	}
	id, err := Asset{Contract: arguments.Contract, TokenId: arguments.TokenId}.identity()
	if nil != err {
		return err
	}

	p.Log.Infof("Pool.Remove: caller: %s  asset: %s", caller.Hex(), id)

	err = p.Pool.RemoveListing(caller, id)
	if nil != err {
		return err
	}
	if nil != p.Metadata {
		p.Metadata.Forget(id)
	}
	reply.ListingId = id.ListingId()
	return nil
}

// Renting
// -------

// RentArguments - arguments for Pool.RentLong and Pool.RentFlash
//
// Blocks is ignored by a flash rental
type RentArguments struct {
	Credential string     `json:"credential"`
	Contract string     `json:"contract"`
	TokenId  string     `json:"tokenId"`
	Blocks   uint64     `json:"blocks"`
	Payment  wei.Amount `json:"payment"`
}

// RentLong - rent for a number of blocks
func (p *Pool) RentLong(arguments *RentArguments, reply *pool.RentReceipt) error {
	return p.rent(arguments, reply, false)
}

// RentFlash - rent for the current block only
func (p *Pool) RentFlash(arguments *RentArguments, reply *pool.RentReceipt) error {
	return p.rent(arguments, reply, true)
}

func (p *Pool) rent(arguments *RentArguments, reply *pool.RentReceipt, flash bool) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	caller, err := p.Credentials.Caller(arguments.Credential)
	if nil != err {
		return err
	}
	id, err := Asset{Contract: arguments.Contract, TokenId: arguments.TokenId}.identity()
	if nil != err {
		return err
	}

	p.Log.Infof("Pool.Rent flash: %t  caller: %s  asset: %s  blocks: %d  payment: %s", flash, caller.Hex(), id, arguments.Blocks, arguments.Payment)

	var receipt *pool.RentReceipt
	if flash {
		receipt, err = p.Pool.RentFlash(caller, id, arguments.Payment)
	} else {
		receipt, err = p.Pool.RentLong(caller, id, arguments.Blocks, arguments.Payment)
	}
	if nil != err {
		return err
	}

	*reply = *receipt
	return nil
}

// QuoteArguments - arguments for Pool.Quote
type QuoteArguments struct {
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId"`
	Blocks   uint64 `json:"blocks"`
}

// QuoteReply - exact payment for a long rental
type QuoteReply struct {
	Cost wei.Amount `json:"cost"`
}

// Quote - the payment a long rental needs
func (p *Pool) Quote(arguments *QuoteArguments, reply *QuoteReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	id, err := Asset{Contract: arguments.Contract, TokenId: arguments.TokenId}.identity()
	if nil != err {
		return err
	}

	cost, err := p.Pool.Quote(id, arguments.Blocks)
	if nil != err {
		return err
	}
	reply.Cost = cost
	return nil
}

// Queries
// -------

// Get - one listing
func (p *Pool) Get(arguments *Asset, reply *pool.Summary) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	id, err := arguments.identity()
	if nil != err {
		return err
	}

	record, found := p.Pool.Get(id)
	if !found {
		return fault.NotFound
	}
	*reply = pool.Summarise(record, p.Pool.Height(), p.Metadata)
	return nil
}

// AllArguments - arguments for Pool.All
type AllArguments struct {
	Start *Asset `json:"start,omitempty"` // first listing, nil for the beginning
	Count int    `json:"count"`
}

// AllReply - one page of listings
type AllReply struct {
	Listings []pool.Summary `json:"listings"`
	Next     *Asset         `json:"next,omitempty"` // start of the next page, nil at the end
}

// All - every listing, a page at a time
func (p *Pool) All(arguments *AllArguments, reply *AllReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.LimitN(p.Limiter, arguments.Count, MaximumListingCount); nil != err {
		return err
	}

	var start *nft.Identity
	if nil != arguments.Start {
		id, err := arguments.Start.identity()
		if nil != err {
			return fault.InvalidCursor
		}
		start = &id
	}

	records, next, err := p.Pool.Page(start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Listings = pool.SummariseAll(records, p.Pool.Height(), p.Metadata)
	if nil != next {
		reply.Next = &Asset{
			Contract: next.Contract.Hex(),
			TokenId:  next.TokenId.Dec(),
		}
	}
	return nil
}

// OwnedArguments - arguments for Pool.Owned
type OwnedArguments struct {
	Owner string `json:"owner"`
}

// OwnedReply - listings of one owner
type OwnedReply struct {
	Listings []pool.Summary `json:"listings"`
}

// Owned - every listing of an owner
func (p *Pool) Owned(arguments *OwnedArguments, reply *OwnedReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	owner, err := nft.ParseAddress(arguments.Owner)
	if nil != err {
		return err
	}

	records, err := p.Pool.Owned(owner)
	if nil != err {
		return err
	}
	reply.Listings = pool.SummariseAll(records, p.Pool.Height(), p.Metadata)
	return nil
}
