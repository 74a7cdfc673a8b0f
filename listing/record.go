// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - the pool record of one rentable asset
package listing

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/util"
	"github.com/bitmark-inc/nftpoold/wei"
)

// packed record tag
const recordTag = 0x01

// Terms - rental terms set by the owner
type Terms struct {
	FlashFee      wei.Amount `json:"flashFee"`
	PricePerBlock wei.Amount `json:"pricePerBlock"`
	MaxBlocks     uint64     `json:"maxBlocks"`
}

// Validate - at least one fee and a positive block limit
func (t Terms) Validate() error {
	if t.FlashFee.IsZero() && t.PricePerBlock.IsZero() {
		return fault.InvalidTerms
	}
	if 0 == t.MaxBlocks {
		return fault.InvalidTerms
	}
	return nil
}

// Record - one listed asset
//
// RentedUntil is the first block at which the asset is available
// again, it never decreases
type Record struct {
	nft.Identity
	Terms
	Owner       common.Address
	RentedUntil uint64
	Operator    common.Address
	ListedAt    uint64
	Rentals     uint64
}

// Available - not occupied at block
func (r *Record) Available(block uint64) bool {
	return r.RentedUntil <= block
}

// Pack - serialise the record, the identity is the storage key and is not packed
//
// tag ++ owner ++ flash fee ++ price per block ++ max blocks ++
// rented until ++ operator ++ listed at ++ rentals
func (r *Record) Pack() []byte {
	buffer := make([]byte, 0, 1+2*common.AddressLength+2*wei.PackedSize+4*util.Varint64MaximumBytes)
	buffer = append(buffer, recordTag)
	buffer = append(buffer, r.Owner.Bytes()...)
	buffer = append(buffer, r.FlashFee.Pack()...)
	buffer = append(buffer, r.PricePerBlock.Pack()...)
	buffer = util.AppendVarint64(buffer, r.MaxBlocks)
	buffer = util.AppendVarint64(buffer, r.RentedUntil)
	buffer = append(buffer, r.Operator.Bytes()...)
	buffer = util.AppendVarint64(buffer, r.ListedAt)
	buffer = util.AppendVarint64(buffer, r.Rentals)
	return buffer
}

// Unpack - restore a record from its storage key and packed data
func Unpack(key []byte, buffer []byte) (*Record, error) {
	id, err := nft.IdentityFromKey(key)
	if nil != err {
		return nil, err
	}

	if len(buffer) < 1 || recordTag != buffer[0] {
		return nil, fault.NotAListingPack
	}
	u := util.NewUnpacker(buffer[1:])

	r := &Record{
		Identity: id,
	}
	r.Owner = common.BytesToAddress(u.Fixed(common.AddressLength))
	r.FlashFee = unpackAmount(u)
	r.PricePerBlock = unpackAmount(u)
	r.MaxBlocks = u.Varint64()
	r.RentedUntil = u.Varint64()
	r.Operator = common.BytesToAddress(u.Fixed(common.AddressLength))
	r.ListedAt = u.Varint64()
	r.Rentals = u.Varint64()

	if !u.Done() {
		return nil, fault.NotAListingPack
	}
	return r, nil
}

func unpackAmount(u *util.Unpacker) wei.Amount {
	a, count, err := wei.Unpack(u.Remaining())
	if nil != err {
		u.Fail()
		return wei.Zero()
	}
	u.Skip(count)
	return a
}
