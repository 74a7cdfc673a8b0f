// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/wei"
)

func ether(s string) wei.Amount {
	a, err := wei.FromEther(s)
	if nil != err {
		panic(err)
	}
	return a
}

func TestValidate(t *testing.T) {
	tests := []struct {
		terms listing.Terms
		err   error
	}{
		{listing.Terms{PricePerBlock: ether("1"), MaxBlocks: 100}, nil},
		{listing.Terms{FlashFee: ether("0.1"), MaxBlocks: 1}, nil},
		{listing.Terms{FlashFee: ether("0.1"), PricePerBlock: ether("1"), MaxBlocks: 5}, nil},
		{listing.Terms{MaxBlocks: 100}, fault.InvalidTerms},
		{listing.Terms{PricePerBlock: ether("1")}, fault.InvalidTerms},
	}

	for i, item := range tests {
		assert.Equal(t, item.err, item.terms.Validate(), "%d: terms: %+v", i, item.terms)
	}
}

func TestAvailable(t *testing.T) {
	r := &listing.Record{}
	assert.True(t, r.Available(0), "never rented")

	r.RentedUntil = 1010
	assert.False(t, r.Available(1005), "rented")
	assert.False(t, r.Available(1009), "last rented block")
	assert.True(t, r.Available(1010), "elapsed")
	assert.True(t, r.Available(2000), "long elapsed")
}

func TestPackUnpack(t *testing.T) {
	r := &listing.Record{
		Identity: nft.NewIdentity(common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), 12345),
		Terms: listing.Terms{
			FlashFee:      ether("0.05"),
			PricePerBlock: ether("1"),
			MaxBlocks:     100,
		},
		Owner:       common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
		RentedUntil: 1010,
		Operator:    common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"),
		ListedAt:    990,
		Rentals:     3,
	}

	packed := r.Pack()

	unpacked, err := listing.Unpack(r.Key(), packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, r, unpacked, "round trip")

	_, err = listing.Unpack(r.Key(), packed[:len(packed)-1])
	assert.Equal(t, fault.NotAListingPack, err, "truncated")

	_, err = listing.Unpack(r.Key(), append(packed, 0x00))
	assert.Equal(t, fault.NotAListingPack, err, "trailing data")

	bad := append([]byte{0x7f}, packed[1:]...)
	_, err = listing.Unpack(r.Key(), bad)
	assert.Equal(t, fault.NotAListingPack, err, "wrong tag")

	_, err = listing.Unpack(r.Key()[1:], packed)
	assert.Equal(t, fault.NotAListingId, err, "bad key")
}
