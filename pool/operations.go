// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/ledger"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Operations - the pool as used by the rpc and https front ends
type Operations interface {
	AddListing(common.Address, nft.Identity, listing.Terms) (nft.ListingId, error)
	EditListing(common.Address, nft.Identity, listing.Terms) error
	RemoveListing(common.Address, nft.Identity) error
	RentLong(common.Address, nft.Identity, uint64, wei.Amount) (*RentReceipt, error)
	RentFlash(common.Address, nft.Identity, wei.Amount) (*RentReceipt, error)
	Quote(nft.Identity, uint64) (wei.Amount, error)
	Get(nft.Identity) (*listing.Record, bool)
	Page(*nft.Identity, int) ([]*listing.Record, *nft.Identity, error)
	Owned(common.Address) ([]*listing.Record, error)
	Count() (int, error)
	Earnings(common.Address) wei.Amount
	Withdraw(common.Address) (wei.Amount, error)
	Totals() (ledger.Totals, wei.Amount, error)
	Height() uint64
}

var _ Operations = (*Pool)(nil)
