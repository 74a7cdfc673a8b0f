// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Summary - client view of a listing at a block
type Summary struct {
	ListingId     nft.ListingId   `json:"listingId"`
	Contract      common.Address  `json:"contract"`
	TokenId       string          `json:"tokenId"`
	Owner         common.Address  `json:"owner"`
	FlashFee      wei.Amount      `json:"flashFee"`
	PricePerBlock wei.Amount      `json:"pricePerBlock"`
	MaxBlocks     uint64          `json:"maxBlocks"`
	RentedUntil   uint64          `json:"rentedUntil"`
	Available     bool            `json:"available"`
	Operator      *common.Address `json:"operator,omitempty"`
	ListedAt      uint64          `json:"listedAt"`
	Rentals       uint64          `json:"rentals"`
	Metadata      custody.Display `json:"metadata"`
}

// Summarise - view of r, metadata may be nil
//
// the operator is only shown while the rental is running
func Summarise(r *listing.Record, block uint64, metadata *custody.Metadata) Summary {
	s := Summary{
		ListingId:     r.ListingId(),
		Contract:      r.Contract,
		TokenId:       r.TokenId.Dec(),
		Owner:         r.Owner,
		FlashFee:      r.FlashFee,
		PricePerBlock: r.PricePerBlock,
		MaxBlocks:     r.MaxBlocks,
		RentedUntil:   r.RentedUntil,
		Available:     r.Available(block),
		ListedAt:      r.ListedAt,
		Rentals:       r.Rentals,
	}
	if !s.Available {
		operator := r.Operator
		s.Operator = &operator
	}
	if nil != metadata {
		s.Metadata = metadata.Lookup(r.Identity)
	} else {
		s.Metadata = custody.Display{
			Name:        custody.DefaultName,
			Image:       custody.DefaultImage,
			Placeholder: true,
		}
	}
	return s
}

// SummariseAll - views of a list of records
func SummariseAll(records []*listing.Record, block uint64, metadata *custody.Metadata) []Summary {
	s := make([]Summary, len(records))
	for i, r := range records {
		s[i] = Summarise(r, block, metadata)
	}
	return s
}
