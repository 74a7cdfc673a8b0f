// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftpoold/fault"
)

// ListingIdLength - number of bytes in a listing id
const ListingIdLength = 32

// ListingId - SHA3-256 of an identity key
type ListingId [ListingIdLength]byte

// NewListingId - digest a packed identity
func NewListingId(key []byte) ListingId {
	return ListingId(sha3.Sum256(key))
}

// String - base58
func (l ListingId) String() string {
	return base58.Encode(l[:])
}

// MarshalText - base58 for JSON
func (l ListingId) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText - from base58
func (l *ListingId) UnmarshalText(s []byte) error {
	buffer, err := base58.Decode(string(s))
	if nil != err || ListingIdLength != len(buffer) {
		return fault.NotAListingId
	}
	copy(l[:], buffer)
	return nil
}
