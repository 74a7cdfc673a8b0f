// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nft - identity of a token within a collection
package nft

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/nftpoold/fault"
)

// KeySize - bytes in a packed identity
const KeySize = common.AddressLength + 32

// Identity - one asset: collection contract and token id
type Identity struct {
	Contract common.Address
	TokenId  uint256.Int
}

// NewIdentity - identity from a contract and a 64 bit token number
func NewIdentity(contract common.Address, tokenId uint64) Identity {
	id := Identity{
		Contract: contract,
	}
	id.TokenId.SetUint64(tokenId)
	return id
}

// ParseIdentity - contract as 0x hex and token id as decimal (or 0x hex)
func ParseIdentity(contract string, tokenId string) (Identity, error) {
	address, err := ParseAddress(contract)
	if nil != err {
		return Identity{}, err
	}

	id := Identity{
		Contract: address,
	}
	tokenId = strings.TrimSpace(tokenId)
	if strings.HasPrefix(tokenId, "0x") || strings.HasPrefix(tokenId, "0X") {
		err = id.TokenId.UnmarshalText([]byte(tokenId))
	} else {
		err = id.TokenId.SetFromDecimal(tokenId)
	}
	if nil != err || strings.HasPrefix(tokenId, "+") {
		return Identity{}, fault.InvalidToken
	}
	return id, nil
}

// ParseAddress - a 0x prefixed 20 byte hex address
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fault.InvalidAddress
	}
	return common.HexToAddress(s), nil
}

// Key - contract ++ token id (32 bytes big endian)
func (id Identity) Key() []byte {
	key := make([]byte, 0, KeySize)
	key = append(key, id.Contract.Bytes()...)
	token := id.TokenId.Bytes32()
	return append(key, token[:]...)
}

// IdentityFromKey - reverse of Key
func IdentityFromKey(key []byte) (Identity, error) {
	if KeySize != len(key) {
		return Identity{}, fault.NotAListingId
	}
	id := Identity{
		Contract: common.BytesToAddress(key[:common.AddressLength]),
	}
	id.TokenId.SetBytes32(key[common.AddressLength:])
	return id, nil
}

// ListingId - the public identifier of the listing for this asset
func (id Identity) ListingId() ListingId {
	return NewListingId(id.Key())
}

// String - contract:token
func (id Identity) String() string {
	return id.Contract.Hex() + ":" + id.TokenId.Dec()
}
