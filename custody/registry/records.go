// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/util"
)

// Collection - a registered token collection
type Collection struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	BaseURI   string `json:"baseURI"`
	NextToken uint64 `json:"nextToken"`
}

// next token ++ (length ++ bytes) for name, symbol and base uri
func (c *Collection) pack() []byte {
	buffer := util.ToVarint64(c.NextToken)
	for _, s := range []string{c.Name, c.Symbol, c.BaseURI} {
		buffer = util.AppendPrefixed(buffer, []byte(s))
	}
	return buffer
}

func unpackCollection(buffer []byte) (*Collection, error) {
	u := util.NewUnpacker(buffer)
	c := &Collection{
		NextToken: u.Varint64(),
		Name:      string(u.Prefixed()),
		Symbol:    string(u.Prefixed()),
		BaseURI:   string(u.Prefixed()),
	}
	if !u.Done() {
		return nil, fault.InvalidCount
	}
	return c, nil
}

// ownership of one token
type token struct {
	owner    common.Address
	approved common.Address
}

func getToken(reader storage.Reader, pool *storage.PoolHandle, id nft.Identity) (token, bool) {
	packed := reader.Get(pool, id.Key())
	if nil == packed {
		return token{}, false
	}
	if 2*common.AddressLength != len(packed) {
		logger.Panicf("registry: corrupt token: %s  data: %x", id, packed)
	}
	return token{
		owner:    common.BytesToAddress(packed[:common.AddressLength]),
		approved: common.BytesToAddress(packed[common.AddressLength:]),
	}, true
}

func putToken(trx storage.Transaction, pool *storage.PoolHandle, id nft.Identity, t token) {
	packed := make([]byte, 0, 2*common.AddressLength)
	packed = append(packed, t.owner.Bytes()...)
	packed = append(packed, t.approved.Bytes()...)
	trx.Put(pool, id.Key(), packed)
}

// usage rights of one token
type delegation struct {
	user    common.Address
	expires uint64
}

func getDelegation(reader storage.Reader, pool *storage.PoolHandle, id nft.Identity) (delegation, bool) {
	packed := reader.Get(pool, id.Key())
	if nil == packed {
		return delegation{}, false
	}
	if common.AddressLength+8 != len(packed) {
		logger.Panicf("registry: corrupt delegation: %s  data: %x", id, packed)
	}
	return delegation{
		user:    common.BytesToAddress(packed[:common.AddressLength]),
		expires: binary.BigEndian.Uint64(packed[common.AddressLength:]),
	}, true
}

func putDelegation(trx storage.Transaction, pool *storage.PoolHandle, id nft.Identity, d delegation) {
	packed := make([]byte, common.AddressLength+8)
	copy(packed, d.user.Bytes())
	binary.BigEndian.PutUint64(packed[common.AddressLength:], d.expires)
	trx.Put(pool, id.Key(), packed)
}
