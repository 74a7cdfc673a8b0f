// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/util"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Order - one pending payout
type Order struct {
	Id      uuid.UUID      `json:"id"`
	Address common.Address `json:"address"`
	Amount  wei.Amount     `json:"amount"`
	Block   uint64         `json:"block"`
}

// packed: address ++ amount ++ varint64(block)
func (o *Order) pack() []byte {
	buffer := make([]byte, 0, common.AddressLength+wei.PackedSize+9)
	buffer = append(buffer, o.Address.Bytes()...)
	buffer = append(buffer, o.Amount.Pack()...)
	return util.AppendVarint64(buffer, o.Block)
}

func unpackOrder(key []byte, buffer []byte) (*Order, error) {
	id, err := uuid.FromBytes(key)
	if nil != err {
		return nil, err
	}

	u := util.NewUnpacker(buffer)
	o := &Order{
		Id:      id,
		Address: common.BytesToAddress(u.Fixed(common.AddressLength)),
	}

	amount, count, err := wei.Unpack(u.Remaining())
	if nil != err {
		return nil, fault.NotAPayoutPack
	}
	u.Skip(count)
	o.Amount = amount
	o.Block = u.Varint64()

	if !u.Done() {
		return nil, fault.NotAPayoutPack
	}
	return o, nil
}
