// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - the asset ownership primitive the pool depends on
//
// failures are reported as *fault.CustodyError wrapping one of
// fault.TokenNotApproved, fault.UnknownToken, fault.UnknownCollection
// or fault.NotTokenOwner
package custody

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/storage"
)

// Adapter - move assets in and out of pool custody
type Adapter interface {
	// take the asset from its owner into the pool
	TransferIn(id nft.Identity, from common.Address) error

	// return the asset from the pool
	TransferOut(id nft.Identity, to common.Address) error

	// give temporary usage rights until the block
	DelegateUsage(id nft.Identity, to common.Address, until uint64) error

	// best effort, absence is not an error
	MetadataURI(id nft.Identity) (string, bool)
}

// Joiner - an adapter whose writes can join the ledger transaction
// so custody moves commit or roll back with it
type Joiner interface {
	Join(trx storage.Transaction) Adapter
}

// Bind - the adapter to use inside trx
func Bind(adapter Adapter, trx storage.Transaction) Adapter {
	if j, ok := adapter.(Joiner); ok {
		return j.Join(trx)
	}
	return adapter
}
