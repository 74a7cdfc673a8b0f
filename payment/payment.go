// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - the ether value transfer primitive
//
// the daemon never signs chain transactions itself; a transfer is
// an order written to the outbox and published so an external
// settlement signer can execute it and later settle the order
package payment

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/nftpoold/wei"
)

// Transfer - send ether from the pool to an address
type Transfer interface {
	Pay(to common.Address, amount wei.Amount) error
}
