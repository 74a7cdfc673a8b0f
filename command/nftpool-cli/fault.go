// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/nftpoold/fault"
)

// common errors - keep in alphabetic order
const (
	ErrRequiredBlocks     = fault.InvalidError("blocks is required")
	ErrRequiredContract   = fault.InvalidError("contract is required")
	ErrRequiredCredential = fault.InvalidError("credential is required")
	ErrRequiredName       = fault.InvalidError("name is required")
	ErrRequiredOwner      = fault.InvalidError("owner is required")
	ErrRequiredPayment    = fault.InvalidError("payment is required")
	ErrRequiredTo         = fault.InvalidError("receiver is required")
	ErrRequiredTokenId    = fault.InvalidError("token id is required")
)
