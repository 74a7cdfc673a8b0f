// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/counter"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/rpc/earnings"
	"github.com/bitmark-inc/nftpoold/rpc/node"
	"github.com/bitmark-inc/nftpoold/rpc/rental"
	"github.com/bitmark-inc/nftpoold/rpc/token"
)

// Handles - what the services operate on
//
// Registry and Payouts are optional, without Credentials every state
// changing call is refused
type Handles struct {
	Pool        pool.Operations
	Metadata    *custody.Metadata
	Registry    token.Registry
	Payouts     earnings.Payouts
	Counter     blockcount.Counter
	Credentials *credential.Issuer
}

// Create - an rpc server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, handles Handles) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(rental.New(log, handles.Pool, handles.Metadata, handles.Credentials))
	_ = server.Register(earnings.New(log, handles.Pool, handles.Payouts, handles.Credentials))
	_ = server.Register(node.New(log, start, version, rpcCount, handles.Pool))
	if nil != handles.Registry {
		_ = server.Register(token.New(log, handles.Registry, handles.Counter, handles.Credentials))
	}

	return server
}
