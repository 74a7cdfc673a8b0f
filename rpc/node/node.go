// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/counter"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/rpc/ratelimit"
	"github.com/bitmark-inc/nftpoold/wei"
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Pool        pool.Operations
	Connections *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, connections *counter.Counter, p pool.Operations) *Node {
	return &Node{
		Log:         log,
		Limiter:     ratelimit.NewLimiter(),
		Start:       start,
		Version:     version,
		Pool:        p,
		Connections: connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version  string     `json:"version"`
	Uptime   string     `json:"uptime"`
	Block    BlockInfo  `json:"block"`
	RPCs     uint64     `json:"rpcs"`
	Listings int        `json:"listings"`
	Totals   TotalsInfo `json:"totals"`
}

// BlockInfo - the block the pool is at
type BlockInfo struct {
	Height uint64 `json:"height"`
}

// TotalsInfo - ether accounting
type TotalsInfo struct {
	Received    wei.Amount `json:"received"`
	Withdrawn   wei.Amount `json:"withdrawn"`
	Outstanding wei.Amount `json:"outstanding"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Pool {
		return fault.DatabaseIsNotSet
	}

	count, err := node.Pool.Count()
	if nil != err {
		return err
	}
	totals, outstanding, err := node.Pool.Totals()
	if nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Block.Height = node.Pool.Height()
	if nil != node.Connections {
		reply.RPCs = node.Connections.Uint64()
	}
	reply.Listings = count
	reply.Totals = TotalsInfo{
		Received:    totals.Received,
		Withdrawn:   totals.Withdrawn,
		Outstanding: outstanding,
	}
	return nil
}
