// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pool - the rental pool state machine
//
// every transition runs under the pool lock inside a single storage
// transaction: either the whole transition commits or nothing does.
// Events are emitted only after a commit.
//
// A listing is Available while rentedUntil <= current block and
// Rented otherwise; the only explicit transition is Available to
// Rented, the counter advancing past rentedUntil makes it Available
// again.
package pool
