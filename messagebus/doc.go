// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues between the ledger and the publishers
//
// a Queue has one reader, a BroadcastQueue copies every message to
// all current subscribers; neither ever blocks a sender, when a
// reader falls behind its messages are dropped
package messagebus
