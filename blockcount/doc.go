// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockcount - the monotonic block height used to time rentals
//
// a "local" source advances the height on a fixed interval, a "file"
// source follows a height file maintained by an external chain
// follower
package blockcount
