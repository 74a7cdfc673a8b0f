// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction that accumulates a single
// LevelDB batch; a commit writes the batch atomically so no partial
// state is ever visible.  Reads made through the transaction see its
// own pending writes, reads made directly on a pool see only
// committed data.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. contract     = collection address (20 bytes)
// 4. token        = token id as 32 byte big endian
// 5. owner        = account address (20 bytes)
// 6. amount       = wei as 32 byte big endian
// 7. block        = block number as big endian uint64 (8 bytes)
//
// Listings:
//
//   L ++ contract ++ token     - listed asset
//                                data: packed listing record
//   O ++ owner ++ contract ++ token
//                              - owner index of listings
//                                data: empty
//
// Earnings:
//
//   B ++ owner                 - withdrawable balance
//                                data: amount
//   T ++ "totals"              - received ++ withdrawn
//                                data: amount ++ amount
//
// Custody registry:
//
//   C ++ contract              - registered collection
//                                data: next token(varint) ++ name ++ symbol ++ base uri (varint length prefixed)
//   K ++ contract ++ token     - token ownership
//                                data: owner ++ approved
//   U ++ contract ++ token     - usage delegation
//                                data: user ++ expiry block
//
// Payouts:
//
//   P ++ payout id             - payout order (16 byte uuid)
//                                data: packed payout
//
// Block counter:
//
//   H ++ "ticker"              - local chain height
//                                data: height (8 byte big endian)
package storage
