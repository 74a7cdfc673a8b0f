// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the listing table, the owner balance table and the
// pool totals
//
// no rules are applied here beyond arithmetic overflow and a zero
// debit, the pool package decides what may change
package ledger
