// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package credential - HS256 tokens that prove who a caller is
//
// every state changing call, over the TLS JSON-RPC listener, the
// HTTPS bridge or the HTTPS routes, names its caller only through a
// credential; the subject of the token is the caller address
package credential
