// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for the NFT rental pool daemon
//
// every command is a single JSON RPC call, the reply is printed as
// JSON, e.g. to rent a listed token for ten blocks:
//
//   nftpool-cli --credential=eyJhbGci... rent -a 0x5FbD... -t 1 -b 10 -p 0.5
//
// the caller of a state changing command is proved by a credential,
// "nftpoold issue-token ADDRESS" prints one; the connection and
// credential may also be set by the environment variables
// NFTPOOL_CONNECT and NFTPOOL_CREDENTIAL
package main
