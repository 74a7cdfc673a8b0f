// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package httpapi - the HTTPS gateway
//
// routes:
//
//	POST   /pool/rpc                              JSON-RPC bridge
//	GET    /pool/details                          node details (allow list)
//	GET    /v1/listings                           page of listings
//	GET    /v1/listings/:contract/:token          one listing
//	GET    /v1/listings/:contract/:token/quote    exact rental cost
//	GET    /v1/owners/:address/listings           listings of an owner
//	GET    /v1/earnings/:address                  balance
//	GET    /v1/events                             websocket event stream
//
// bearer token required (HS256, subject is the caller address):
//
//	POST   /v1/listings
//	PUT    /v1/listings/:contract/:token
//	DELETE /v1/listings/:contract/:token
//	POST   /v1/listings/:contract/:token/rent
//	POST   /v1/listings/:contract/:token/flash
//	POST   /v1/withdraw
//
// errors are reported as {"error": {"kind": "...", "reason": "..."}}
package httpapi
