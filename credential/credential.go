// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/nft"
)

// Issuer - signs and checks caller credentials
type Issuer struct {
	secret []byte
}

// New - an issuer for a shared secret, a blank secret refuses everything
func New(secret string) *Issuer {
	return &Issuer{
		secret: []byte(secret),
	}
}

// Issue - credential naming caller, valid for a duration
func (i *Issuer) Issue(caller common.Address, validity time.Duration) (string, error) {
	if nil == i || 0 == len(i.secret) {
		return "", fault.NotInitialised
	}
	if (common.Address{}) == caller {
		return "", fault.InvalidAddress
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   caller.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Caller - the address a valid credential was issued to
func (i *Issuer) Caller(credential string) (common.Address, error) {
	credential = strings.TrimSpace(credential)
	if nil == i || 0 == len(i.secret) || "" == credential {
		return common.Address{}, fault.Unauthorised
	}

	token, err := jwt.Parse(
		credential,
		func(token *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if nil != err || !token.Valid {
		return common.Address{}, fault.Unauthorised
	}

	subject, err := token.Claims.GetSubject()
	if nil != err {
		return common.Address{}, fault.Unauthorised
	}
	caller, err := nft.ParseAddress(subject)
	if nil != err || (common.Address{}) == caller {
		return common.Address{}, fault.Unauthorised
	}
	return caller, nil
}

// Subject - the address a credential names, without checking it
//
// only for a client choosing defaults, the daemon always calls Caller
func Subject(credential string) (common.Address, error) {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(credential), &claims)
	if nil != err {
		return common.Address{}, fault.Wrap(fault.Unauthorised, err)
	}
	return nft.ParseAddress(claims.Subject)
}
