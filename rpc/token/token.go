// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/rpc/ratelimit"
)

// Registry - the token collections the pool takes custody from
type Registry interface {
	PoolAccount() common.Address
	RegisterCollection(contract common.Address, name string, symbol string, baseURI string) error
	Mint(contract common.Address, to common.Address) (nft.Identity, error)
	Approve(caller common.Address, id nft.Identity, spender common.Address) error
	OwnerOf(id nft.Identity) (common.Address, error)
	Approved(id nft.Identity) (common.Address, error)
	UserOf(id nft.Identity, block uint64) common.Address
	MetadataURI(id nft.Identity) (string, bool)
}

// Token - type for the RPC
type Token struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Registry    Registry
	Counter     blockcount.Counter
	Credentials *credential.Issuer
}

// New - create the token service
func New(log *logger.L, registry Registry, counter blockcount.Counter, credentials *credential.Issuer) *Token {
	return &Token{
		Log:         log,
		Limiter:     ratelimit.NewLimiter(),
		Registry:    registry,
		Counter:     counter,
		Credentials: credentials,
	}
}

// RegisterArguments - arguments for Token.Register
type RegisterArguments struct {
	Contract string `json:"contract"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	BaseURI  string `json:"baseURI"`
}

// RegisterReply - result of Token.Register
type RegisterReply struct {
	Contract string `json:"contract"`
}

// Register - add a collection
func (t *Token) Register(arguments *RegisterArguments, reply *RegisterReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Register: %+v", arguments)

	contract, err := nft.ParseAddress(arguments.Contract)
	if nil != err {
		return err
	}

	err = t.Registry.RegisterCollection(contract, arguments.Name, arguments.Symbol, arguments.BaseURI)
	if nil != err {
		return err
	}
	reply.Contract = contract.Hex()
	return nil
}

// MintArguments - arguments for Token.Mint
type MintArguments struct {
	Contract string `json:"contract"`
	To       string `json:"to"`
}

// MintReply - the new token
type MintReply struct {
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId"`
}

// Mint - create the next token of a collection
func (t *Token) Mint(arguments *MintArguments, reply *MintReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Mint: %+v", arguments)

	contract, err := nft.ParseAddress(arguments.Contract)
	if nil != err {
		return err
	}
	to, err := nft.ParseAddress(arguments.To)
	if nil != err {
		return err
	}

	id, err := t.Registry.Mint(contract, to)
	if nil != err {
		return err
	}
	reply.Contract = id.Contract.Hex()
	reply.TokenId = id.TokenId.Dec()
	return nil
}

// ApproveArguments - arguments for Token.Approve
//
// an empty spender approves the pool account
type ApproveArguments struct {
	Credential string `json:"credential"`
	Contract   string `json:"contract"`
	TokenId    string `json:"tokenId"`
	Spender    string `json:"spender,omitempty"`
}

// ApproveReply - result of Token.Approve
type ApproveReply struct {
	Spender string `json:"spender"`
}

// Approve - allow the spender to take a token
func (t *Token) Approve(arguments *ApproveArguments, reply *ApproveReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	caller, err := t.Credentials.Caller(arguments.Credential)
	if nil != err {
		return err
	}

	t.Log.Infof("Token.Approve: caller: %s  contract: %s  token: %s  spender: %q", caller.Hex(), arguments.Contract, arguments.TokenId, arguments.Spender)
	id, err := nft.ParseIdentity(arguments.Contract, arguments.TokenId)
	if nil != err {
		return err
	}
	spender := t.Registry.PoolAccount()
	if "" != arguments.Spender {
		spender, err = nft.ParseAddress(arguments.Spender)
		if nil != err {
			return err
		}
	}

	err = t.Registry.Approve(caller, id, spender)
	if nil != err {
		return err
	}
	reply.Spender = spender.Hex()
	return nil
}

// OwnerArguments - arguments for Token.Owner
type OwnerArguments struct {
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId"`
}

// OwnerReply - who holds, may take and may use a token
type OwnerReply struct {
	Owner       string `json:"owner"`
	Approved    string `json:"approved"`
	User        string `json:"user"`
	MetadataURI string `json:"metadataURI,omitempty"`
}

// Owner - the custody state of a token
func (t *Token) Owner(arguments *OwnerArguments, reply *OwnerReply) (err error) {
	defer fault.Report(&err)

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	id, err := nft.ParseIdentity(arguments.Contract, arguments.TokenId)
	if nil != err {
		return err
	}

	owner, err := t.Registry.OwnerOf(id)
	if nil != err {
		return err
	}
	approved, err := t.Registry.Approved(id)
	if nil != err {
		return err
	}

	reply.Owner = owner.Hex()
	reply.Approved = approved.Hex()
	reply.User = t.Registry.UserOf(id, t.Counter.Height()).Hex()
	reply.MetadataURI, _ = t.Registry.MetadataURI(id)
	return nil
}
