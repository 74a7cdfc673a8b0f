// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/wei"
)

const (
	defaultCount = 10
	maximumCount = 100
)

type termsRequest struct {
	FlashFee      wei.Amount `json:"flashFee"`
	PricePerBlock wei.Amount `json:"pricePerBlock"`
	MaxBlocks     uint64     `json:"maxBlocks"`
}

func (t termsRequest) terms() listing.Terms {
	return listing.Terms{
		FlashFee:      t.FlashFee,
		PricePerBlock: t.PricePerBlock,
		MaxBlocks:     t.MaxBlocks,
	}
}

type addRequest struct {
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId"`
	termsRequest
}

type rentRequest struct {
	Blocks  uint64     `json:"blocks"`
	Payment wei.Amount `json:"payment"`
}

type listingIdReply struct {
	ListingId nft.ListingId `json:"listingId"`
}

type pageReply struct {
	Listings []pool.Summary `json:"listings"`
	Next     *cursor        `json:"next,omitempty"`
}

type cursor struct {
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId"`
}

// bind a JSON body, any decode failure is an invalid argument
func (a *API) bind(c *gin.Context, request interface{}) bool {
	if err := c.ShouldBindJSON(request); nil != err {
		a.log.Debugf("bad request body: %s", err)
		a.fail(c, fault.Wrap(fault.MissingParameters, err))
		return false
	}
	return true
}

func (a *API) identity(c *gin.Context) (nft.Identity, bool) {
	id, err := nft.ParseIdentity(c.Param("contract"), c.Param("token"))
	if nil != err {
		a.fail(c, err)
		return nft.Identity{}, false
	}
	return id, true
}

func (a *API) listings(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultCount)))
	if nil != err || count <= 0 || count > maximumCount {
		a.fail(c, fault.InvalidCount)
		return
	}

	var start *nft.Identity
	if contract := c.Query("start_contract"); "" != contract {
		id, err := nft.ParseIdentity(contract, c.Query("start_token"))
		if nil != err {
			a.fail(c, fault.InvalidCursor)
			return
		}
		start = &id
	}

	records, next, err := a.pool.Page(start, count)
	if nil != err {
		a.fail(c, err)
		return
	}

	reply := pageReply{
		Listings: pool.SummariseAll(records, a.pool.Height(), a.metadata),
	}
	if nil != next {
		reply.Next = &cursor{
			Contract: next.Contract.Hex(),
			TokenId:  next.TokenId.Dec(),
		}
	}
	c.JSON(http.StatusOK, reply)
}

func (a *API) listing(c *gin.Context) {
	id, ok := a.identity(c)
	if !ok {
		return
	}
	record, found := a.pool.Get(id)
	if !found {
		a.fail(c, fault.NotFound)
		return
	}
	c.JSON(http.StatusOK, pool.Summarise(record, a.pool.Height(), a.metadata))
}

func (a *API) quote(c *gin.Context) {
	id, ok := a.identity(c)
	if !ok {
		return
	}
	blocks, err := strconv.ParseUint(c.Query("blocks"), 10, 64)
	if nil != err {
		a.fail(c, fault.InvalidDuration)
		return
	}
	cost, err := a.pool.Quote(id, blocks)
	if nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cost": cost})
}

func (a *API) owned(c *gin.Context) {
	owner, err := nft.ParseAddress(c.Param("address"))
	if nil != err {
		a.fail(c, err)
		return
	}
	records, err := a.pool.Owned(owner)
	if nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"listings": pool.SummariseAll(records, a.pool.Height(), a.metadata),
	})
}

func (a *API) addListing(c *gin.Context) {
	var request addRequest
	if !a.bind(c, &request) {
		return
	}
	id, err := nft.ParseIdentity(request.Contract, request.TokenId)
	if nil != err {
		a.fail(c, err)
		return
	}

	listingId, err := a.pool.AddListing(callerOf(c), id, request.terms())
	if nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, listingIdReply{ListingId: listingId})
}

func (a *API) editListing(c *gin.Context) {
	id, ok := a.identity(c)
	if !ok {
		return
	}
	var request termsRequest
	if !a.bind(c, &request) {
		return
	}

	if err := a.pool.EditListing(callerOf(c), id, request.terms()); nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listingIdReply{ListingId: id.ListingId()})
}

func (a *API) removeListing(c *gin.Context) {
	id, ok := a.identity(c)
	if !ok {
		return
	}
	if err := a.pool.RemoveListing(callerOf(c), id); nil != err {
		a.fail(c, err)
		return
	}
	if nil != a.metadata {
		a.metadata.Forget(id)
	}
	c.JSON(http.StatusOK, listingIdReply{ListingId: id.ListingId()})
}

func (a *API) rentLong(c *gin.Context) {
	a.rent(c, false)
}

func (a *API) rentFlash(c *gin.Context) {
	a.rent(c, true)
}

func (a *API) rent(c *gin.Context, flash bool) {
	id, ok := a.identity(c)
	if !ok {
		return
	}
	var request rentRequest
	if !a.bind(c, &request) {
		return
	}

	var receipt *pool.RentReceipt
	var err error
	if flash {
		receipt, err = a.pool.RentFlash(callerOf(c), id, request.Payment)
	} else {
		receipt, err = a.pool.RentLong(callerOf(c), id, request.Blocks, request.Payment)
	}
	if nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}
