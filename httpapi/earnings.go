// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/nftpoold/nft"
)

func (a *API) earnings(c *gin.Context) {
	owner, err := nft.ParseAddress(c.Param("address"))
	if nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"owner":   owner.Hex(),
		"balance": a.pool.Earnings(owner),
	})
}

func (a *API) withdraw(c *gin.Context) {
	amount, err := a.pool.Withdraw(callerOf(c))
	if nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amount})
}
