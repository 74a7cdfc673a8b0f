// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package httpapi

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/nftpoold/fault"
)

const (
	callerKey    = "caller"
	bearerPrefix = "Bearer "
)

// the caller address is the subject of the bearer credential
func (a *API) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			a.fail(c, fault.Unauthorised)
			return
		}

		caller, err := a.credentials.Caller(strings.TrimPrefix(header, bearerPrefix))
		if nil != err {
			a.log.Debugf("credential rejected: %s  from: %s", err, c.ClientIP())
			a.fail(c, err)
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

func callerOf(c *gin.Context) common.Address {
	return c.MustGet(callerKey).(common.Address)
}
