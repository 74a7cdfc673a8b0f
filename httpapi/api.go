// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package httpapi

import (
	"net"
	"net/http"
	"net/rpc"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/counter"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/messagebus"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/rpc/node"
)

// Options - what the gateway serves
type Options struct {
	Pool        pool.Operations
	Metadata    *custody.Metadata
	Server      *rpc.Server
	Count       *counter.Counter
	Events      *messagebus.BroadcastQueue
	Credentials *credential.Issuer
	Allow       map[string][]*net.IPNet
	Version     string
}

// API - the gateway handlers
type API struct {
	log         *logger.L
	pool        pool.Operations
	metadata    *custody.Metadata
	server      *rpc.Server
	count       *counter.Counter
	events      *messagebus.BroadcastQueue
	credentials *credential.Issuer
	allow       map[string][]*net.IPNet
	node        *node.Node
}

// New - create the gateway
func New(log *logger.L, options Options) *API {
	count := options.Count
	if nil == count {
		count = new(counter.Counter)
	}
	return &API{
		log:         log,
		pool:        options.Pool,
		metadata:    options.Metadata,
		server:      options.Server,
		count:       count,
		events:      options.Events,
		credentials: options.Credentials,
		allow:       options.Allow,
		node:        node.New(log, time.Now(), options.Version, count, options.Pool),
	}
}

// Handler - the routes
func (a *API) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), a.accessLog())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody("NotFound", "not found"))
	})

	p := r.Group("/pool")
	p.POST("/rpc", a.rpc)
	p.GET("/details", a.details)

	v1 := r.Group("/v1")
	v1.GET("/listings", a.listings)
	v1.GET("/listings/:contract/:token", a.listing)
	v1.GET("/listings/:contract/:token/quote", a.quote)
	v1.GET("/owners/:address/listings", a.owned)
	v1.GET("/earnings/:address", a.earnings)
	v1.GET("/events", a.stream)

	protected := v1.Group("/")
	protected.Use(a.authenticate())
	{
		protected.POST("/listings", a.addListing)
		protected.PUT("/listings/:contract/:token", a.editListing)
		protected.DELETE("/listings/:contract/:token", a.removeListing)
		protected.POST("/listings/:contract/:token/rent", a.rentLong)
		protected.POST("/listings/:contract/:token/flash", a.rentFlash)
		protected.POST("/withdraw", a.withdraw)
	}

	return r
}

func (a *API) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		a.log.Debugf("%s %s  status: %d  from: %s  elapsed: %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), c.RemoteIP(), time.Since(start))
	}
}
