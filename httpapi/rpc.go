// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package httpapi

import (
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/rpc/node"
)

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// performs a call to any normal RPC
func (a *API) rpc(c *gin.Context) {
	if nil == a.server {
		a.fail(c, fault.NotInitialised)
		return
	}

	a.count.Increment()
	defer a.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: c.Request.Body, out: c.Writer})
	c.Header("Content-Type", "application/json")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Status(http.StatusOK)
	err := a.server.ServeRequest(serverCodec)
	if nil != err {
		a.log.Warnf("rpc bridge error: %s", err)
	}
}

// to allow a GET for the same response as the Node.Info RPC
func (a *API) details(c *gin.Context) {
	if !a.allowed("details", c.RemoteIP()) {
		a.log.Warnf("Deny access: %q", c.Request.RemoteAddr)
		a.fail(c, fault.Unauthorised)
		return
	}

	a.count.Increment()
	defer a.count.Decrement()

	var reply node.InfoReply
	if err := a.node.Info(&node.InfoArguments{}, &reply); nil != err {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (a *API) allowed(path string, remote string) bool {
	ip := net.ParseIP(remote)
	if nil == ip {
		return false
	}
	for _, cidr := range a.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}
