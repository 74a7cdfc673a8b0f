// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/bitmark-inc/nftpoold/fault"
)

const (
	subscriberQueueSize = 100
	pingInterval        = 30 * time.Second
	writeTimeout        = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// stream published events, optionally only the kinds listed in the
// comma separated kind query parameter
func (a *API) stream(c *gin.Context) {
	if nil == a.events {
		a.fail(c, fault.NotInitialised)
		return
	}

	kinds := make(map[string]struct{})
	for _, k := range strings.Split(c.Query("kind"), ",") {
		if k = strings.TrimSpace(k); "" != k {
			kinds[k] = struct{}{}
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if nil != err {
		a.log.Warnf("websocket upgrade error: %s", err)
		return
	}
	defer conn.Close()

	queue := a.events.Chan(subscriberQueueSize)
	defer a.events.Release(queue)

	a.log.Infof("event subscriber: %s", c.RemoteIP())

	// the reader only notices the client going away
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); nil != err {
				return
			}
		}
	}()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-gone:
			return

		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); nil != err {
				return
			}

		case m, ok := <-queue:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"))
				return
			}
			if _, wanted := kinds[m.Command]; 0 != len(kinds) && !wanted {
				continue
			}
			if 1 != len(m.Parameters) {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, m.Parameters[0]); nil != err {
				return
			}
		}
	}
}
