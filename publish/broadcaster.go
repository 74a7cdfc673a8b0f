// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/nftpoold/messagebus"
)

// Run - wait for events and publish them until shutdown
func (brdc *Broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  data: %s", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
			brdc.sent += 1
		}
	}

	brdc.events.Release(brdc.queue)
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Infof("stopped after: %d events", brdc.sent)
}

// send one event as a multipart message
//
// a PUB socket never blocks, a failed send only loses this event
func (brdc *Broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	more := zmq.SNDMORE
	if 0 == len(item.Parameters) {
		more = 0
	}
	_, err := socket.Send(item.Command, more|zmq.DONTWAIT)
	if nil != err {
		brdc.log.Errorf("send: %s  error: %s", item.Command, err)
		return
	}
	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		if _, err = socket.SendBytes(p, flags); nil != err {
			brdc.log.Errorf("send: %s  part: %d  error: %s", item.Command, i, err)
			return
		}
	}
}
