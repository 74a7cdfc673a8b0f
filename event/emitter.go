// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/messagebus"
)

// Emitter - destination for committed events
type Emitter interface {
	Emit(kind string, block uint64, payload interface{})
}

// Bus - emitter writing json encoded events to a broadcast queue
type Bus struct {
	log   *logger.L
	queue *messagebus.BroadcastQueue
}

// NewBus - emitter onto queue
func NewBus(log *logger.L, queue *messagebus.BroadcastQueue) *Bus {
	return &Bus{
		log:   log,
		queue: queue,
	}
}

// Emit - send an event to every subscriber
//
// the message command is the kind and its single parameter the json
func (b *Bus) Emit(kind string, block uint64, payload interface{}) {
	e, err := New(kind, block, payload)
	if nil != err {
		b.log.Errorf("event: %s  encode error: %s", kind, err)
		return
	}
	data, err := json.Marshal(e)
	if nil != err {
		b.log.Errorf("event: %s  marshal error: %s", kind, err)
		return
	}
	b.log.Debugf("event: %s  block: %d  id: %s", kind, block, e.Id)
	b.queue.Send(kind, data)
}

// Discard - emitter that drops everything
type Discard struct{}

// Emit - do nothing
func (Discard) Emit(string, uint64, interface{}) {}
