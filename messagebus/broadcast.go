// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/nftpoold/counter"
)

// BroadcastQueue - every subscriber receives each message
type BroadcastQueue struct {
	sync.RWMutex
	subscribers map[<-chan Message]chan Message
	closed      bool
	dropped     counter.Counter
}

// NewBroadcastQueue - create an empty broadcaster
func NewBroadcastQueue() *BroadcastQueue {
	return &BroadcastQueue{
		subscribers: make(map[<-chan Message]chan Message),
	}
}

// Send - copy a message to all subscribers
//
// messages sent while nobody is listening are discarded
func (b *BroadcastQueue) Send(command string, parameters ...[]byte) {
	b.RLock()
	defer b.RUnlock()

	if b.closed {
		return
	}

	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	for _, c := range b.subscribers {
		select {
		case c <- m:
		default:
			b.dropped.Increment()
		}
	}
}

// Chan - subscribe, size zero selects the default size
func (b *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = broadcastSize
	}
	c := make(chan Message, size)

	b.Lock()
	defer b.Unlock()

	if b.closed {
		close(c)
		return c
	}
	b.subscribers[c] = c
	return c
}

// Release - unsubscribe and close the channel
func (b *BroadcastQueue) Release(c <-chan Message) {
	b.Lock()
	defer b.Unlock()

	if s, ok := b.subscribers[c]; ok {
		delete(b.subscribers, c)
		close(s)
	}
}

// Subscribers - current number of subscribers
func (b *BroadcastQueue) Subscribers() int {
	b.RLock()
	defer b.RUnlock()
	return len(b.subscribers)
}

// Dropped - deliveries skipped because a subscriber was full
func (b *BroadcastQueue) Dropped() uint64 {
	return b.dropped.Uint64()
}

// Close - release every subscriber, later sends are ignored
func (b *BroadcastQueue) Close() {
	b.Lock()
	defer b.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for k, s := range b.subscribers {
		delete(b.subscribers, k)
		close(s)
	}
}
