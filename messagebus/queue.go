// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/nftpoold/counter"
)

// default queue sizes
const (
	queueSize     = 1000
	broadcastSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - single reader queue
type Queue struct {
	sync.Mutex
	c       chan Message
	closed  bool
	dropped counter.Counter
}

// NewQueue - queue holding up to size messages
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = queueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, dropped if the queue is full or released
func (q *Queue) Send(command string, parameters ...[]byte) {
	q.Lock()
	defer q.Unlock()

	if q.closed {
		return
	}
	select {
	case q.c <- Message{Command: command, Parameters: parameters}:
	default:
		q.dropped.Increment()
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Release - close the queue, the reader sees a closed channel
func (q *Queue) Release() {
	q.Lock()
	defer q.Unlock()

	if !q.closed {
		q.closed = true
		close(q.c)
	}
}

// Dropped - number of messages that could not be queued
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
