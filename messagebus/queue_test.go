// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftpoold/messagebus"
)

var commands = []string{"listed", "rented", "withdrawn"}

func TestQueue(t *testing.T) {

	q := messagebus.NewQueue(10)

	for _, c := range commands {
		q.Send(c, []byte(c+"-data"))
	}

	queue := q.Chan()
	for _, c := range commands {
		received := <-queue
		if received.Command != c {
			t.Errorf("actual: %q  expected: %q", received.Command, c)
		}
		assert.Equal(t, [][]byte{[]byte(c + "-data")}, received.Parameters, "parameters")
	}

	q.Release()
	q.Send("after release")
	_, ok := <-queue
	assert.False(t, ok, "queue not closed")
}

func TestQueueFull(t *testing.T) {

	q := messagebus.NewQueue(2)
	q.Send("one")
	q.Send("two")
	q.Send("three")

	assert.Equal(t, uint64(1), q.Dropped(), "dropped")
	assert.Equal(t, "one", (<-q.Chan()).Command, "first")
	assert.Equal(t, "two", (<-q.Chan()).Command, "second")
}

func TestBroadcast(t *testing.T) {

	b := messagebus.NewBroadcastQueue()

	// nothing listening so these messages should be dropped
	for _, c := range commands {
		b.Send("ignored:" + c)
	}

	// create some listeners
	const listeners = 5

	var l [listeners]int
	var wg sync.WaitGroup

	queues := make([]<-chan messagebus.Message, listeners)
	for i := 0; i < listeners; i += 1 {
		queues[i] = b.Chan(0)
	}
	assert.Equal(t, listeners, b.Subscribers(), "subscribers")

	for i := 0; i < listeners; i += 1 {
		wg.Add(1)
		go func(n int, queue <-chan messagebus.Message) {
			for _, c := range commands {
				received := <-queue
				if received.Command != c {
					t.Errorf("actual: %q  expected: %q", received.Command, c)
				} else {
					l[n] += 1
				}
			}
			wg.Done()
		}(i, queues[i])
	}

	// all listening so these messages should be received
	for _, c := range commands {
		b.Send(c)
	}

	wg.Wait()
	for i, n := range l {
		if n != len(commands) {
			t.Errorf("listener[%d] received: %d  expected: %d", i, n, len(commands))
		}
	}

	b.Release(queues[0])
	_, ok := <-queues[0]
	assert.False(t, ok, "released queue not closed")
	assert.Equal(t, listeners-1, b.Subscribers(), "subscribers after release")

	b.Close()
	for _, q := range queues[1:] {
		_, ok := <-q
		assert.False(t, ok, "queue not closed by close")
	}
	b.Send("after close")
}

func TestBroadcastSlowSubscriber(t *testing.T) {

	b := messagebus.NewBroadcastQueue()
	slow := b.Chan(1)

	b.Send("one")
	b.Send("two")

	assert.Equal(t, uint64(1), b.Dropped(), "dropped")
	assert.Equal(t, "one", (<-slow).Command, "kept")
}
