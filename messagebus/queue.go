// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"
)

// internal constants
const (
	queueSize     = 1000
	testQueueSize = 50
)

// Message - a command with its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - fixed size queue that never blocks the sender
type Queue struct {
	dropped uint64 // first for 64 bit alignment
	c       chan Message
}

type busses struct {
	Events    *Queue
	TestQueue *Queue
}

// Bus - all available message queues
var Bus = busses{
	Events:    newQueue(queueSize),
	TestQueue: newQueue(testQueueSize),
}

func newQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message
//
// returns false and discards the message if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	select {
	case queue.c <- m:
		return true
	default:
		atomic.AddUint64(&queue.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded since start
func (queue *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
