// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: [][]byte{{0x01}},
		},
		{
			Command:    "c2",
			Parameters: nil,
		},
		{
			Command:    "c3",
			Parameters: [][]byte{{0x03}, {0x04, 0x05}},
		},
	}

	for _, item := range items {
		ok := messagebus.Bus.TestQueue.Send(item.Command, item.Parameters...)
		assert.True(t, ok, "send: %s", item.Command)
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item.Command, received.Command, "command")
		assert.Equal(t, len(item.Parameters), len(received.Parameters), "parameter count")
		for i := range item.Parameters {
			assert.Equal(t, item.Parameters[i], received.Parameters[i], "parameter: %d", i)
		}
	}
}

func TestFullQueueDrops(t *testing.T) {
	q := messagebus.Bus.TestQueue
	before := q.Dropped()

	sent := 0
	for i := 0; i < 60; i += 1 {
		if q.Send("fill") {
			sent += 1
		}
	}
	assert.Equal(t, 50, sent, "queue capacity")
	assert.Equal(t, before+10, q.Dropped(), "dropped count")

	// drain for other tests
	for i := 0; i < sent; i += 1 {
		<-q.Chan()
	}
}
