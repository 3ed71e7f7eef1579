// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/counter"
)

func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}
	assert.Equal(t, uint64(5), c1.Uint64(), "after increment")

	c1.Decrement()
	assert.Equal(t, uint64(4), c1.Uint64(), "after decrement")

	for i := 0; i < 4; i += 1 {
		c1.Decrement()
	}
	assert.True(t, c1.IsZero(), "did not return to zero")

	// twos complement -1
	c1.Decrement()
	assert.Equal(t, ^uint64(0), c1.Uint64(), "did not underflow")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first")
	assert.True(t, c.Acquire(2), "second")
	assert.False(t, c.Acquire(2), "over limit")
	assert.Equal(t, uint64(2), c.Uint64(), "failed acquire kept a slot")

	c.Release()
	assert.True(t, c.Acquire(2), "after release")
}

func TestAcquireConcurrent(t *testing.T) {
	var c counter.Counter
	var granted counter.Counter

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(10) {
				granted.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10), granted.Uint64(), "granted")
	assert.Equal(t, uint64(10), c.Uint64(), "in use")
}
