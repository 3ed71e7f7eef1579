// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned value shared between goroutines
type Counter uint64

// Increment - add 1 and return the new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 and return the new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - true if the value is zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Acquire - take one slot if fewer than limit are in use
//
// a successful Acquire must be paired with Release
func (ic *Counter) Acquire(limit uint64) bool {
	if ic.Increment() <= limit {
		return true
	}
	ic.Decrement()
	return false
}

// Release - return a slot taken by Acquire
func (ic *Counter) Release() {
	ic.Decrement()
}
