// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "%d: within burst", i)
	}
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 50, 100), "valid count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 100), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 101, 100), "over maximum")
}

func TestLimitNOverBurst(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 20, 100), "request larger than burst")
}
