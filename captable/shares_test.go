// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/record"
)

func TestAddIssued(t *testing.T) {
	tests := []struct {
		issued     uint64
		authorized uint64
		quantity   uint64
		total      uint64
		err        error
	}{
		{0, 10, 10, 10, nil},
		{5, 10, 5, 10, nil},
		{5, 10, 6, 0, fault.InsufficientShares},
		{0, 0, 0, 0, nil},
		{1, math.MaxUint64, math.MaxUint64, 0, fault.InsufficientShares},
		{math.MaxUint64 - 1, math.MaxUint64, 1, math.MaxUint64, nil},
	}
	for i, test := range tests {
		total, err := addIssued(test.issued, test.authorized, test.quantity)
		assert.Equal(t, test.err, err, "%d: error", i)
		assert.Equal(t, test.total, total, "%d: total", i)
	}
}

func TestIssueSharesIsAllOrNothing(t *testing.T) {
	class := &record.StockClass{SharesIssued: 10, SharesAuthorized: 100}
	issuer := &record.Issuer{SharesIssued: 90, SharesAuthorized: 95}

	err := issueShares(class, issuer, 6)
	assert.Equal(t, fault.InsufficientShares, err, "issuer limit")
	assert.Equal(t, uint64(10), class.SharesIssued, "class changed on failure")
	assert.Equal(t, uint64(90), issuer.SharesIssued, "issuer changed on failure")

	err = issueShares(class, issuer, 5)
	assert.Nil(t, err, "fits both")
	assert.Equal(t, uint64(15), class.SharesIssued, "class")
	assert.Equal(t, uint64(95), issuer.SharesIssued, "issuer")
}

func TestRelease(t *testing.T) {
	remaining, err := release(50, 50)
	assert.Nil(t, err, "exact")
	assert.Equal(t, uint64(0), remaining, "remaining")

	_, err = release(0, 1)
	assert.Equal(t, fault.InsufficientShares, err, "underflow")
}
