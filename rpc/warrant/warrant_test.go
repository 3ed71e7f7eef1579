// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package warrant_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/fixtures"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/rpc/mocks"
	"github.com/bitmark-inc/captabled/rpc/warrant"
	"github.com/bitmark-inc/logger"
)

func TestIssueAndGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ct := mocks.NewMockCapTable(ctl)
	w := warrant.New(logger.New(fixtures.LogCategory), ct, func() bool { return false })

	arguments := warrant.IssueArguments{
		Caller:        authority.Principal{9},
		SecurityId:    identifier.New(),
		Quantity:      3,
		StakeholderId: identifier.New(),
	}
	ct.EXPECT().IssueWarrant(arguments.Caller, arguments.SecurityId, uint64(3), arguments.StakeholderId).Return(event.Receipt{Sequence: 6}, nil).Times(1)

	var reply event.Receipt
	err := w.Issue(&arguments, &reply)
	assert.Nil(t, err, "issue")
	assert.Equal(t, uint64(6), reply.Sequence, "sequence")

	key := record.PositionKey{StakeholderId: arguments.StakeholderId, SecurityId: arguments.SecurityId}
	expected := &record.WarrantPosition{StakeholderId: key.StakeholderId, SecurityId: key.SecurityId, Quantity: 3}
	ct.EXPECT().WarrantPosition(key).Return(expected, nil).Times(1)

	var position record.WarrantPosition
	err = w.Get(&key, &position)
	assert.Nil(t, err, "get")
	assert.Equal(t, *expected, position, "position")

	w.ReadOnly = func() bool { return true }
	err = w.Issue(&arguments, &reply)
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "read only")
}
