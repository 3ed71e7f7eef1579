// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/fixtures"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/rpc/issuer"
	"github.com/bitmark-inc/captabled/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func writable() bool { return false }
func readOnly() bool { return true }

func TestInitialize(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ct := mocks.NewMockCapTable(ctl)
	i := issuer.New(logger.New(fixtures.LogCategory), ct, writable)

	arguments := issuer.InitializeArguments{
		Caller:           authority.Principal{1, 2, 3},
		Id:               identifier.New(),
		SharesAuthorized: 1000,
	}
	receipt := event.Receipt{Sequence: 7, TxId: event.TxId{9}}

	ct.EXPECT().InitializeIssuer(arguments.Caller, arguments.Id, uint64(1000)).Return(receipt, nil).Times(1)

	var reply event.Receipt
	err := i.Initialize(&arguments, &reply)
	assert.Nil(t, err, "initialize")
	assert.Equal(t, receipt, reply, "receipt")
}

func TestInitializeError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ct := mocks.NewMockCapTable(ctl)
	i := issuer.New(logger.New(fixtures.LogCategory), ct, writable)

	arguments := issuer.InitializeArguments{Caller: authority.Principal{5}, Id: identifier.New(), SharesAuthorized: 1}
	ct.EXPECT().InitializeIssuer(arguments.Caller, arguments.Id, uint64(1)).Return(event.Receipt{}, fault.AlreadyInitialized).Times(1)

	var reply event.Receipt
	err := i.Initialize(&arguments, &reply)
	assert.Equal(t, fault.AlreadyInitialized, err, "error passed through")
}

func TestReadOnly(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ct := mocks.NewMockCapTable(ctl)
	i := issuer.New(logger.New(fixtures.LogCategory), ct, readOnly)

	var reply event.Receipt
	err := i.Initialize(&issuer.InitializeArguments{}, &reply)
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "initialize")

	err = i.AdjustAuthorizedShares(&issuer.AdjustArguments{}, &reply)
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "adjust")
}

func TestAdjustAuthorizedShares(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ct := mocks.NewMockCapTable(ctl)
	i := issuer.New(logger.New(fixtures.LogCategory), ct, writable)

	arguments := issuer.AdjustArguments{
		Caller:           authority.Principal{4},
		Id:               identifier.New(),
		SharesAuthorized: 50,
	}
	ct.EXPECT().AdjustAuthorizedShares(arguments.Caller, arguments.Id, uint64(50)).Return(event.Receipt{Sequence: 2}, nil).Times(1)

	var reply event.Receipt
	err := i.AdjustAuthorizedShares(&arguments, &reply)
	assert.Nil(t, err, "adjust")
	assert.Equal(t, uint64(2), reply.Sequence, "sequence")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ct := mocks.NewMockCapTable(ctl)
	i := issuer.New(logger.New(fixtures.LogCategory), ct, readOnly)

	id := identifier.New()
	expected := &record.Issuer{Id: id, SharesIssued: 3, SharesAuthorized: 10}
	principal := authority.Principal{7}

	ct.EXPECT().Issuer(id).Return(expected, nil).Times(1)
	ct.EXPECT().Authority(id).Return(principal, nil).Times(1)

	var reply issuer.GetReply
	err := i.Get(&issuer.GetArguments{Id: id}, &reply)
	assert.Nil(t, err, "get")
	assert.Equal(t, expected, reply.Issuer, "issuer")
	assert.Equal(t, principal, reply.Authority, "authority")

	missing := identifier.New()
	ct.EXPECT().Issuer(missing).Return(nil, fault.IssuerNotFound).Times(1)
	err = i.Get(&issuer.GetArguments{Id: missing}, &reply)
	assert.Equal(t, fault.IssuerNotFound, err, "missing")
}

func TestMissingCaller(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ct := mocks.NewMockCapTable(ctl)
	i := issuer.New(logger.New(fixtures.LogCategory), ct, writable)

	var initialize issuer.InitializeArguments
	err := json.Unmarshal([]byte(`{"id":"`+identifier.New().String()+`","sharesAuthorized":"1000"}`), &initialize)
	assert.Nil(t, err, "decode arguments")

	var reply event.Receipt
	err = i.Initialize(&initialize, &reply)
	assert.Equal(t, fault.MissingCaller, err, "initialize")

	err = i.AdjustAuthorizedShares(&issuer.AdjustArguments{Id: initialize.Id, SharesAuthorized: 5}, &reply)
	assert.Equal(t, fault.MissingCaller, err, "adjust")
}
