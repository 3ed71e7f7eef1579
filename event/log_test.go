// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/storage"
)

func appendOne(t *testing.T, e *event.Event, commit bool) event.Receipt {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	r, err := event.Append(trx, e)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}
	if commit {
		err = trx.Commit()
		if nil != err {
			t.Fatalf("commit error: %s", err)
		}
	} else {
		trx.Abort()
	}
	return r
}

func TestAppendAndFetch(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Equal(t, uint64(0), event.Count(), "empty log")

	issuerId := makeId(0x10)
	e1 := event.New(issuerId, &event.IssuerInitialized{SharesAuthorized: 100})
	e2 := event.New(issuerId, &event.StakeholderCreated{Id: makeId(0x20)})
	e3 := event.New(issuerId, &event.WarrantIssued{StakeholderId: makeId(0x20), SecurityId: makeId(0x30), Quantity: 7})

	r1 := appendOne(t, e1, true)
	assert.Equal(t, uint64(1), r1.Sequence, "first sequence")

	aborted := appendOne(t, e2, false)
	assert.Equal(t, uint64(2), aborted.Sequence, "aborted sequence")
	assert.Equal(t, uint64(1), event.Count(), "abort changed the count")

	r2 := appendOne(t, e2, true)
	assert.Equal(t, uint64(2), r2.Sequence, "aborted sequence must be reused")
	assert.Equal(t, aborted.TxId, r2.TxId, "same event same digest")

	r3 := appendOne(t, e3, true)
	assert.Equal(t, uint64(3), r3.Sequence, "third sequence")
	assert.Equal(t, uint64(3), event.Count(), "count")

	records, err := event.Fetch(2, 10)
	assert.Nil(t, err, "fetch")
	if assert.Equal(t, 2, len(records), "fetched") {
		assert.Equal(t, uint64(2), records[0].Sequence, "first fetched")
		assert.Equal(t, r2.TxId, records[0].TxId, "first digest")
		assert.Equal(t, e2, records[0].Event, "first event")
		assert.Equal(t, uint64(3), records[1].Sequence, "second fetched")
		assert.Equal(t, e3, records[1].Event, "second event")
	}

	records, err = event.Fetch(0, 1)
	assert.Nil(t, err, "fetch from zero")
	if assert.Equal(t, 1, len(records), "fetched") {
		assert.Equal(t, r1, event.Receipt{Sequence: records[0].Sequence, TxId: records[0].TxId}, "receipt matches record")
	}

	records, err = event.Fetch(4, 10)
	assert.Nil(t, err, "fetch past end")
	assert.Equal(t, 0, len(records), "past end")

	_, err = event.Fetch(1, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}
