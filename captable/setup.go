// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/messagebus"
	"github.com/bitmark-inc/captabled/storage"
	"github.com/bitmark-inc/logger"
)

// globals
type globalDataType struct {
	sync.Mutex
	log         *logger.L
	initialised bool
}

var globalData globalDataType

// the single implementation
var table ledger

// Initialise - prepare the state machine
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("captable")
	if nil == globalData.log {
		return fault.InvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - stop accepting operations
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// Get - the cap table
func Get() CapTable {
	return &table
}

// an operation body: validate and mutate inside trx, return the event
type operation func(trx storage.Transaction) (*event.Event, error)

// run one operation as an atomic unit
func execute(name string, op operation) (event.Receipt, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return event.Receipt{}, fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return event.Receipt{}, err
	}

	e, err := op(trx)
	if nil != err {
		trx.Abort()
		globalData.log.Debugf("%s: rejected: %s", name, err)
		return event.Receipt{}, err
	}

	receipt, err := event.Append(trx, e)
	if nil != err {
		trx.Abort()
		globalData.log.Errorf("%s: append event error: %s", name, err)
		return event.Receipt{}, err
	}

	err = trx.Commit()
	if nil != err {
		globalData.log.Criticalf("%s: commit error: %s", name, err)
		return event.Receipt{}, err
	}

	globalData.log.Infof("%s: sequence: %d  txId: %s", name, receipt.Sequence, receipt.TxId)

	notify(e, receipt)

	return receipt, nil
}

// pass a committed event to the publisher
func notify(e *event.Event, receipt event.Receipt) {
	packed, err := e.Pack()
	if nil != err {
		return
	}
	sequence := make([]byte, 8)
	binary.BigEndian.PutUint64(sequence, receipt.Sequence)

	if !messagebus.Bus.Events.Send("event", packed, sequence) {
		globalData.log.Warnf("event queue full, not published: sequence: %d", receipt.Sequence)
	}
}
