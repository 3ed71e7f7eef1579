// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/storage"
)

// key in the count pool holding the last sequence used
var countKey = []byte("events")

// Receipt - where a committed event landed
type Receipt struct {
	Sequence uint64 `json:"sequence,string"`
	TxId     TxId   `json:"txId"`
}

// Record - an event read back from the log
type Record struct {
	Sequence uint64 `json:"sequence,string"`
	TxId     TxId   `json:"txId"`
	Packed   Packed `json:"-"`
	Event    *Event `json:"event"`
}

// Append - add an event inside the caller's transaction
//
// sequences start at 1 and have no gaps; an aborted transaction
// releases its sequence number
func Append(trx storage.Transaction, e *Event) (Receipt, error) {
	packed, err := e.Pack()
	if nil != err {
		return Receipt{}, err
	}

	last, _ := trx.GetN(storage.Pool.EventCount, countKey)
	sequence := last + 1

	err = trx.Create(storage.Pool.Events, sequenceKey(sequence), packed)
	if nil != err {
		return Receipt{}, err
	}
	trx.PutN(storage.Pool.EventCount, countKey, sequence)

	r := Receipt{
		Sequence: sequence,
		TxId:     packed.TxId(),
	}
	return r, nil
}

// Count - the last committed sequence, zero for an empty log
func Count() uint64 {
	n, _ := storage.Pool.EventCount.GetN(countKey)
	return n
}

// Fetch - committed events starting at a sequence
func Fetch(start uint64, count int) ([]Record, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	cursor := storage.Pool.Events.NewFetchCursor().Seek(sequenceKey(start))
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		packed := Packed(item.Value)
		e, _, err := packed.Unpack()
		if nil != err {
			return nil, err
		}
		records = append(records, Record{
			Sequence: binary.BigEndian.Uint64(item.Key),
			TxId:     packed.TxId(),
			Packed:   packed,
			Event:    e,
		})
	}
	return records, nil
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}
