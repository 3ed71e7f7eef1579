// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/util"
)

// limits for decoding
const (
	maxPayloadLength = 8192
	maxStringLength  = 1024
	maxListLength    = 1024
)

// Packed - an event in its envelope
//
//	Varint64(TxType) ++ issuer id ++ Varint64(len(payload)) ++ payload
type Packed []byte

// Event - one entry of the append-only log
type Event struct {
	IssuerId identifier.Identifier
	Payload  Payload
}

// New - wrap a payload for an issuer
func New(issuerId identifier.Identifier, payload Payload) *Event {
	return &Event{
		IssuerId: issuerId,
		Payload:  payload,
	}
}

// Type - kind of the event
func (e *Event) Type() TxType {
	if nil == e.Payload {
		return Invalid
	}
	return e.Payload.Type()
}

// Pack - the envelope
func (e *Event) Pack() (Packed, error) {
	if nil == e.Payload {
		return nil, fault.NotTransactionPack
	}

	payload := e.Payload.pack(nil)
	if len(payload) > maxPayloadLength {
		return nil, fault.NotTransactionPack
	}

	message := util.ToVarint64(uint64(e.Payload.Type()))
	message = append(message, e.IssuerId[:]...)
	message = appendUint64(message, uint64(len(payload)))
	return append(message, payload...), nil
}

// Type - kind of a packed event without a full decode
func (packed Packed) Type() TxType {
	t, n := util.FromVarint64(packed)
	if 0 == n {
		return Invalid
	}
	return TxType(t)
}

// Unpack - turn an envelope back into an event
//
// bytes after the known fields of a payload are ignored, this allows
// fields to be appended to a kind without breaking older readers
func (packed Packed) Unpack() (*Event, int, error) {
	t, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, 0, fault.NotTransactionPack
	}
	txType := TxType(t)
	if txType.IsReserved() {
		return nil, 0, fault.ReservedTransactionType
	}
	payload := newPayload(txType)
	if nil == payload {
		return nil, 0, fault.NotTransactionPack
	}

	if len(packed)-n < identifier.Length {
		return nil, 0, fault.NotTransactionPack
	}
	issuerId, _ := identifier.FromBytes(packed[n : n+identifier.Length])
	n += identifier.Length

	payloadLength, payloadOffset := util.ClippedVarint64(packed[n:], 1, maxPayloadLength)
	if 0 == payloadOffset {
		return nil, 0, fault.NotTransactionPack
	}
	n += payloadOffset
	if len(packed)-n < payloadLength {
		return nil, 0, fault.NotTransactionPack
	}

	d := &decoder{
		buffer: packed[n : n+payloadLength],
		ok:     true,
	}
	payload.unpack(d)
	if !d.ok {
		return nil, 0, fault.NotTransactionPack
	}

	e := &Event{
		IssuerId: issuerId,
		Payload:  payload,
	}
	return e, n + payloadLength, nil
}

// MarshalJSON - readable form for tooling
func (e Event) MarshalJSON() ([]byte, error) {
	item := struct {
		Type     string                `json:"type"`
		IssuerId identifier.Identifier `json:"issuerId"`
		Payload  Payload               `json:"payload"`
	}{
		Type:     e.Type().String(),
		IssuerId: e.IssuerId,
		Payload:  e.Payload,
	}
	return json.Marshal(item)
}

// UnmarshalJSON - restore an event from its readable form
func (e *Event) UnmarshalJSON(s []byte) error {
	item := struct {
		Type     string                `json:"type"`
		IssuerId identifier.Identifier `json:"issuerId"`
		Payload  json.RawMessage       `json:"payload"`
	}{}
	if err := json.Unmarshal(s, &item); nil != err {
		return err
	}
	t, ok := txTypeFromString(item.Type)
	if !ok {
		return fault.WrongRecordType
	}
	payload := newPayload(t)
	if nil == payload {
		return fault.ReservedTransactionType
	}
	if err := json.Unmarshal(item.Payload, payload); nil != err {
		return err
	}
	e.IssuerId = item.IssuerId
	e.Payload = payload
	return nil
}

// sequential reader over a payload, the first failure sticks
type decoder struct {
	buffer []byte
	n      int
	ok     bool
}

func (d *decoder) readUint64() uint64 {
	if !d.ok {
		return 0
	}
	value, count := util.FromVarint64(d.buffer[d.n:])
	if 0 == count {
		d.ok = false
		return 0
	}
	d.n += count
	return value
}

func (d *decoder) readIdentifier() identifier.Identifier {
	if !d.ok || len(d.buffer)-d.n < identifier.Length {
		d.ok = false
		return identifier.Zero
	}
	id, _ := identifier.FromBytes(d.buffer[d.n : d.n+identifier.Length])
	d.n += identifier.Length
	return id
}

func (d *decoder) readCount(maximum int) int {
	if !d.ok {
		return 0
	}
	value, count := util.FromVarint64(d.buffer[d.n:])
	if 0 == count || value > uint64(maximum) {
		d.ok = false
		return 0
	}
	d.n += count
	return int(value)
}

func (d *decoder) readString() string {
	l := d.readCount(maxStringLength)
	if !d.ok || len(d.buffer)-d.n < l {
		d.ok = false
		return ""
	}
	s := string(d.buffer[d.n : d.n+l])
	d.n += l
	return s
}

func appendUint64(buffer []byte, value uint64) []byte {
	return util.AppendVarint64(buffer, value)
}

func appendIdentifier(buffer []byte, id identifier.Identifier) []byte {
	return append(buffer, id[:]...)
}

func appendString(buffer []byte, s string) []byte {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}
