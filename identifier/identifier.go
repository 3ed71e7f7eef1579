// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - the 16 byte opaque identifiers used for every
// ledger entity and security
//
// the bytes are never interpreted; the text form is the canonical
// UUID rendering so that identifiers created by off-ledger systems
// round trip unchanged
package identifier

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/captabled/fault"
)

// Length - number of bytes in an identifier
const Length = 16

// Identifier - an opaque entity or security identifier
type Identifier [Length]byte

// Zero - the all-zero identifier, only used as a fill value
var Zero Identifier

// New - a fresh random identifier
func New() Identifier {
	return Identifier(uuid.New())
}

// FromBytes - copy an identifier out of a byte slice
func FromBytes(b []byte) (Identifier, error) {
	id := Identifier{}
	if Length != len(b) {
		return id, fault.InvalidIdentifier
	}
	copy(id[:], b)
	return id, nil
}

// FromString - parse the UUID text form (hyphens optional)
func FromString(s string) (Identifier, error) {
	u, err := uuid.Parse(s)
	if nil != err {
		return Identifier{}, fault.InvalidIdentifier
	}
	return Identifier(u), nil
}

// IsZero - true for the all-zero fill value
func (id Identifier) IsZero() bool {
	return Zero == id
}

// Bytes - slice over a copy of the identifier
func (id Identifier) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, id[:])
	return b
}

// String - canonical UUID text
func (id Identifier) String() string {
	return uuid.UUID(id).String()
}

// GoString - for %#v
func (id Identifier) GoString() string {
	return "<identifier:" + id.String() + ">"
}

// MarshalText - convert an identifier to its JSON form
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert an identifier from its JSON form
func (id *Identifier) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}
