// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/captabled/fault"
)

// TxIdLength - bytes in an event digest
const TxIdLength = 32

// TxId - SHA3-256 of a packed event
type TxId [TxIdLength]byte

// TxId - compute the digest of an envelope
func (packed Packed) TxId() TxId {
	return TxId(sha3.Sum256(packed))
}

// String - hex form
func (id TxId) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - convert a digest to its JSON form
func (id TxId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(id)))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert a digest from its JSON form
func (id *TxId) UnmarshalText(s []byte) error {
	if hex.EncodedLen(TxIdLength) != len(s) {
		return fault.NotTransactionPack
	}
	_, err := hex.Decode(id[:], s)
	if nil != err {
		return fault.NotTransactionPack
	}
	return nil
}
