// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - who may mutate an issuer's cap table
//
// the principal that initialised an issuer is recorded against the
// issuer id; every later issuer-scoped operation must present the
// same principal
package authority

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/storage"
)

// PrincipalLength - bytes in a principal
const PrincipalLength = 32

// Principal - an authenticated caller identity
//
// authentication itself belongs to the adapter that supplies it
type Principal [PrincipalLength]byte

// PrincipalFromBytes - copy a principal out of a byte slice
func PrincipalFromBytes(b []byte) (Principal, error) {
	p := Principal{}
	if PrincipalLength != len(b) {
		return p, fault.InvalidPrincipal
	}
	copy(p[:], b)
	return p, nil
}

// PrincipalFromBase58 - decode the text form
func PrincipalFromBase58(s string) (Principal, error) {
	b, err := base58.Decode(s)
	if nil != err {
		return Principal{}, fault.InvalidPrincipal
	}
	return PrincipalFromBytes(b)
}

// String - base58 text form
func (p Principal) String() string {
	return base58.Encode(p[:])
}

// IsZero - true when no caller was supplied
func (p Principal) IsZero() bool {
	return Principal{} == p
}

// MarshalText - convert a principal to its JSON form
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - convert a principal from its JSON form
func (p *Principal) UnmarshalText(s []byte) error {
	decoded, err := PrincipalFromBase58(string(s))
	if nil != err {
		return err
	}
	*p = decoded
	return nil
}

// Register - record the principal for a new issuer
//
// fails if the issuer already has an authority
func Register(trx storage.Transaction, issuerId identifier.Identifier, caller Principal) error {
	if caller.IsZero() {
		return fault.MissingCaller
	}
	return trx.Create(storage.Pool.Authorities, issuerId[:], caller[:])
}

// Check - the caller must be the registered authority of the issuer
func Check(trx storage.Transaction, issuerId identifier.Identifier, caller Principal) error {
	if caller.IsZero() {
		return fault.MissingCaller
	}
	p, err := fromPacked(trx.Get(storage.Pool.Authorities, issuerId[:]))
	if nil != err {
		return err
	}
	if p != caller {
		return fault.NotAuthorised
	}
	return nil
}

// Get - committed authority of an issuer
func Get(issuerId identifier.Identifier) (Principal, error) {
	return fromPacked(storage.Pool.Authorities.Get(issuerId[:]))
}

func fromPacked(b []byte) (Principal, error) {
	if nil == b {
		return Principal{}, fault.IssuerNotFound
	}
	p, err := PrincipalFromBytes(b)
	if nil != err {
		fault.Panicf("authority: corrupt principal: %x", b)
	}
	return p, nil
}
