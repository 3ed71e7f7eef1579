// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/authority"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/storage"
)

func makePrincipal(b byte) authority.Principal {
	p := authority.Principal{}
	for i := range p {
		p[i] = b
	}
	return p
}

func TestPrincipalText(t *testing.T) {
	p := makePrincipal(0x01)

	s := p.String()
	decoded, err := authority.PrincipalFromBase58(s)
	assert.Nil(t, err, "decode")
	assert.Equal(t, p, decoded, "base58 round trip")

	zero := authority.Principal{}
	assert.Equal(t, "11111111111111111111111111111111", zero.String(), "zero principal")

	_, err = authority.PrincipalFromBase58("0OIl")
	assert.Equal(t, fault.InvalidPrincipal, err, "invalid alphabet")

	_, err = authority.PrincipalFromBase58("2NEpo7TZRRrLZSi2U")
	assert.Equal(t, fault.InvalidPrincipal, err, "short principal")

	_, err = authority.PrincipalFromBytes(make([]byte, 31))
	assert.Equal(t, fault.InvalidPrincipal, err, "short bytes")

	b, err := json.Marshal(struct{ Caller authority.Principal }{p})
	assert.Nil(t, err, "marshal")

	var item struct{ Caller authority.Principal }
	err = json.Unmarshal(b, &item)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, p, item.Caller, "json round trip")
}

func TestRegisterAndCheck(t *testing.T) {
	setup(t)
	defer teardown()

	issuerId := identifier.New()
	owner := makePrincipal(0x11)
	other := makePrincipal(0x22)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}

	err = authority.Check(trx, issuerId, owner)
	assert.Equal(t, fault.IssuerNotFound, err, "unregistered issuer")

	err = authority.Register(trx, issuerId, authority.Principal{})
	assert.Equal(t, fault.MissingCaller, err, "register zero principal")

	err = authority.Register(trx, issuerId, owner)
	assert.Nil(t, err, "register")

	err = authority.Check(trx, issuerId, authority.Principal{})
	assert.Equal(t, fault.MissingCaller, err, "check zero principal")
	assert.True(t, authority.Principal{}.IsZero(), "zero principal")
	assert.False(t, owner.IsZero(), "owner is zero")

	err = authority.Register(trx, issuerId, other)
	assert.Equal(t, fault.RecordExists, err, "second register")

	assert.Nil(t, authority.Check(trx, issuerId, owner), "pending owner")
	assert.Equal(t, fault.NotAuthorised, authority.Check(trx, issuerId, other), "pending other")

	_, err = authority.Get(issuerId)
	assert.Equal(t, fault.IssuerNotFound, err, "visible before commit")

	err = trx.Commit()
	assert.Nil(t, err, "commit")

	p, err := authority.Get(issuerId)
	assert.Nil(t, err, "committed authority")
	assert.Equal(t, owner, p, "committed principal")
}
