// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/zmqutil"
)

const hexKey = "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"

func TestParseKey(t *testing.T) {
	key, private, err := zmqutil.ParseKey("  PUBLIC:" + hexKey + "\n")
	assert.Nil(t, err, "public")
	assert.False(t, private, "public is private")
	assert.Equal(t, zmqutil.KeyLength, len(key), "length")
	assert.Equal(t, byte(1), key[0], "first byte")

	_, private, err = zmqutil.ParseKey("PRIVATE:" + hexKey)
	assert.Nil(t, err, "private")
	assert.True(t, private, "private is public")

	tests := []struct {
		key string
		err error
	}{
		{"PUBLIC:" + hexKey[2:], fault.InvalidPublicKeyFile},
		{"PRIVATE:" + hexKey + "21", fault.InvalidPrivateKeyFile},
		{hexKey, fault.InvalidPublicKeyFile},
		{"", fault.InvalidPublicKeyFile},
	}
	for i, test := range tests {
		_, _, err := zmqutil.ParseKey(test.key)
		assert.Equal(t, test.err, err, "%d: error", i)
	}

	_, _, err = zmqutil.ParseKey("PUBLIC:" + strings.Repeat("zz", 32))
	assert.NotNil(t, err, "bad hex")
}

func TestReadKeyKinds(t *testing.T) {
	_, err := zmqutil.ReadPublicKey("PRIVATE:" + hexKey)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private as public")

	_, err = zmqutil.ReadPrivateKey("PUBLIC:" + hexKey)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public as private")
}

func TestCanonicalAddress(t *testing.T) {
	tests := []struct {
		address string
		result  string
		v6      bool
		ok      bool
	}{
		{"127.0.0.1:2135", "tcp://127.0.0.1:2135", false, true},
		{"*:2135", "tcp://*:2135", false, true},
		{"[::1]:2135", "tcp://[::1]:2135", true, true},
		{"localhost:2135", "", false, false},
		{"127.0.0.1", "", false, false},
	}
	for i, test := range tests {
		result, v6, err := zmqutil.CanonicalAddress(test.address)
		if !test.ok {
			assert.NotNil(t, err, "%d: expected error", i)
			continue
		}
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, test.result, result, "%d: address", i)
		assert.Equal(t, test.v6, v6, "%d: v6", i)
	}
}
