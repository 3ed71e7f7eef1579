// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/captabled/fault"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"

	// KeyLength - raw CURVE key size
	KeyLength = 32
)

// MakeKeyPair - create a CURVE keypair and write each half to its own file
//
// neither file may already exist
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	for _, name := range []string{publicKeyFileName, privateKeyFileName} {
		if _, err := os.Stat(name); nil == err {
			return fault.KeyFileAlreadyExists
		}
	}

	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicText := taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateText := taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(publicText), 0666); err != nil {
		return err
	}
	if err = ioutil.WriteFile(privateKeyFileName, []byte(privateText), 0600); err != nil {
		_ = os.Remove(publicKeyFileName)
		return err
	}
	return nil
}

// ReadPublicKeyFile - read a tagged public key file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPublicKey(string(data))
}

// ReadPrivateKeyFile - read a tagged private key file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPrivateKey(string(data))
}

// ReadPublicKey - decode "PUBLIC:<hex>" into raw key bytes
func ReadPublicKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.InvalidPublicKeyFile
	}
	return data, nil
}

// ReadPrivateKey - decode "PRIVATE:<hex>" into raw key bytes
func ReadPrivateKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.InvalidPrivateKeyFile
	}
	return data, nil
}

// ParseKey - decode either kind of tagged key, reporting which it was
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	tag := ""
	private := false
	switch {
	case strings.HasPrefix(s, taggedPrivate):
		tag = taggedPrivate
		private = true
	case strings.HasPrefix(s, taggedPublic):
		tag = taggedPublic
	default:
		return nil, false, fault.InvalidPublicKeyFile
	}

	h, err := hex.DecodeString(s[len(tag):])
	if nil != err {
		return nil, false, err
	}
	if KeyLength != len(h) {
		if private {
			return nil, false, fault.InvalidPrivateKeyFile
		}
		return nil, false, fault.InvalidPublicKeyFile
	}
	return h, private, nil
}
