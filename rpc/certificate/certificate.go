// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Fingerprint - SHA3-256 of a DER certificate
type Fingerprint [32]byte

// Get - load a PEM certificate and key pair into a TLS configuration
func Get(log *logger.L, name, certificate, key string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = sha3.Sum256(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// GetFiles - as Get, reading the PEM data from files
func GetFiles(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, Fingerprint, error) {
	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFile, err)
		return nil, Fingerprint{}, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFile, err)
		return nil, Fingerprint{}, err
	}
	return Get(log, name, string(certificate), string(key))
}
