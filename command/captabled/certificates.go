// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/util"
	"github.com/bitmark-inc/certgen"
)

const certificateLifetime = 10 * 365 * 24 * time.Hour

// create a self-signed certificate
//
// extraHosts replace the default host list when override is set
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.FileExists(certificateFileName) {
		return fault.CertificateFileExists
	}

	if util.FileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "captabled self signed cert for: " + name
	validUntil := time.Now().Add(certificateLifetime)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}
