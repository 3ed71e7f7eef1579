// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/captabled/fixtures"
	"github.com/bitmark-inc/captabled/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

// replace a file by rename so readers never see a partial write
func replaceFile(t *testing.T, name string, data string) {
	temporary := name + ".new"
	if err := ioutil.WriteFile(temporary, []byte(data), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	if err := os.Rename(temporary, name); nil != err {
		t.Fatalf("rename error: %s", err)
	}
}

func TestReloader(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	dir, err := ioutil.TempDir("", "captabled-reloader")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	certificatePEM, keyPEM, der := makeCertificate(t)
	replaceFile(t, certificateFile, certificatePEM)
	replaceFile(t, keyFile, keyPEM)

	r, err := certificate.NewReloader(log, "test", certificateFile, keyFile)
	if !assert.Nil(t, err, "new reloader") {
		return
	}
	defer r.Close()

	assert.Equal(t, certificate.Fingerprint(sha3.Sum256(der)), r.Fingerprint(), "initial fingerprint")

	served, err := r.Config().GetCertificate(&tls.ClientHelloInfo{})
	assert.Nil(t, err, "get certificate")
	assert.Equal(t, der, served.Certificate[0], "served certificate")

	// a mismatched pair is ignored until the matching half arrives
	certificatePEM, keyPEM, der = makeCertificate(t)
	replaceFile(t, keyFile, keyPEM)
	replaceFile(t, certificateFile, certificatePEM)

	expected := certificate.Fingerprint(sha3.Sum256(der))
	deadline := time.Now().Add(5 * time.Second)
	for expected != r.Fingerprint() && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	assert.Equal(t, expected, r.Fingerprint(), "reloaded fingerprint")
}

func TestReloaderMissingFiles(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := certificate.NewReloader(logger.New(fixtures.LogCategory), "test", "/nonexistent/rpc.crt", "/nonexistent/rpc.key")
	assert.NotNil(t, err, "missing files")
}
