// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/captabled/fixtures"
	"github.com/bitmark-inc/captabled/storage"
)

var databaseDirectory string

func setup(t *testing.T) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "captabled-event")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	databaseDirectory = dir

	err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	_ = os.RemoveAll(databaseDirectory)
	fixtures.TeardownTestLogger()
}
