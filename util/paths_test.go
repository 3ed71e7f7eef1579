// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/captabled/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/rpc.key", util.EnsureAbsolute("/data", "rpc.key"))
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./log/"))
	assert.Equal(t, "/etc/rpc.key", util.EnsureAbsolute("/data", "/etc//rpc.key"))
}

func TestFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	assert.False(t, util.FileExists(name), "before create")

	err = ioutil.WriteFile(name, []byte("x"), 0600)
	assert.Nil(t, err, "write")
	assert.True(t, util.FileExists(name), "after create")
}
