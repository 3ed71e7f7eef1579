// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleConfiguration = `
local M = {}
M.data_directory = "."
M.pidfile = "captabled.pid"
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
    certificate = "",
    private_key = "",
}
M.publishing = {
    broadcast = { "127.0.0.1:2135" },
}
M.logging = {
    size = 4096,
    levels = { DEFAULT = "info" },
}
return M
`

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "captabled")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	name := filepath.Join(dir, "captabled.conf")
	if err := ioutil.WriteFile(name, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, name
}

func TestGetConfiguration(t *testing.T) {
	dir, name := writeConfiguration(t, sampleConfiguration)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(name, nil)
	assert.Nil(t, err, "get configuration")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(dir, "captabled.pid"), c.PidFile, "pid file")
	assert.False(t, c.ReadOnly, "read only")

	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultDatabase), c.Database.Name, "database name")
	assert.True(t, isDirectory(c.Database.Directory), "database directory created")

	assert.Equal(t, uint64(5), c.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "rpc listen")
	assert.Equal(t, "", c.ClientRPC.Certificate, "blank certificate kept blank")
	assert.Equal(t, "", c.ClientRPC.PrivateKey, "blank key kept blank")

	assert.Equal(t, []string{"127.0.0.1:2135"}, c.Publishing.Broadcast, "broadcast")
	assert.Equal(t, filepath.Join(dir, defaultPrivateKeyFile), c.Publishing.PrivateKey, "default private key")
	assert.Equal(t, filepath.Join(dir, defaultPublicKeyFile), c.Publishing.PublicKey, "default public key")

	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.EqualValues(t, 4096, c.Logging.Size, "log size")
	assert.EqualValues(t, defaultLogCount, c.Logging.Count, "log count")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "log level")
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no data directory", "return {}\n"},
		{"home data directory", "return { data_directory = \"~\" }\n"},
		{"missing data directory", "return { data_directory = \"/nonexistent/captabled\" }\n"},
		{"database path", "return { data_directory = \".\", database = { name = \"a/b.leveldb\" } }\n"},
		{"log path", "return { data_directory = \".\", logging = { file = \"log/x.log\" } }\n"},
		{"syntax", "return {\n"},
	}

	for _, test := range tests {
		dir, name := writeConfiguration(t, test.content)
		_, err := getConfiguration(name, nil)
		assert.NotNil(t, err, test.name)
		os.RemoveAll(dir)
	}
}

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.key", getFilenameWithDirectory(nil, "rpc.key"), "default directory")
	assert.Equal(t, "/tmp/keys/rpc.key", getFilenameWithDirectory([]string{"/tmp/keys", "127.0.0.1"}, "rpc.key"), "given directory")
}

func isDirectory(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.IsDir()
}
