// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftpoold/blockcount"
)

const testConfiguration = `
local M = {}

M.data_directory = "."
M.pool_account = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
M.jwt_secret = "secret"

M.block_source = {
    kind = "file",
    file = "height.txt",
}

M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}

M.https_rpc = {
    listen = { "127.0.0.1:2131" },
    allow = {
        details = { "127.0.0.0/8" },
    },
}

M.logging = {
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "nftpoold.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(dir, "data", "nftpool.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, blockcount.File, c.BlockSource.Kind, "block source kind")
	assert.Equal(t, filepath.Join(dir, "height.txt"), c.BlockSource.File, "block file")
	assert.Equal(t, 5, c.ClientRPC.MaximumConnections, "client connections")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "default certificate")
	assert.Equal(t, uint64(defaultRPCClients), c.HttpsRPC.MaximumConnections, "https default connections")
	assert.Equal(t, []string{"127.0.0.0/8"}, c.HttpsRPC.Allow["details"], "allow")
	assert.Equal(t, filepath.Join(dir, "publish.public"), c.Publishing.PublicKey, "publish key")
	assert.Equal(t, defaultMetadataExpiry, c.MetadataExpiry, "metadata expiry")
	assert.Equal(t, "secret", c.JWTSecret, "jwt secret")

	info, err := os.Stat(filepath.Join(dir, "log"))
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log is not a directory")
}

func TestBadPoolAccount(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { data_directory = ".", pool_account = "nobody" }`)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "invalid pool account accepted")
}

func TestMissingDataDirectory(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { pool_account = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266" }`)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "blank data directory accepted")
}

func TestDatabaseNameMustBePlain(t *testing.T) {
	_, fileName := writeConfiguration(t, `return {
    data_directory = ".",
    pool_account = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
    database = { name = "sub/pool.leveldb" },
}`)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "database path accepted as name")
}

func TestZeroPoolAccount(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { data_directory = ".", pool_account = "0x0000000000000000000000000000000000000000" }`)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "zero pool account accepted")
	assert.Contains(t, err.Error(), "pool_account", "error does not name the setting")
}
