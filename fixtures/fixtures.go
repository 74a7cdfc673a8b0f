// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common test setup
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/wei"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known test accounts
var (
	Pool     = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	Owner    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	Renter   = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	Stranger = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
	Contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// NewTestStore - open an empty database in a temporary directory
//
// the returned function closes and removes it
func NewTestStore(t *testing.T) (*storage.Store, func()) {
	directory, err := os.MkdirTemp("", "nftpoold-test")
	if nil != err {
		t.Fatalf("make temporary directory error: %s", err)
	}

	db, err := storage.Open(filepath.Join(directory, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(directory)
		t.Fatalf("storage open error: %s", err)
	}

	return db, func() {
		db.Close()
		os.RemoveAll(directory)
	}
}

// Ether - test amount from an ether string
func Ether(s string) wei.Amount {
	a, err := wei.FromEther(s)
	if nil != err {
		panic(err)
	}
	return a
}
