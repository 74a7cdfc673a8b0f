// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockcount

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/background"
	"github.com/bitmark-inc/nftpoold/counter"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/storage"
)

// block source kinds
const (
	Local = "local"
	File  = "file"
)

const defaultInterval = 15 * time.Second

// Configuration - block_source section of the configuration file
type Configuration struct {
	Kind     string `gluamapper:"kind" json:"kind"`
	Interval string `gluamapper:"interval" json:"interval"`
	File     string `gluamapper:"file" json:"file"`
	Start    uint64 `gluamapper:"start" json:"start"`
}

// Counter - current block height, never decreases
type Counter interface {
	Height() uint64
}

// Source - a counter that may need a background process
type Source interface {
	Counter
	background.Process
}

// Fixed - height held in memory and moved explicitly
type Fixed struct {
	height counter.Counter
}

// NewFixed - counter starting at height
func NewFixed(height uint64) *Fixed {
	f := &Fixed{}
	f.height.Raise(height)
	return f
}

// Height - current height
func (f *Fixed) Height() uint64 {
	return f.height.Uint64()
}

// Advance - move forward one block
func (f *Fixed) Advance() uint64 {
	return f.height.Increment()
}

// Set - move forward to height, false if that would go backwards
func (f *Fixed) Set(height uint64) bool {
	return f.height.Raise(height)
}

// New - block source from configuration
//
// a local ticker keeps its height in store, which may be nil
func New(log *logger.L, configuration Configuration, store *storage.Store) (Source, error) {
	switch configuration.Kind {
	case "", Local:
		interval := defaultInterval
		if "" != configuration.Interval {
			d, err := time.ParseDuration(configuration.Interval)
			if nil != err {
				return nil, err
			}
			if d <= 0 {
				return nil, fault.InvalidBlockSource
			}
			interval = d
		}
		return NewTicker(log, store, configuration.Start, interval), nil

	case File:
		if "" == configuration.File {
			return nil, fault.InvalidBlockSource
		}
		return NewWatcher(log, configuration.File)

	default:
		return nil, fault.InvalidBlockSource
	}
}
