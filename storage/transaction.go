// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Reader - read access to pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - a single atomic batch of writes
//
// reads made through the transaction see its own pending writes
type Transaction interface {
	Reader
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionImpl - transaction over one database access
type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

// Begin - blocks until any other transaction completes
func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	handle.put(key, buffer)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.pending(key)
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, handle.pending(key))
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.pendingHas(key)
}

// Commit - write all pending changes atomically
func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

// Abort - discard all pending changes
func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.dataAccess.InUse()
}

// committed data reader
type committed struct{}

// Committed - Reader that ignores any pending transaction
var Committed Reader = committed{}

func (committed) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (committed) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (committed) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}
