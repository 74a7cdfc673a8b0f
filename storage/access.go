// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/nftpoold/fault"
)

// Access - batched access to one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Committed([]byte) ([]byte, error)
	CommittedHas([]byte) (bool, error)
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - a database, its batch and the cache of pending writes
//
// writer is held from Begin until Commit or Abort so batches of
// different callers never interleave
type AccessData struct {
	sync.Mutex
	writer sync.Mutex
	inUse  bool
	db     *leveldb.DB
	batch  *leveldb.Batch
	cache  Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - wait for exclusive use of the batch
func (d *AccessData) Begin() error {
	d.writer.Lock()

	d.Lock()
	defer d.Unlock()

	if d.inUse {
		d.writer.Unlock()
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch, the batch is released even on error
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.NotInitialised
	}

	err := d.db.Write(d.batch, nil)
	d.release()
	return err
}

// Abort - discard the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return
	}
	d.release()
}

// must hold lock
func (d *AccessData) release() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	d.writer.Unlock()
}

// Get - pending writes first, then committed data
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, deleted, found := d.cache.Get(string(key))
	if deleted {
		return nil, leveldb.ErrNotFound
	}
	if found {
		return value, nil
	}
	return d.db.Get(key, nil)
}

// Committed - ignore any pending writes
func (d *AccessData) Committed(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

// CommittedHas - ignore any pending writes
func (d *AccessData) CommittedHas(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, deleted, found := d.cache.Get(string(key))
	if deleted {
		return false, nil
	}
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
