// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
)

// Pools - exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Listings    *PoolHandle `prefix:"L"`
	OwnerIndex  *PoolHandle `prefix:"O"`
	Balances    *PoolHandle `prefix:"B"`
	Totals      *PoolHandle `prefix:"T"`
	Collections *PoolHandle `prefix:"C"`
	Tokens      *PoolHandle `prefix:"K"`
	Users       *PoolHandle `prefix:"U"`
	Payouts     *PoolHandle `prefix:"P"`
	Heights     *PoolHandle `prefix:"H"`
}

// Store - an open database and its pools
type Store struct {
	Pools

	sync.Mutex
	db     *leveldb.DB
	access Access
	trx    Transaction
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open up the database connection
//
// this must be called before any pool is accessed
func Open(database string, readOnly bool) (*Store, error) {

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	s := &Store{
		db: db,
	}
	s.access = newDA(db, new(leveldb.Batch), newCache())
	s.trx = newTransaction(s.access)

	err = s.assignPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return s, nil
}

// scan each field of Pools and attach a handle
func (s *Store) assignPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pools).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: s.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Begin - start the single write transaction
//
// blocks while another transaction is active, every successful
// Begin must be followed by Commit or Abort
func (s *Store) Begin() (Transaction, error) {
	err := s.trx.Begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
