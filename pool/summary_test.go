// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/pool"
)

func TestSummarise(t *testing.T) {
	tp := setupPool(t, nil)
	defer tp.done()

	id := tp.list(t)
	metadata := custody.NewMetadata(tp.registry, time.Minute)

	record, _ := tp.pool.Get(id)
	s := pool.Summarise(record, tp.counter.Height(), metadata)
	assert.True(t, s.Available, "available")
	assert.Nil(t, s.Operator, "operator shown while available")
	assert.Equal(t, "ipfs://rentable/1", s.Metadata.URI, "metadata uri")
	assert.False(t, s.Metadata.Placeholder, "placeholder")
	assert.Equal(t, "1", s.TokenId, "token id")

	_, err := tp.pool.RentLong(fixtures.Renter, id, 2, fixtures.Ether("2"))
	assert.Nil(t, err, "rent")

	record, _ = tp.pool.Get(id)
	s = pool.Summarise(record, tp.counter.Height(), nil)
	assert.False(t, s.Available, "available while rented")
	assert.Equal(t, fixtures.Renter, *s.Operator, "operator")
	assert.True(t, s.Metadata.Placeholder, "placeholder without metadata")
	assert.Equal(t, custody.DefaultName, s.Metadata.Name, "placeholder name")

	all := pool.SummariseAll(nil, 0, nil)
	assert.Empty(t, all, "empty list")
}
