// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/nftpoold/nft"
)

// shown when a token has no usable metadata
const (
	DefaultName  = "No openzeppelin compatible"
	DefaultImage = "https://www.generationsforpeace.org/wp-content/uploads/2018/03/empty.jpg"
)

// Source - where token URIs come from
type Source interface {
	MetadataURI(id nft.Identity) (string, bool)
}

// Display - what a client shows for a token
type Display struct {
	URI         string `json:"uri,omitempty"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Placeholder bool   `json:"placeholder"`
}

// Metadata - cached token URI lookup
type Metadata struct {
	source Source
	cache  *cache.Cache
}

// NewMetadata - lookups are kept for expiry
func NewMetadata(source Source, expiry time.Duration) *Metadata {
	return &Metadata{
		source: source,
		cache:  cache.New(expiry, 2*expiry),
	}
}

// Lookup - never fails, falls back to the placeholder
//
// only the URI is resolved here, the document behind it is left to
// the client
func (m *Metadata) Lookup(id nft.Identity) Display {
	key := string(id.Key())
	if d, found := m.cache.Get(key); found {
		return d.(Display)
	}

	d := Display{
		Name:        DefaultName,
		Image:       DefaultImage,
		Placeholder: true,
	}
	if uri, ok := m.source.MetadataURI(id); ok && "" != uri {
		d.URI = uri
		d.Placeholder = false
	}

	m.cache.Set(key, d, cache.DefaultExpiration)
	return d
}

// Forget - drop a cached lookup
func (m *Metadata) Forget(id nft.Identity) {
	m.cache.Delete(string(id.Key()))
}
