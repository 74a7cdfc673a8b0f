// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - notifications of committed pool transitions
package event

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/messagebus"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/wei"
)

// event kinds, also used as the message command
const (
	Listed    = "listed"
	Edited    = "edited"
	Removed   = "removed"
	Rented    = "rented"
	Withdrawn = "withdrawn"
	Payout    = "payout"
)

// Kinds - all event kinds
var Kinds = []string{Listed, Edited, Removed, Rented, Withdrawn, Payout}

// Event - one notification
type Event struct {
	Id        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Block     uint64          `json:"block"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Listing - payload of listed, edited and removed
type Listing struct {
	ListingId     nft.ListingId  `json:"listingId"`
	Contract      common.Address `json:"contract"`
	TokenId       string         `json:"tokenId"`
	Owner         common.Address `json:"owner"`
	FlashFee      wei.Amount     `json:"flashFee"`
	PricePerBlock wei.Amount     `json:"pricePerBlock"`
	MaxBlocks     uint64         `json:"maxBlocks"`
}

// Rental - payload of rented
type Rental struct {
	ListingId   nft.ListingId  `json:"listingId"`
	Contract    common.Address `json:"contract"`
	TokenId     string         `json:"tokenId"`
	Renter      common.Address `json:"renter"`
	Flash       bool           `json:"flash"`
	Duration    uint64         `json:"duration"`
	Cost        wei.Amount     `json:"cost"`
	Refund      wei.Amount     `json:"refund"`
	RentedUntil uint64         `json:"rentedUntil"`
}

// Withdrawal - payload of withdrawn
type Withdrawal struct {
	Owner  common.Address `json:"owner"`
	Amount wei.Amount     `json:"amount"`
}

// PayoutOrder - payload of payout
type PayoutOrder struct {
	Id      uuid.UUID      `json:"id"`
	Address common.Address `json:"address"`
	Amount  wei.Amount     `json:"amount"`
}

// New - create an event with a fresh id
func New(kind string, block uint64, payload interface{}) (*Event, error) {
	data, err := json.Marshal(payload)
	if nil != err {
		return nil, err
	}
	return &Event{
		Id:        uuid.New(),
		Kind:      kind,
		Block:     block,
		Timestamp: time.Now().UTC(),
		Payload:   data,
	}, nil
}

// Decode - recover an event from a bus message
func Decode(m messagebus.Message) (*Event, error) {
	if 1 != len(m.Parameters) {
		return nil, fault.WrongNumberOfArguments
	}
	var e Event
	err := json.Unmarshal(m.Parameters[0], &e)
	if nil != err {
		return nil, err
	}
	return &e, nil
}
