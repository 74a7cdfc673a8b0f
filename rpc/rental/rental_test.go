// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rental_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/custody"
	custodymocks "github.com/bitmark-inc/nftpoold/custody/mocks"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/listing"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/pool/mocks"
	"github.com/bitmark-inc/nftpoold/rpc/rental"
	"github.com/bitmark-inc/nftpoold/wei"
)

var issuer = credential.New("rental secret")

func proof(t *testing.T, caller common.Address) string {
	token, err := issuer.Issue(caller, time.Minute)
	if nil != err {
		t.Fatalf("issue credential error: %s", err)
	}
	return token
}

func setup(t *testing.T) (*rental.Pool, *mocks.MockOperations, func()) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	m := mocks.NewMockOperations(ctl)
	p := rental.New(logger.New(fixtures.LogCategory), m, nil, issuer)
	return p, m, func() {
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func record(tokenId uint64) *listing.Record {
	return &listing.Record{
		Identity: nft.NewIdentity(fixtures.Contract, tokenId),
		Terms: listing.Terms{
			PricePerBlock: fixtures.Ether("1"),
			MaxBlocks:     10,
		},
		Owner:    fixtures.Owner,
		ListedAt: 1000,
	}
}

func TestList(t *testing.T) {
	p, m, done := setup(t)
	defer done()

	id := nft.NewIdentity(fixtures.Contract, 7)
	terms := listing.Terms{
		FlashFee:      fixtures.Ether("0.1"),
		PricePerBlock: fixtures.Ether("1"),
		MaxBlocks:     5,
	}
	m.EXPECT().AddListing(fixtures.Owner, id, terms).Return(id.ListingId(), nil).Times(1)

	arguments := rental.ListArguments{
		Credential:    proof(t, fixtures.Owner),
		Contract:      fixtures.Contract.Hex(),
		TokenId:       "7",
		FlashFee:      terms.FlashFee,
		PricePerBlock: terms.PricePerBlock,
		MaxBlocks:     5,
	}
	var reply rental.ListReply
	err := p.List(&arguments, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, id.ListingId(), reply.ListingId, "wrong listing id")
}

func TestListBadArguments(t *testing.T) {
	p, _, done := setup(t)
	defer done()

	var reply rental.ListReply
	err := p.List(&rental.ListArguments{Credential: proof(t, fixtures.Owner), Contract: fixtures.Contract.Hex(), TokenId: "x"}, &reply)
	assert.True(t, errors.Is(err, fault.InvalidToken), "bad token: %v", err)
	assert.Equal(t, "InvalidArgument: invalid token", err.Error(), "wrong text")
}

// a caller named only in the arguments is never trusted
func TestMutationsNeedCredential(t *testing.T) {
	p, _, done := setup(t)
	defer done()

	forged, _ := credential.New("other secret").Issue(fixtures.Owner, time.Minute)
	expired, _ := issuer.Issue(fixtures.Owner, -time.Minute)

	for _, token := range []string{"", forged, expired, fixtures.Owner.Hex()} {
		var reply rental.ListReply
		err := p.Edit(&rental.ListArguments{Credential: token, Contract: fixtures.Contract.Hex(), TokenId: "1", MaxBlocks: 1}, &reply)
		assert.True(t, errors.Is(err, fault.Unauthorised), "edit: %v", err)
		assert.Equal(t, fault.KindUnauthorised, fault.Kind(err), "edit kind")

		err = p.List(&rental.ListArguments{Credential: token, Contract: fixtures.Contract.Hex(), TokenId: "1", MaxBlocks: 1}, &reply)
		assert.True(t, errors.Is(err, fault.Unauthorised), "list: %v", err)

		err = p.Remove(&rental.RemoveArguments{Credential: token, Contract: fixtures.Contract.Hex(), TokenId: "1"}, &reply)
		assert.True(t, errors.Is(err, fault.Unauthorised), "remove: %v", err)

		var receipt pool.RentReceipt
		err = p.RentLong(&rental.RentArguments{Credential: token, Contract: fixtures.Contract.Hex(), TokenId: "1", Blocks: 1}, &receipt)
		assert.True(t, errors.Is(err, fault.Unauthorised), "rent: %v", err)
	}
}

func TestEditAndRemove(t *testing.T) {
	p, m, done := setup(t)
	defer done()

	id := nft.NewIdentity(fixtures.Contract, 3)
	m.EXPECT().EditListing(fixtures.Stranger, id, gomock.Any()).Return(fault.NotOwner).Times(1)
	m.EXPECT().RemoveListing(fixtures.Owner, id).Return(nil).Times(1)

	var reply rental.ListReply
	err := p.Edit(&rental.ListArguments{
		Credential: proof(t, fixtures.Stranger),
		Contract:   fixtures.Contract.Hex(),
		TokenId:    "3",
		MaxBlocks:  1,
	}, &reply)
	assert.True(t, errors.Is(err, fault.NotOwner), "edit by stranger: %v", err)
	assert.Equal(t, "NotOwner: caller is not the owner", err.Error(), "wrong text")

	err = p.Remove(&rental.RemoveArguments{
		Credential: proof(t, fixtures.Owner),
		Contract:   fixtures.Contract.Hex(),
		TokenId:    "3",
	}, &reply)
	assert.Nil(t, err, "wrong Remove")
	assert.Equal(t, id.ListingId(), reply.ListingId, "wrong listing id")
}

func TestRent(t *testing.T) {
	p, m, done := setup(t)
	defer done()

	id := nft.NewIdentity(fixtures.Contract, 1)
	receipt := &pool.RentReceipt{
		ListingId:   id.ListingId(),
		Renter:      fixtures.Renter,
		Duration:    2,
		Cost:        fixtures.Ether("2"),
		Refund:      wei.Zero(),
		RentedUntil: 1002,
		Block:       1000,
	}
	m.EXPECT().RentLong(fixtures.Renter, id, uint64(2), fixtures.Ether("2")).Return(receipt, nil).Times(1)
	m.EXPECT().RentFlash(fixtures.Renter, id, fixtures.Ether("2")).Return(nil, fault.AssetOccupied).Times(1)

	arguments := rental.RentArguments{
		Credential: proof(t, fixtures.Renter),
		Contract:   fixtures.Contract.Hex(),
		TokenId:    "1",
		Blocks:     2,
		Payment:    fixtures.Ether("2"),
	}

	var reply pool.RentReceipt
	err := p.RentLong(&arguments, &reply)
	assert.Nil(t, err, "wrong RentLong")
	assert.Equal(t, *receipt, reply, "wrong receipt")

	err = p.RentFlash(&arguments, &reply)
	assert.True(t, errors.Is(err, fault.AssetOccupied), "flash while occupied: %v", err)
	assert.Equal(t, fault.KindAssetOccupied, fault.Kind(err), "wrong kind")
	assert.Equal(t, "AssetOccupied: asset is currently rented", err.Error(), "wrong text")
}

// a removed asset is looked up afresh if listed again
func TestRemoveForgetsMetadata(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	id := nft.NewIdentity(fixtures.Contract, 4)
	r := record(4)

	m := mocks.NewMockOperations(ctl)
	adapter := custodymocks.NewMockAdapter(ctl)
	gomock.InOrder(
		adapter.EXPECT().MetadataURI(id).Return("ipfs://old/4", true),
		adapter.EXPECT().MetadataURI(id).Return("ipfs://new/4", true),
	)
	m.EXPECT().Get(id).Return(r, true).Times(2)
	m.EXPECT().Height().Return(uint64(1000)).Times(2)
	m.EXPECT().RemoveListing(fixtures.Owner, id).Return(nil).Times(1)

	p := rental.New(logger.New(fixtures.LogCategory), m, custody.NewMetadata(adapter, time.Hour), issuer)

	var summary pool.Summary
	err := p.Get(&rental.Asset{Contract: fixtures.Contract.Hex(), TokenId: "4"}, &summary)
	assert.Nil(t, err, "get before remove")
	assert.Equal(t, "ipfs://old/4", summary.Metadata.URI, "first uri")

	var reply rental.ListReply
	err = p.Remove(&rental.RemoveArguments{Credential: proof(t, fixtures.Owner), Contract: fixtures.Contract.Hex(), TokenId: "4"}, &reply)
	assert.Nil(t, err, "remove")

	err = p.Get(&rental.Asset{Contract: fixtures.Contract.Hex(), TokenId: "4"}, &summary)
	assert.Nil(t, err, "get after remove")
	assert.Equal(t, "ipfs://new/4", summary.Metadata.URI, "stale uri")
}

func TestQuote(t *testing.T) {
	p, m, done := setup(t)
	defer done()

	id := nft.NewIdentity(fixtures.Contract, 1)
	m.EXPECT().Quote(id, uint64(4)).Return(fixtures.Ether("4"), nil).Times(1)

	var reply rental.QuoteReply
	err := p.Quote(&rental.QuoteArguments{Contract: fixtures.Contract.Hex(), TokenId: "1", Blocks: 4}, &reply)
	assert.Nil(t, err, "wrong Quote")
	assert.Equal(t, fixtures.Ether("4"), reply.Cost, "wrong cost")
}

func TestGet(t *testing.T) {
	p, m, done := setup(t)
	defer done()

	r := record(1)
	m.EXPECT().Get(r.Identity).Return(r, true).Times(1)
	m.EXPECT().Get(gomock.Any()).Return(nil, false).Times(1)
	m.EXPECT().Height().Return(uint64(1000)).Times(1)

	var reply pool.Summary
	err := p.Get(&rental.Asset{Contract: fixtures.Contract.Hex(), TokenId: "1"}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, r.ListingId(), reply.ListingId, "wrong listing id")
	assert.True(t, reply.Available, "wrong availability")
	assert.True(t, reply.Metadata.Placeholder, "metadata without source")
	assert.Equal(t, custody.DefaultImage, reply.Metadata.Image, "wrong placeholder image")

	err = p.Get(&rental.Asset{Contract: fixtures.Contract.Hex(), TokenId: "2"}, &reply)
	assert.True(t, errors.Is(err, fault.NotFound), "missing listing: %v", err)
	assert.Equal(t, "NotFound: listing not found", err.Error(), "wrong text")
}

func TestAll(t *testing.T) {
	p, m, done := setup(t)
	defer done()

	next := nft.NewIdentity(fixtures.Contract, 3)
	start := nft.NewIdentity(fixtures.Contract, 1)
	m.EXPECT().Page(&start, 2).Return([]*listing.Record{record(1), record(2)}, &next, nil).Times(1)
	m.EXPECT().Height().Return(uint64(1000)).Times(1)

	var reply rental.AllReply
	err := p.All(&rental.AllArguments{
		Start: &rental.Asset{Contract: fixtures.Contract.Hex(), TokenId: "1"},
		Count: 2,
	}, &reply)
	assert.Nil(t, err, "wrong All")
	assert.Equal(t, 2, len(reply.Listings), "wrong page size")
	assert.Equal(t, "3", reply.Next.TokenId, "wrong next token")
	assert.Equal(t, fixtures.Contract.Hex(), reply.Next.Contract, "wrong next contract")

	err = p.All(&rental.AllArguments{Count: 0}, &reply)
	assert.True(t, errors.Is(err, fault.InvalidCount), "zero count: %v", err)

	err = p.All(&rental.AllArguments{Start: &rental.Asset{Contract: "bad"}, Count: 1}, &reply)
	assert.True(t, errors.Is(err, fault.InvalidCursor), "bad cursor: %v", err)
}

func TestOwned(t *testing.T) {
	p, m, done := setup(t)
	defer done()

	m.EXPECT().Owned(fixtures.Owner).Return([]*listing.Record{record(1)}, nil).Times(1)
	m.EXPECT().Height().Return(uint64(1000)).Times(1)

	var reply rental.OwnedReply
	err := p.Owned(&rental.OwnedArguments{Owner: fixtures.Owner.Hex()}, &reply)
	assert.Nil(t, err, "wrong Owned")
	assert.Equal(t, 1, len(reply.Listings), "wrong count")
	assert.Equal(t, fixtures.Owner, reply.Listings[0].Owner, "wrong owner")
}
