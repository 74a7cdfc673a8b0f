// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftpoold/fault"
)

var (
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrPaymentOne    = fault.PaymentError("payment one")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrStateOne      = fault.StateError("state one")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		notFound   bool
		payment    bool
		permission bool
		process    bool
		state      bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false, false, false},
		{ErrPaymentOne, false, false, false, true, false, false, false},
		{ErrPermissionOne, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrStateOne, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPayment(err) != e.payment {
			t.Errorf("%d: expected 'payment' == %v for err = %v", i, e.payment, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
	}
}

func TestKind(t *testing.T) {
	custody := &fault.CustodyError{Op: "transfer in", Err: fault.TokenNotApproved}

	kindList := []struct {
		err  error
		kind string
	}{
		{fault.NotOwner, "NotOwner"},
		{fault.NotFound, "NotFound"},
		{fault.DuplicateListing, "DuplicateListing"},
		{fault.AssetOccupied, "AssetOccupied"},
		{fault.InvalidTerms, "InvalidTerms"},
		{fault.InvalidDuration, "InvalidDuration"},
		{fault.InsufficientPayment, "InsufficientPayment"},
		{fault.InsufficientBalance, "InsufficientBalance"},
		{fault.Overflow, "Overflow"},
		{custody, "CustodyError"},
		{fault.Wrap(fault.NotOwner, custody), "NotOwner"},
		{fmt.Errorf("rent: %w", fault.AssetOccupied), "AssetOccupied"},
		{fault.UnknownToken, "NotFound"},
		{fault.InvalidAddress, "InvalidArgument"},
		{errors.New("disk on fire"), "Internal"},
		{nil, ""},
	}

	for i, k := range kindList {
		assert.Equal(t, k.kind, fault.Kind(k.err), "%d: wrong kind for: %v", i, k.err)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	custody := &fault.CustodyError{Op: "transfer in", Err: fault.TokenNotApproved}
	err := fault.Wrap(fault.NotOwner, custody)

	assert.True(t, errors.Is(err, fault.NotOwner), "fault instance lost")

	var c *fault.CustodyError
	assert.True(t, errors.As(err, &c), "cause lost")
	assert.Equal(t, "transfer in", c.Op, "wrong custody op")
	assert.Equal(t, "caller is not the owner: custody transfer in: pool is not approved for the token", fault.Reason(err))

	assert.Equal(t, fault.Overflow, fault.Wrap(fault.Overflow, nil), "nil cause should not wrap")
}

func TestWrapMatchesCause(t *testing.T) {
	custody := &fault.CustodyError{Op: "transfer in", Err: fault.TokenNotApproved}
	err := fault.Wrap(fault.NotOwner, custody)

	assert.True(t, errors.Is(err, fault.TokenNotApproved), "cause not matched")
	assert.False(t, errors.Is(err, fault.UnknownToken), "unrelated error matched")
}

func TestRemoteCarriesKind(t *testing.T) {
	err := fault.Remote(fault.Wrap(fault.NotOwner, fault.TokenNotApproved))

	assert.Equal(t, "NotOwner: caller is not the owner: pool is not approved for the token", err.Error(), "wrong text")
	assert.Equal(t, fault.KindNotOwner, fault.Kind(err), "wrong kind")
	assert.Equal(t, "caller is not the owner: pool is not approved for the token", fault.Reason(err), "wrong reason")
	assert.True(t, errors.Is(err, fault.NotOwner), "fault instance lost")
	assert.Equal(t, err, fault.Remote(err), "wrapped twice")
	assert.Nil(t, fault.Remote(nil), "nil wrapped")
}

func TestReport(t *testing.T) {
	f := func() (err error) {
		defer fault.Report(&err)
		return fault.RateLimiting
	}
	err := f()
	assert.Equal(t, "RateLimited: rate limiting", err.Error(), "wrong text")

	g := func() (err error) {
		defer fault.Report(&err)
		return nil
	}
	assert.Nil(t, g(), "success reported as error")
}
