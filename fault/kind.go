// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// kind names reported to clients
const (
	KindAssetOccupied        = "AssetOccupied"
	KindCustody              = "CustodyError"
	KindDuplicateListing     = "DuplicateListing"
	KindInsufficientBalance  = "InsufficientBalance"
	KindInsufficientPayment  = "InsufficientPayment"
	KindInternal             = "Internal"
	KindInvalidArgument      = "InvalidArgument"
	KindInvalidDuration      = "InvalidDuration"
	KindInvalidTerms         = "InvalidTerms"
	KindNotFound             = "NotFound"
	KindNotOwner             = "NotOwner"
	KindOverflow             = "Overflow"
	KindRateLimited          = "RateLimited"
	KindUnauthorised         = "Unauthorised"
	KindWithdrawalInProgress = "WithdrawalInProgress"
)

// checked in order, first match wins
var kinds = []struct {
	err  error
	name string
}{
	{NotOwner, KindNotOwner},
	{NotFound, KindNotFound},
	{DuplicateListing, KindDuplicateListing},
	{AssetOccupied, KindAssetOccupied},
	{InvalidTerms, KindInvalidTerms},
	{InvalidDuration, KindInvalidDuration},
	{InsufficientPayment, KindInsufficientPayment},
	{InsufficientBalance, KindInsufficientBalance},
	{Overflow, KindOverflow},
	{WithdrawalInProgress, KindWithdrawalInProgress},
	{RateLimiting, KindRateLimited},
	{Unauthorised, KindUnauthorised},
}

// Kind - the taxonomy name of an error
func Kind(err error) string {
	if nil == err {
		return ""
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	var custody *CustodyError
	if errors.As(err, &custody) {
		return KindCustody
	}

	switch {
	case IsErrNotFound(err):
		return KindNotFound
	case IsErrInvalid(err):
		return KindInvalidArgument
	case IsErrPermission(err):
		return KindUnauthorised
	}
	return KindInternal
}

// Reason - human readable reason for an error
func Reason(err error) string {
	if nil == err {
		return ""
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Reason
	}
	return err.Error()
}

// RemoteError - an error as it crosses the RPC boundary, the text
// carries the kind so clients can tell faults apart
type RemoteError struct {
	Kind   string
	Reason string
	err    error
}

// Remote - attach the kind of an error for an RPC reply
func Remote(err error) error {
	if nil == err {
		return nil
	}
	var r *RemoteError
	if errors.As(err, &r) {
		return err
	}
	return &RemoteError{
		Kind:   Kind(err),
		Reason: Reason(err),
		err:    err,
	}
}

// Report - for deferring on a named error result
func Report(err *error) {
	*err = Remote(*err)
}

func (e *RemoteError) Error() string {
	return e.Kind + ": " + e.Reason
}

func (e *RemoteError) Unwrap() error {
	return e.err
}
