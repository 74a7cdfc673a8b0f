// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PaymentError GenericError
type PermissionError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	AssetOccupied                = StateError("asset is currently rented")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CollectionAlreadyExists      = ExistsError("collection already registered")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateListing             = ExistsError("asset is already listed")
	InsufficientBalance          = PaymentError("balance is zero")
	InsufficientPayment          = PaymentError("payment is less than the rental cost")
	InvalidAddress               = InvalidError("invalid address")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidBlockSource           = InvalidError("invalid block source")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDuration              = InvalidError("invalid rental duration")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTerms                 = InvalidError("invalid rental terms")
	InvalidToken                 = InvalidError("invalid token")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	LedgerImbalance              = ProcessError("balances exceed ether held")
	MissingParameters            = InvalidError("missing parameters")
	NotAListingId                = InvalidError("not a listing id")
	NotAListingPack              = InvalidError("not a listing pack")
	NotAPayoutPack               = InvalidError("not a payout pack")
	NotFound                     = NotFoundError("listing not found")
	NotInitialised               = ProcessError("not initialised")
	NotOwner                     = PermissionError("caller is not the owner")
	NotTokenOwner                = PermissionError("caller is not the token owner")
	Overflow                     = ArithmeticError("arithmetic overflow")
	PaymentFailed                = ProcessError("value transfer failed")
	RateLimiting                 = InvalidError("rate limiting")
	TokenNotApproved             = PermissionError("pool is not approved for the token")
	TransactionInUse             = ProcessError("transaction already in use")
	UnknownCollection            = NotFoundError("collection not registered")
	UnknownPayout                = NotFoundError("payout not found")
	UnknownToken                 = NotFoundError("token not found")
	Unauthorised                 = PermissionError("unauthorised")
	WithdrawalInProgress         = StateError("withdrawal already in progress")
	WrongNumberOfArguments       = InvalidError("wrong number of arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PaymentError) Error() string    { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e StateError) Error() string      { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool { var t ArithmeticError; return errors.As(e, &t) }
func IsErrExists(e error) bool     { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool    { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool   { var t NotFoundError; return errors.As(e, &t) }
func IsErrPayment(e error) bool    { var t PaymentError; return errors.As(e, &t) }
func IsErrPermission(e error) bool { var t PermissionError; return errors.As(e, &t) }
func IsErrProcess(e error) bool    { var t ProcessError; return errors.As(e, &t) }
func IsErrState(e error) bool      { var t StateError; return errors.As(e, &t) }

// CustodyError - failure reported by the asset custody collaborator
type CustodyError struct {
	Op    string
	Asset string
	Err   error
}

func (e *CustodyError) Error() string {
	if "" == e.Asset {
		return "custody " + e.Op + ": " + e.Err.Error()
	}
	return "custody " + e.Op + " " + e.Asset + ": " + e.Err.Error()
}

func (e *CustodyError) Unwrap() error {
	return e.Err
}

// wrapped - one of the fault instances carrying an underlying cause
type wrapped struct {
	fault error
	cause error
}

// Wrap - attach the underlying cause to a fault instance, the result
// still matches the fault instance with errors.Is
func Wrap(fault error, cause error) error {
	if nil == cause {
		return fault
	}
	return &wrapped{
		fault: fault,
		cause: cause,
	}
}

func (w *wrapped) Error() string {
	return w.fault.Error() + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() error {
	return w.fault
}

// Cause - the underlying error
func (w *wrapped) Cause() error {
	return w.cause
}

// Is - also match anything the cause matches
func (w *wrapped) Is(target error) bool {
	return errors.Is(w.cause, target)
}

// As - allow the cause to satisfy errors.As, e.g. for *CustodyError
func (w *wrapped) As(target interface{}) bool {
	return errors.As(w.cause, target)
}
