// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wei - ether amounts as 256 bit unsigned wei values
//
// one ether is 10^18 wei, all arithmetic is overflow checked
package wei

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/nftpoold/fault"
)

// Decimals - number of decimal places in one ether
const Decimals = 18

// PackedSize - bytes in a packed amount
const PackedSize = 32

// Amount - a non-negative number of wei
type Amount struct {
	v uint256.Int
}

// one ether in wei
var etherUnit = uint256.NewInt(1000000000000000000)

// Zero - the zero amount
func Zero() Amount {
	return Amount{}
}

// FromUint64 - an amount of wei
func FromUint64(n uint64) Amount {
	a := Amount{}
	a.v.SetUint64(n)
	return a
}

// FromWei - parse a decimal wei string
func FromWei(s string) (Amount, error) {
	a := Amount{}
	s = strings.TrimSpace(s)
	if "" == s || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return a, fault.InvalidAmount
	}
	err := a.v.SetFromDecimal(s)
	if nil != err {
		return Amount{}, fault.InvalidAmount
	}
	return a, nil
}

// FromEther - parse a decimal ether string with up to 18 places
//
// e.g. "1.5" is 1500000000000000000 wei
func FromEther(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if "" == s || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return Amount{}, fault.InvalidAmount
	}

	whole := s
	fraction := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		fraction = s[i+1:]
	}
	if "" == whole {
		whole = "0"
	}
	if len(fraction) > Decimals || strings.ContainsAny(fraction, ".+-") {
		return Amount{}, fault.InvalidAmount
	}
	fraction += strings.Repeat("0", Decimals-len(fraction))

	w, err := FromWei(whole)
	if nil != err {
		return Amount{}, err
	}
	f, err := FromWei(fraction)
	if nil != err {
		return Amount{}, err
	}

	result := Amount{}
	if _, overflow := result.v.MulOverflow(&w.v, etherUnit); overflow {
		return Amount{}, fault.Overflow
	}
	if _, overflow := result.v.AddOverflow(&result.v, &f.v); overflow {
		return Amount{}, fault.Overflow
	}
	return result, nil
}

// Add - overflow checked sum
func (a Amount) Add(b Amount) (Amount, error) {
	result := Amount{}
	if _, overflow := result.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, fault.Overflow
	}
	return result, nil
}

// Sub - checked difference, fails if b > a
func (a Amount) Sub(b Amount) (Amount, error) {
	result := Amount{}
	if _, underflow := result.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, fault.Overflow
	}
	return result, nil
}

// MulUint64 - overflow checked product with a count
func (a Amount) MulUint64(n uint64) (Amount, error) {
	result := Amount{}
	if _, overflow := result.v.MulOverflow(&a.v, uint256.NewInt(n)); overflow {
		return Amount{}, fault.Overflow
	}
	return result, nil
}

// Cmp - compare: -1 if a < b, 0 if equal, +1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// IsZero - true for zero wei
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// String - decimal wei
func (a Amount) String() string {
	return a.v.Dec()
}

// Ether - decimal ether with trailing zeros removed
func (a Amount) Ether() string {
	s := a.v.Dec()
	if len(s) <= Decimals {
		s = strings.Repeat("0", Decimals-len(s)+1) + s
	}
	whole := s[:len(s)-Decimals]
	fraction := strings.TrimRight(s[len(s)-Decimals:], "0")
	if "" == fraction {
		return whole
	}
	return whole + "." + fraction
}

// Pack - fixed 32 byte big endian
func (a Amount) Pack() []byte {
	b := a.v.Bytes32()
	return b[:]
}

// Unpack - read a packed amount
func Unpack(buffer []byte) (Amount, int, error) {
	if len(buffer) < PackedSize {
		return Amount{}, 0, fault.InvalidAmount
	}
	a := Amount{}
	a.v.SetBytes32(buffer[:PackedSize])
	return a, PackedSize, nil
}

// MarshalText - decimal wei, so JSON carries no precision loss
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.v.Dec()), nil
}

// UnmarshalText - decimal wei
func (a *Amount) UnmarshalText(s []byte) error {
	v, err := FromWei(string(s))
	if nil != err {
		return err
	}
	*a = v
	return nil
}
