// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, low bits first, the top bit of each byte
// flags a continuation except in the ninth byte which holds eight
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

// AppendVarint64 - append the Varint64 of value to a buffer
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// FromVarint64 - decode a Varint64 from the start of buffer
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)
	for i, b := range buffer {
		if Varint64MaximumBytes-1 == i {
			return result | uint64(b)<<shift, i + 1
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return result, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// AppendPrefixed - append Varint64(length) ++ data
func AppendPrefixed(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// Unpacker - sequential reads from a packed record
//
// the first short read marks the unpacker failed, every later read
// then returns a zero value
type Unpacker struct {
	buffer []byte
	n      int
	failed bool
}

// NewUnpacker - start reading at the beginning of buffer
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Varint64 - next Varint64
func (u *Unpacker) Varint64() uint64 {
	if u.failed {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.failed = true
		return 0
	}
	u.n += count
	return value
}

// Fixed - next length bytes
func (u *Unpacker) Fixed(length int) []byte {
	if u.failed || length < 0 || length > len(u.buffer)-u.n {
		u.failed = true
		return nil
	}
	b := u.buffer[u.n : u.n+length]
	u.n += length
	return b
}

// Prefixed - next Varint64(length) ++ data
func (u *Unpacker) Prefixed() []byte {
	length := u.Varint64()
	if u.failed || length > uint64(len(u.buffer)-u.n) {
		u.failed = true
		return nil
	}
	return u.Fixed(int(length))
}

// Remaining - unread bytes, for decoders that report their own length
func (u *Unpacker) Remaining() []byte {
	if u.failed {
		return nil
	}
	return u.buffer[u.n:]
}

// Skip - consume bytes already decoded from Remaining
func (u *Unpacker) Skip(count int) {
	u.Fixed(count)
}

// Fail - record a failure found by an outside decoder
func (u *Unpacker) Fail() {
	u.failed = true
}

// Ok - no read has failed
func (u *Unpacker) Ok() bool {
	return !u.failed
}

// Done - no read has failed and all of the buffer was consumed
func (u *Unpacker) Done() bool {
	return !u.failed && u.n == len(u.buffer)
}
