// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table provides byte tables used to validate and percent-encode the
// components of a URI reference.
//
// A Table records which ASCII bytes may appear unencoded in a grammar
// production of RFC 3986 and whether percent-encoded octets ("%XX") are
// permitted there at all.
//
// RFC reference: https://datatracker.ietf.org/doc/html/rfc3986
package table

import "fmt"

// Table is a set of ASCII bytes plus a flag telling whether percent-encoded
// octets are allowed.
//
// The byte '%' is never a member of the set: percent-encoding is controlled
// by the flag alone, which keeps decoding unambiguous.
type Table struct {
	bits [2]uint64
	enc  bool
}

// New returns a table that allows the bytes of s unencoded.
//
// New panics if s contains '%' or a non-ASCII byte.
func New(s string) Table {
	var t Table
	for i := 0; i < len(s); i++ {
		t = t.with(s[i])
	}
	return t
}

// Range returns a table that allows all bytes from lo to hi inclusive.
func Range(lo, hi byte) Table {
	var t Table
	for c := int(lo); c <= int(hi); c++ {
		t = t.with(byte(c))
	}
	return t
}

func (t Table) with(c byte) Table {
	switch {
	case c >= 128:
		panic(fmt.Sprintf("table: non-ASCII byte %#x", c))
	case c == '%':
		panic("table: '%' cannot be allowed unencoded; use Enc")
	}
	t.bits[c/64] |= 1 << (c % 64)
	return t
}

// Or returns the union of two tables. The result allows percent-encoding if
// either table does.
func (t Table) Or(u Table) Table {
	t.bits[0] |= u.bits[0]
	t.bits[1] |= u.bits[1]
	t.enc = t.enc || u.enc
	return t
}

// Sub returns t with the bytes of u removed. The encoding flag of t is kept.
func (t Table) Sub(u Table) Table {
	t.bits[0] &^= u.bits[0]
	t.bits[1] &^= u.bits[1]
	return t
}

// Enc returns t with percent-encoded octets allowed.
func (t Table) Enc() Table {
	t.enc = true
	return t
}

// Allows reports whether c may appear unencoded.
func (t Table) Allows(c byte) bool {
	return c < 128 && t.bits[c/64]&(1<<(c%64)) != 0
}

// AllowsEnc reports whether percent-encoded octets are allowed.
func (t Table) AllowsEnc() bool { return t.enc }

// Validate reports whether every byte of s is allowed unencoded or belongs to
// a well-formed percent-encoded octet permitted by the table.
func (t Table) Validate(s string) bool { return t.Check(s) < 0 }

// Check returns the index of the first byte of s that violates the table, or
// -1 if s is valid.
//
// A '%' that does not start a well-formed octet, or that appears in a table
// that does not allow percent-encoding, is reported at its own index.
func (t Table) Check(s string) int {
	for i := 0; i < len(s); {
		c := s[i]
		if t.Allows(c) {
			i++
			continue
		}
		if c == '%' && t.enc && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			i += 3
			continue
		}
		return i
	}
	return -1
}

// Encode appends src to dst, writing each byte that the table does not allow
// unencoded as an uppercase percent-encoded octet.
//
// Encode panics if the table does not allow percent-encoding.
func (t Table) Encode(dst, src []byte) []byte {
	if !t.enc {
		panic("table does not allow percent-encoding")
	}
	for _, c := range src {
		if t.Allows(c) {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, '%', upperHex[c>>4], upperHex[c&0xf])
	}
	return dst
}

// String lists the allowed bytes, followed by "%XX" when encoding is allowed.
func (t Table) String() string {
	var b []byte
	for c := 0; c < 128; c++ {
		if t.Allows(byte(c)) {
			b = append(b, byte(c))
		}
	}
	if t.enc {
		b = append(b, "%XX"...)
	}
	return fmt.Sprintf("table{%q}", b)
}

const upperHex = "0123456789ABCDEF"

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// HexVal returns the value of a hexadecimal digit. The result is undefined if
// c is not a hexadecimal digit.
func HexVal(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c <= 'F':
		return c - 'A' + 10
	default:
		return c - 'a' + 10
	}
}
