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

// Package encoding contains percent-encoded string types for the components
// of a URI reference.
//
// An EStr is a string that has been checked against the table of one
// component (see package encoder). It holds the still-encoded text and shares
// storage with whatever string it was cut from; decoding happens on demand
// and allocates only when an escape is present.
//
// RFC reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.1
package encoding

import (
	"fmt"
	"strings"

	"github.com/google/urikit/encoding/encoder"
	"github.com/google/urikit/encoding/table"
)

// EStr is a percent-encoded string slice valid under the table of E.
//
// Every byte of the slice is either allowed unencoded by the table or part of
// a well-formed "%XX" octet, and octets appear only if the table allows
// percent-encoding. The zero value is the empty string, which is valid for
// every component.
//
// Two EStr values compare equal with == iff their encoded bytes are equal.
// Percent-encoding is not normalized: "%41" and "A" are different.
type EStr[E encoder.Encoder] struct {
	s string
}

func tableOf[E encoder.Encoder]() table.Table {
	var e E
	return *e.Table()
}

// NewUnchecked wraps s without validating it.
//
// The caller must guarantee that s is valid under the table of E; the rest
// of this package relies on it. It exists for parsers that validate while
// they slice and should not be used on untrusted input.
func NewUnchecked[E encoder.Encoder](s string) EStr[E] {
	return EStr[E]{s}
}

// New wraps s after validating it.
//
// New panics if s is not properly encoded for E. It is intended for string
// literals; use Validate for input that may be malformed.
func New[E encoder.Encoder](s string) EStr[E] {
	if !tableOf[E]().Validate(s) {
		panic(fmt.Sprintf("improperly encoded string %q", s))
	}
	return EStr[E]{s}
}

// InvalidError is returned by Validate for an improperly encoded string.
type InvalidError struct {
	// Input is the string that failed validation.
	Input string
	// Index is the byte offset of the first invalid byte in Input.
	Index int
}

func (e *InvalidError) Error() string {
	if e.Input[e.Index] == '%' {
		return fmt.Sprintf("invalid percent-encoded octet at index %d of %q", e.Index, e.Input)
	}
	return fmt.Sprintf("unexpected character %q at index %d of %q", e.Input[e.Index], e.Index, e.Input)
}

// Validate wraps s after validating it, returning an *InvalidError if s is
// not properly encoded for E.
func Validate[E encoder.Encoder](s string) (EStr[E], error) {
	if i := tableOf[E]().Check(s); i >= 0 {
		return EStr[E]{}, &InvalidError{Input: s, Index: i}
	}
	return EStr[E]{s}, nil
}

// String returns the encoded string.
func (s EStr[E]) String() string { return s.s }

// Len returns the length of the encoded string in bytes.
func (s EStr[E]) Len() int { return len(s.s) }

// IsEmpty reports whether the string is empty.
func (s EStr[E]) IsEmpty() bool { return s.s == "" }

// Compare compares two slices lexicographically by their encoded bytes.
func (s EStr[E]) Compare(o EStr[E]) int { return strings.Compare(s.s, o.s) }

// Equal reports whether two slices of possibly different components have the
// same encoded bytes.
func Equal[E, F encoder.Encoder](a EStr[E], b EStr[F]) bool { return a.s == b.s }

// ToOwned copies the slice into a new EString.
func (s EStr[E]) ToOwned() *EString[E] {
	o := &EString[E]{}
	o.b.WriteString(s.s)
	return o
}

func checkDelim(delim byte) {
	if !table.Reserved.Allows(delim) {
		panic(fmt.Sprintf("splitting with non-reserved character %q", delim))
	}
}

// Split returns an iterator over the subslices of s separated by delim.
//
// Split panics if delim is not a reserved character (RFC 3986, section 2.2).
func (s EStr[E]) Split(delim byte) *Split[E] {
	checkDelim(delim)
	return &Split[E]{rest: s.s, delim: delim}
}

// SplitOnce splits s on the first occurrence of delim and returns the parts
// before and after it. ok is false if delim is not found.
//
// SplitOnce panics if delim is not a reserved character.
func (s EStr[E]) SplitOnce(delim byte) (before, after EStr[E], ok bool) {
	checkDelim(delim)
	i := strings.IndexByte(s.s, delim)
	if i < 0 {
		return s, EStr[E]{}, false
	}
	return EStr[E]{s.s[:i]}, EStr[E]{s.s[i+1:]}, true
}

// Decode decodes the percent-encoded octets of s.
//
// Decode only accepts components whose table allows percent-encoding; for
// the others the call does not compile. The result borrows s when s has no
// octets to decode, and otherwise owns a newly allocated buffer.
func Decode[E encoder.PctEncoder](s EStr[E]) Decoded {
	if !tableOf[E]().AllowsEnc() {
		panic("table does not allow percent-encoding")
	}
	if b, ok := decode(s.s); ok {
		return Decoded{owned: b, isOwned: true}
	}
	return Decoded{borrowed: s.s}
}
