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

package encoding

import (
	"fmt"
	"strings"

	"github.com/google/urikit/encoding/encoder"
)

// EString is a growable percent-encoded string valid under the table of E.
//
// The zero value is an empty string ready to use. An EString must not be
// copied after first use.
type EString[E encoder.Encoder] struct {
	b strings.Builder
}

// NewEString returns an empty EString with room for n bytes.
func NewEString[E encoder.Encoder](n int) *EString[E] {
	s := &EString[E]{}
	s.b.Grow(n)
	return s
}

// AsEStr returns the contents as an EStr. No bytes are copied; the result
// stays valid after further appends.
func (s *EString[E]) AsEStr() EStr[E] { return EStr[E]{s.b.String()} }

// String returns the encoded contents.
func (s *EString[E]) String() string { return s.b.String() }

// Len returns the length of the encoded contents in bytes.
func (s *EString[E]) Len() int { return s.b.Len() }

// Reset empties the string.
func (s *EString[E]) Reset() { s.b.Reset() }

// Push appends an already encoded slice.
func (s *EString[E]) Push(o EStr[E]) { s.b.WriteString(o.s) }

// PushByte appends a single byte unencoded, typically a delimiter such as
// '&' between query parameters.
//
// PushByte panics if the table of E does not allow c unencoded.
func (s *EString[E]) PushByte(c byte) {
	if !tableOf[E]().Allows(c) {
		panic(fmt.Sprintf("byte %q not allowed unencoded", c))
	}
	s.b.WriteByte(c)
}

// Encode appends text, percent-encoding every byte that the table of E does
// not allow unencoded.
//
// Encode panics if the table of E does not allow percent-encoding.
func (s *EString[E]) Encode(text string) {
	s.EncodeBytes([]byte(text))
}

// EncodeBytes is like Encode but takes arbitrary bytes.
func (s *EString[E]) EncodeBytes(b []byte) {
	t := tableOf[E]()
	if !t.AllowsEnc() {
		panic("table does not allow percent-encoding")
	}
	var buf [64]byte
	for len(b) > 0 {
		n := len(b)
		if n > len(buf)/3 {
			n = len(buf) / 3
		}
		s.b.Write(t.Encode(buf[:0], b[:n]))
		b = b[n:]
	}
}
