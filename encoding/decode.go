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
	"unicode/utf8"

	"github.com/google/urikit/encoding/table"
)

// decode decodes the octets of a validated string. ok is false, and nothing
// is allocated, if s contains no '%'.
func decode(s string) (b []byte, ok bool) {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return nil, false
	}
	b = make([]byte, i, len(s))
	copy(b, s[:i])
	for i < len(s) {
		if s[i] == '%' {
			b = append(b, table.HexVal(s[i+1])<<4|table.HexVal(s[i+2]))
			i += 3
			continue
		}
		b = append(b, s[i])
		i++
	}
	return b, true
}

// Decoded holds the result of Decode: either the original string, when there
// was nothing to decode, or a buffer of decoded bytes.
type Decoded struct {
	borrowed string
	owned    []byte
	isOwned  bool
}

// Borrowed reports whether the result refers to the original string, i.e.
// whether decoding did not allocate.
func (d Decoded) Borrowed() bool { return !d.isOwned }

// Len returns the number of decoded bytes.
func (d Decoded) Len() int {
	if d.isOwned {
		return len(d.owned)
	}
	return len(d.borrowed)
}

// Bytes returns the decoded bytes. The caller must not modify them.
//
// In the borrowed case the bytes are copied from the original string.
func (d Decoded) Bytes() []byte {
	if d.isOwned {
		return d.owned
	}
	return []byte(d.borrowed)
}

// AppendTo appends the decoded bytes to dst.
func (d Decoded) AppendTo(dst []byte) []byte {
	if d.isOwned {
		return append(dst, d.owned...)
	}
	return append(dst, d.borrowed...)
}

// Text returns the decoded bytes as a string, or a *UTF8Error if they are
// not valid UTF-8. A borrowed result is returned without copying.
func (d Decoded) Text() (string, error) {
	if !d.isOwned {
		return d.borrowed, nil
	}
	if n := validPrefix(d.owned); n < len(d.owned) {
		return "", &UTF8Error{Bytes: d.owned, Valid: n}
	}
	return string(d.owned), nil
}

// TextLossy returns the decoded bytes as a string with each run of invalid
// UTF-8 replaced by U+FFFD.
func (d Decoded) TextLossy() string {
	if !d.isOwned {
		return d.borrowed
	}
	return strings.ToValidUTF8(string(d.owned), "\uFFFD")
}

// UTF8Error is returned by Decoded.Text when the decoded bytes are not valid
// UTF-8.
type UTF8Error struct {
	// Bytes are the decoded bytes.
	Bytes []byte
	// Valid is the length of the longest valid UTF-8 prefix of Bytes.
	Valid int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("decoded bytes are not valid UTF-8: invalid sequence at index %d", e.Valid)
}

func validPrefix(b []byte) int {
	i := 0
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return i
}
