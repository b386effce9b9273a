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

package uri

import (
	"strings"

	"github.com/google/urikit/encoding/table"
)

// view is a substring of the parser input together with its byte offset in
// the input. Views are only ever narrowed by reslicing, so off+i is always
// the position of s[i] in the original string.
type view struct {
	s   string
	off int
}

// chr returns the index of the first c in v, or -1.
func (v view) chr(c byte) int { return strings.IndexByte(v.s, c) }

// chrAny returns the index of the first byte of v that is in chars, or -1.
func (v view) chrAny(chars string) int { return strings.IndexAny(v.s, chars) }

// head splits v at i, dropping the byte at i. It returns the part before i
// and leaves the part after it in v.
func (v *view) head(i int) view {
	h := view{v.s[:i], v.off}
	v.s, v.off = v.s[i+1:], v.off+i+1
	return h
}

// take returns the part of v before i and leaves the rest, starting at i, in
// v. Unlike head, the byte at i is kept.
func (v *view) take(i int) view {
	h := view{v.s[:i], v.off}
	v.s, v.off = v.s[i:], v.off+i
	return h
}

// skip drops the first n bytes of v.
func (v *view) skip(n int) {
	v.s, v.off = v.s[n:], v.off+n
}

// startsWith reports whether v begins with c.
func (v view) startsWith(c byte) bool { return v.s != "" && v.s[0] == c }

// check validates v against t and returns the absolute offset of the first
// invalid byte, or -1.
func (v view) check(t table.Table) int {
	if i := t.Check(v.s); i >= 0 {
		return v.off + i
	}
	return -1
}
