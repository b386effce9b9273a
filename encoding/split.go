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
	"iter"
	"strings"

	"github.com/google/urikit/encoding/encoder"
)

// Split iterates over the subslices of an EStr separated by a delimiter.
//
// Subslices can be taken from the front with Next and from the back with
// NextBack; the two ends meet in the middle. Once exhausted, a Split stays
// exhausted.
type Split[E encoder.Encoder] struct {
	rest  string
	delim byte
	done  bool
}

// Next returns the next subslice from the front. ok is false when the
// iterator is exhausted.
func (it *Split[E]) Next() (s EStr[E], ok bool) {
	if it.done {
		return EStr[E]{}, false
	}
	i := strings.IndexByte(it.rest, it.delim)
	if i < 0 {
		it.done = true
		return EStr[E]{it.rest}, true
	}
	s = EStr[E]{it.rest[:i]}
	it.rest = it.rest[i+1:]
	return s, true
}

// NextBack returns the next subslice from the back. ok is false when the
// iterator is exhausted.
func (it *Split[E]) NextBack() (s EStr[E], ok bool) {
	if it.done {
		return EStr[E]{}, false
	}
	i := strings.LastIndexByte(it.rest, it.delim)
	if i < 0 {
		it.done = true
		return EStr[E]{it.rest}, true
	}
	s = EStr[E]{it.rest[i+1:]}
	it.rest = it.rest[:i]
	return s, true
}

// All returns a sequence over the remaining subslices, consuming them from
// the front.
func (it *Split[E]) All() iter.Seq[EStr[E]] {
	return func(yield func(EStr[E]) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Collect returns the remaining subslices as plain strings.
func (it *Split[E]) Collect() []string {
	var out []string
	for s := range it.All() {
		out = append(out, s.String())
	}
	return out
}
