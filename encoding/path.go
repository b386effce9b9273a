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
	"strings"

	"github.com/google/urikit/encoding/encoder"
)

// Path is the path component of a URI reference.
//
// See https://datatracker.ietf.org/doc/html/rfc3986#section-3.3.
type Path struct {
	EStr[encoder.Path]
}

// NewPath validates s as a path. It panics if s is improperly encoded.
func NewPath(s string) Path { return Path{New[encoder.Path](s)} }

// IsAbsolute reports whether the path begins with "/".
func (p Path) IsAbsolute() bool { return strings.HasPrefix(p.s, "/") }

// IsRootless reports whether the path does not begin with "/".
func (p Path) IsRootless() bool { return !p.IsAbsolute() }

// Segments returns an iterator over the path segments.
//
// The empty string before a leading "/" is not a segment, and an empty path
// has no segments at all:
//
//	""               => []
//	"/"              => [""]
//	"a/b/c"          => ["a", "b", "c"]
//	"/path/to//dir/" => ["path", "to", "", "dir", ""]
func (p Path) Segments() *Split[encoder.PathSegment] {
	return &Split[encoder.PathSegment]{
		rest:  strings.TrimPrefix(p.s, "/"),
		delim: '/',
		done:  p.s == "",
	}
}
