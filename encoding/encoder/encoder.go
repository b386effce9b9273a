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

// Package encoder defines the component tags that bind an encoded string to
// the table it was validated against.
//
// A tag is a zero-sized type. Strings validated for one tag have a different
// Go type than strings validated for another, so a query cannot be passed
// where a path is expected.
package encoder

import "github.com/google/urikit/encoding/table"

// Encoder is implemented by every component tag.
type Encoder interface {
	// Table returns the table that strings of this component conform to.
	Table() *table.Table
}

// PctEncoder is implemented by tags whose table allows percent-encoding.
//
// Decoding is only defined for such tags; see encoding.Decode.
type PctEncoder interface {
	Encoder
	// PctEncoded marks the tag. It does nothing.
	PctEncoded()
}

// Scheme is the tag for the scheme component. Percent-encoding is not
// allowed in a scheme.
type Scheme struct{}

// Table implements Encoder.
func (Scheme) Table() *table.Table { return &table.Scheme }

// Port is the tag for the port subcomponent of an authority.
type Port struct{}

// Table implements Encoder.
func (Port) Table() *table.Table { return &table.Port }

// Userinfo is the tag for the userinfo subcomponent of an authority.
type Userinfo struct{}

func (Userinfo) Table() *table.Table { return &table.Userinfo }
func (Userinfo) PctEncoded()         {}

// RegName is the tag for a registered name host.
type RegName struct{}

func (RegName) Table() *table.Table { return &table.RegName }
func (RegName) PctEncoded()         {}

// Path is the tag for the path component.
type Path struct{}

func (Path) Table() *table.Table { return &table.Path }
func (Path) PctEncoded()         {}

// PathSegment is the tag for a single path segment.
type PathSegment struct{}

func (PathSegment) Table() *table.Table { return &table.Segment }
func (PathSegment) PctEncoded()         {}

// Query is the tag for the query component.
type Query struct{}

func (Query) Table() *table.Table { return &table.Query }
func (Query) PctEncoded()         {}

// Fragment is the tag for the fragment component.
type Fragment struct{}

func (Fragment) Table() *table.Table { return &table.Fragment }
func (Fragment) PctEncoded()         {}

// Data is the tag for arbitrary data that is encoded with only unreserved
// bytes left as is, e.g. a query parameter value.
type Data struct{}

func (Data) Table() *table.Table { return &table.Data }
func (Data) PctEncoded()         {}

// Interface checks.
var (
	_ Encoder    = Scheme{}
	_ Encoder    = Port{}
	_ PctEncoder = Userinfo{}
	_ PctEncoder = RegName{}
	_ PctEncoder = Path{}
	_ PctEncoder = PathSegment{}
	_ PctEncoder = Query{}
	_ PctEncoder = Fragment{}
	_ PctEncoder = Data{}
)
