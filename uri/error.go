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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

// Error kinds.
const (
	// UnexpectedChar means a byte is not allowed at its position.
	UnexpectedChar ErrorKind = iota + 1
	// InvalidPctEncoding means a '%' is not followed by two hex digits.
	InvalidPctEncoding
	// EmptyScheme means the reference starts with ':'.
	EmptyScheme
	// InvalidIPLiteral means the text between '[' and ']' is neither an
	// IPv6 address nor an IPvFuture.
	InvalidIPLiteral
	// UnclosedIPLiteral means a '[' in the host has no matching ']'.
	UnclosedIPLiteral
)

var kindNames = map[ErrorKind]string{
	UnexpectedChar:     "UnexpectedChar",
	InvalidPctEncoding: "InvalidPctEncoding",
	EmptyScheme:        "EmptyScheme",
	InvalidIPLiteral:   "InvalidIPLiteral",
	UnclosedIPLiteral:  "UnclosedIPLiteral",
}

// String returns the Go name of the kind, e.g. "UnexpectedChar".
func (k ErrorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Component names a part of a URI reference.
type Component int

// Components, in the order they appear in a URI reference.
const (
	ComponentScheme Component = iota + 1
	ComponentUserinfo
	ComponentHost
	ComponentPort
	ComponentPath
	ComponentQuery
	ComponentFragment
)

var componentNames = map[Component]string{
	ComponentScheme:   "Scheme",
	ComponentUserinfo: "Userinfo",
	ComponentHost:     "Host",
	ComponentPort:     "Port",
	ComponentPath:     "Path",
	ComponentQuery:    "Query",
	ComponentFragment: "Fragment",
}

// String returns the Go name of the component without its prefix, e.g.
// "Host".
func (c Component) String() string {
	if n, ok := componentNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// ParseError is returned by Parse for input that is not a URI reference.
type ParseError struct {
	// Input is the string passed to Parse.
	Input string
	// Index is the byte offset in Input where parsing failed.
	Index int
	// Kind is the reason parsing failed.
	Kind ErrorKind
	// Component is the component that was being parsed.
	Component Component
}

func (e *ParseError) Error() string {
	var what string
	switch e.Kind {
	case UnexpectedChar:
		what = fmt.Sprintf("unexpected character %q in %s", e.Input[e.Index], lower(e.Component))
	case InvalidPctEncoding:
		what = fmt.Sprintf("invalid percent-encoded octet in %s", lower(e.Component))
	case EmptyScheme:
		what = "empty scheme"
	case InvalidIPLiteral:
		what = "invalid IP literal"
	case UnclosedIPLiteral:
		what = "unclosed IP literal"
	default:
		what = e.Kind.String()
	}
	return fmt.Sprintf("invalid URI reference %q: %s at index %d", e.Input, what, e.Index)
}

func lower(c Component) string { return strings.ToLower(c.String()) }

// ErrNoPort is returned by Authority.ParsePort when the authority has no
// port or the port is empty.
var ErrNoPort = errors.New("no port")
