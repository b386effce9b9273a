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

// Package uri parses URI references as specified in RFC 3986.
//
// Parsing does not copy: every component of a parsed Ref is a substring of
// the input, still percent-encoded, wrapped in the encoding type of that
// component. Use encoding.Decode to decode a component.
//
// RFC reference: https://datatracker.ietf.org/doc/html/rfc3986
package uri

import (
	"fmt"
	"strconv"

	"github.com/google/urikit/encoding"
	"github.com/google/urikit/encoding/encoder"
)

// Ref is a parsed URI reference: either a URI or a relative reference.
//
// The general form is
//
//	[scheme:][//[userinfo@]host[:port]]path[?query][#fragment]
//
// Optional components distinguish absent from empty: "http://h/?" has an
// empty query while "http://h/" has none.
type Ref struct {
	raw string

	scheme    encoding.EStr[encoder.Scheme]
	hasScheme bool

	auth *Authority
	path encoding.Path

	query    encoding.EStr[encoder.Query]
	hasQuery bool

	fragment    encoding.EStr[encoder.Fragment]
	hasFragment bool
}

// String returns the reference as it was parsed.
func (r *Ref) String() string { return r.raw }

// Scheme returns the scheme component. ok is false for a relative reference.
func (r *Ref) Scheme() (s encoding.EStr[encoder.Scheme], ok bool) {
	return r.scheme, r.hasScheme
}

// HasScheme reports whether the reference has a scheme, i.e. is a URI.
func (r *Ref) HasScheme() bool { return r.hasScheme }

// IsRelative reports whether the reference is a relative reference.
func (r *Ref) IsRelative() bool { return !r.hasScheme }

// Authority returns the authority component, or nil if there is none.
func (r *Ref) Authority() *Authority { return r.auth }

// Path returns the path component. The path is always defined, but may be
// empty.
func (r *Ref) Path() encoding.Path { return r.path }

// Query returns the query component without the leading '?'.
func (r *Ref) Query() (q encoding.EStr[encoder.Query], ok bool) {
	return r.query, r.hasQuery
}

// Fragment returns the fragment component without the leading '#'.
func (r *Ref) Fragment() (f encoding.EStr[encoder.Fragment], ok bool) {
	return r.fragment, r.hasFragment
}

// Authority is the authority component of a URI reference.
type Authority struct {
	raw string

	userinfo    encoding.EStr[encoder.Userinfo]
	hasUserinfo bool

	host        string
	hostLiteral bool

	port    encoding.EStr[encoder.Port]
	hasPort bool
}

// String returns the authority without the leading "//".
func (a *Authority) String() string { return a.raw }

// Userinfo returns the userinfo subcomponent without the trailing '@'.
func (a *Authority) Userinfo() (u encoding.EStr[encoder.Userinfo], ok bool) {
	return a.userinfo, a.hasUserinfo
}

// Host returns the host subcomponent as it appears in the reference,
// including the brackets of an IP literal. The host may be empty.
func (a *Authority) Host() string { return a.host }

// RegName returns the host as a registered name. ok is false when the host
// is an IP literal. An IPv4 address is returned as a registered name too.
func (a *Authority) RegName() (h encoding.EStr[encoder.RegName], ok bool) {
	if a.hostLiteral {
		return encoding.EStr[encoder.RegName]{}, false
	}
	return encoding.NewUnchecked[encoder.RegName](a.host), true
}

// IsIPLiteral reports whether the host is enclosed in brackets.
func (a *Authority) IsIPLiteral() bool { return a.hostLiteral }

// Port returns the port subcomponent without the leading ':'. The port may be
// empty, as in "http://example.com:/".
func (a *Authority) Port() (p encoding.EStr[encoder.Port], ok bool) {
	return a.port, a.hasPort
}

// ParsePort converts the port to a number. It returns ErrNoPort if the port
// is absent or empty.
func (a *Authority) ParsePort() (uint16, error) {
	if !a.hasPort || a.port.IsEmpty() {
		return 0, ErrNoPort
	}
	n, err := strconv.ParseUint(a.port.String(), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("port %q out of range: %w", a.port, err)
	}
	return uint16(n), nil
}
