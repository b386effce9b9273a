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
	"net/netip"
	"strings"

	"github.com/google/urikit/encoding"
	"github.com/google/urikit/encoding/encoder"
	"github.com/google/urikit/encoding/table"
)

// Parse parses s as a URI reference.
//
// On failure the error is a *ParseError holding the offset of the first byte
// that violates the grammar.
func Parse(s string) (*Ref, error) {
	p := &parser{input: s}
	return p.parse()
}

// MustParse is like Parse but panics on error. It is intended for string
// literals.
func MustParse(s string) *Ref {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

type parser struct {
	input string
}

func (p *parser) fail(off int, kind ErrorKind, c Component) error {
	return &ParseError{Input: p.input, Index: off, Kind: kind, Component: c}
}

// validate checks v against t and reports the first violation.
func (p *parser) validate(v view, t table.Table, c Component) error {
	i := v.check(t)
	if i < 0 {
		return nil
	}
	if p.input[i] == '%' && t.AllowsEnc() {
		return p.fail(i, InvalidPctEncoding, c)
	}
	return p.fail(i, UnexpectedChar, c)
}

func (p *parser) parse() (*Ref, error) {
	r := &Ref{raw: p.input}
	v := view{s: p.input}

	// scheme ":"
	n := 0
	for n < len(v.s) && table.Scheme.Allows(v.s[n]) {
		n++
	}
	if n < len(v.s) && v.s[n] == ':' {
		if n == 0 {
			return nil, p.fail(0, EmptyScheme, ComponentScheme)
		}
		if table.Alpha.Allows(v.s[0]) {
			r.scheme = encoding.NewUnchecked[encoder.Scheme](v.head(n).s)
			r.hasScheme = true
		}
	}

	// "//" authority
	if strings.HasPrefix(v.s, "//") {
		v.skip(2)
		end := v.chrAny("/?#")
		if end < 0 {
			end = len(v.s)
		}
		a, err := p.parseAuthority(v.take(end))
		if err != nil {
			return nil, err
		}
		r.auth = a
	}

	// path
	end := v.chrAny("?#")
	if end < 0 {
		end = len(v.s)
	}
	path := v.take(end)
	if !r.hasScheme && r.auth == nil {
		// path-noscheme: the first segment must not contain ':'.
		first := path
		if i := first.chr('/'); i >= 0 {
			first.s = first.s[:i]
		}
		if err := p.validate(first, table.SegmentNoColon, ComponentPath); err != nil {
			return nil, err
		}
	}
	if err := p.validate(path, table.Path, ComponentPath); err != nil {
		return nil, err
	}
	r.path = encoding.Path{EStr: encoding.NewUnchecked[encoder.Path](path.s)}

	// [ "?" query ]
	if v.startsWith('?') {
		v.skip(1)
		end := v.chr('#')
		if end < 0 {
			end = len(v.s)
		}
		q := v.take(end)
		if err := p.validate(q, table.Query, ComponentQuery); err != nil {
			return nil, err
		}
		r.query = encoding.NewUnchecked[encoder.Query](q.s)
		r.hasQuery = true
	}

	// [ "#" fragment ]
	if v.startsWith('#') {
		v.skip(1)
		if err := p.validate(v, table.Fragment, ComponentFragment); err != nil {
			return nil, err
		}
		r.fragment = encoding.NewUnchecked[encoder.Fragment](v.s)
		r.hasFragment = true
	}
	return r, nil
}

// parseAuthority parses authority = [ userinfo "@" ] host [ ":" port ].
func (p *parser) parseAuthority(v view) (*Authority, error) {
	a := &Authority{raw: v.s}

	if i := v.chr('@'); i >= 0 {
		u := v.head(i)
		if err := p.validate(u, table.Userinfo, ComponentUserinfo); err != nil {
			return nil, err
		}
		a.userinfo = encoding.NewUnchecked[encoder.Userinfo](u.s)
		a.hasUserinfo = true
	}

	if v.startsWith('[') {
		end := v.chr(']')
		if end < 0 {
			return nil, p.fail(v.off, UnclosedIPLiteral, ComponentHost)
		}
		host := v.take(end + 1)
		if !validIPLiteral(host.s[1:end]) {
			return nil, p.fail(host.off, InvalidIPLiteral, ComponentHost)
		}
		if v.s != "" && !v.startsWith(':') {
			return nil, p.fail(v.off, UnexpectedChar, ComponentHost)
		}
		a.host = host.s
		a.hostLiteral = true
	} else {
		end := v.chr(':')
		if end < 0 {
			end = len(v.s)
		}
		host := v.take(end)
		if err := p.validate(host, table.RegName, ComponentHost); err != nil {
			return nil, err
		}
		a.host = host.s
	}

	if v.startsWith(':') {
		v.skip(1)
		if err := p.validate(v, table.Port, ComponentPort); err != nil {
			return nil, err
		}
		a.port = encoding.NewUnchecked[encoder.Port](v.s)
		a.hasPort = true
	}
	return a, nil
}

// validIPLiteral reports whether s, the text between '[' and ']', is an
// IPv6address or an IPvFuture.
func validIPLiteral(s string) bool {
	if s != "" && (s[0] == 'v' || s[0] == 'V') {
		return validIPvFuture(s[1:])
	}
	return validIPv6(s)
}

// validIPvFuture checks 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
func validIPvFuture(s string) bool {
	i := 0
	for i < len(s) && table.HexDig.Allows(s[i]) {
		i++
	}
	if i == 0 || i == len(s) || s[i] != '.' {
		return false
	}
	rest := s[i+1:]
	return rest != "" && table.IPvFuture.Validate(rest)
}

func validIPv6(s string) bool {
	// netip accepts zones and plain IPv4, neither of which is an IPv6address.
	if strings.IndexByte(s, ':') < 0 || strings.IndexByte(s, '%') >= 0 {
		return false
	}
	// h16 = 1*4HEXDIG; netip only bounds the value of a group.
	groups := strings.Split(s, ":")
	for i, g := range groups {
		if len(g) > 4 && !(i == len(groups)-1 && strings.IndexByte(g, '.') >= 0) {
			return false
		}
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6()
}
