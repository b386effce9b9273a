// Package refparse is a slow, regular-expression based parser for RFC 3986
// URI references.
//
// It exists to cross-check the uri package: the expressions below are
// transcribed from the ABNF in RFC 3986 Appendix A, and the initial split
// uses the expression from Appendix B.
//
// RFC reference: https://datatracker.ietf.org/doc/html/rfc3986
package refparse

import (
	"fmt"
	"regexp"
)

// Ref holds the components of a URI reference. Optional components carry a
// presence flag so that absent and empty can be told apart.
type Ref struct {
	Scheme    string
	HasScheme bool

	HasAuthority bool
	Userinfo     string
	HasUserinfo  bool
	Host         string
	Port         string
	HasPort      bool

	Path string

	Query    string
	HasQuery bool

	Fragment    string
	HasFragment bool
}

// Parse parses s into its components and checks every component against the
// RFC 3986 grammar.
func Parse(s string) (*Ref, error) {
	m := uriRE.FindStringSubmatchIndex(s)
	if m == nil {
		return nil, fmt.Errorf("%q is not a URI reference - does not match regexp %s", s, uriRE)
	}
	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return s[m[2*i]:m[2*i+1]], true
	}

	r := &Ref{}
	r.Scheme, r.HasScheme = group(uriRESchemeGroup)
	auth, hasAuth := group(uriREAuthorityGroup)
	r.Path, _ = group(uriREPathGroup)
	r.Query, r.HasQuery = group(uriREQueryGroup)
	r.Fragment, r.HasFragment = group(uriREFragmentGroup)

	if r.HasScheme && !schemeRE.MatchString(r.Scheme) {
		return nil, fmt.Errorf("%q is not a URI reference: invalid scheme %q does not match regexp %s", s, r.Scheme, schemeRE)
	}
	if hasAuth {
		if err := r.parseAuthority(auth); err != nil {
			return nil, fmt.Errorf("%q is not a URI reference: %w", s, err)
		}
	}
	if re := pathRE(r.HasScheme, hasAuth); !re.MatchString(r.Path) {
		return nil, fmt.Errorf("%q is not a URI reference: invalid path %q does not match regexp %s", s, r.Path, re)
	}
	if r.HasQuery && !queryRE.MatchString(r.Query) {
		return nil, fmt.Errorf("%q is not a URI reference: invalid query %q does not match regexp %s", s, r.Query, queryRE)
	}
	if r.HasFragment && !fragmentRE.MatchString(r.Fragment) {
		return nil, fmt.Errorf("%q is not a URI reference: invalid fragment %q does not match regexp %s", s, r.Fragment, fragmentRE)
	}
	return r, nil
}

func (r *Ref) parseAuthority(auth string) error {
	m := authorityRE.FindStringSubmatchIndex(auth)
	if m == nil {
		return fmt.Errorf("invalid authority %q does not match regexp %s", auth, authorityRE)
	}
	r.HasAuthority = true
	if m[2*authorityUserinfoGroup] >= 0 {
		r.Userinfo = auth[m[2*authorityUserinfoGroup]:m[2*authorityUserinfoGroup+1]]
		r.HasUserinfo = true
	}
	r.Host = auth[m[2*authorityHostGroup]:m[2*authorityHostGroup+1]]
	if m[2*authorityPortGroup] >= 0 {
		r.Port = auth[m[2*authorityPortGroup]:m[2*authorityPortGroup+1]]
		r.HasPort = true
	}
	return nil
}

// pathRE selects the path production that applies given the presence of the
// scheme and authority.
func pathRE(hasScheme, hasAuth bool) *regexp.Regexp {
	switch {
	case hasAuth:
		return pathAbemptyRE
	case hasScheme:
		return pathSchemeRE
	default:
		return pathNoSchemeRE
	}
}

// Regular expression const strings, transcribed from RFC 3986 Appendix A.
const (
	hex        = `[0-9A-Fa-f]`
	pctEncoded = `%` + hex + hex
	unreserved = `[A-Za-z0-9\-\._~]`
	subDelims  = `[!\$&'\(\)\*\+,;=]`

	pchar = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|[:@])`

	scheme = `[A-Za-z][A-Za-z0-9\+\-\.]*`

	userinfo = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|:)*`
	host     = `(?:` + ipLiteral + `|` + regName + `)`
	// IPv4address is a subset of reg-name and needs no alternative of its own.
	regName = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `)*`
	port    = `[0-9]*`

	authorityCapture       = `(?:(` + userinfo + `)@)?(` + host + `)(?::(` + port + `))?`
	authorityUserinfoGroup = 1
	authorityHostGroup     = 2
	authorityPortGroup     = 3

	segment     = pchar + `*`
	segmentNZ   = pchar + `+`
	segmentNZNC = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|@)+`

	pathAbempty  = `(?:/` + segment + `)*`
	pathAbsolute = `/(?:` + segmentNZ + `(?:/` + segment + `)*)?`
	pathNoScheme = segmentNZNC + `(?:/` + segment + `)*`
	pathRootless = segmentNZ + `(?:/` + segment + `)*`

	query    = `(?:` + pchar + `|[/\?])*`
	fragment = query
)

// IP address related
const (
	ipLiteral = `\[(?:` + ipV6Address + `|` + ipVFuture + `)\]`

	ipVFuture = `[vV]` + hex + `+\.(?:` + unreserved + `|` + subDelims + `|:)+`

	ipV6Address = `(?:` +
		`(?:` + h16 + `:){6}` + ls32 + //                             6( h16 ":" ) ls32
		`|::(?:` + h16 + `:){5}` + ls32 + //                     "::" 5( h16 ":" ) ls32
		`|(?:` + h16 + `)?::(?:` + h16 + `:){4}` + ls32 + //  [ h16 ] "::" 4( h16 ":" ) ls32
		`|(?:(?:` + h16 + `:){0,1}` + h16 + `)?::(?:` + h16 + `:){3}` + ls32 +
		`|(?:(?:` + h16 + `:){0,2}` + h16 + `)?::(?:` + h16 + `:){2}` + ls32 +
		`|(?:(?:` + h16 + `:){0,3}` + h16 + `)?::` + h16 + `:` + ls32 +
		`|(?:(?:` + h16 + `:){0,4}` + h16 + `)?::` + ls32 +
		`|(?:(?:` + h16 + `:){0,5}` + h16 + `)?::` + h16 +
		`|(?:(?:` + h16 + `:){0,6}` + h16 + `)?::` +
		`)`

	h16         = hex + `{1,4}`
	ls32        = `(?:` + h16 + `:` + h16 + `|` + ipV4Address + `)`
	ipV4Address = decOctet + `\.` + decOctet + `\.` + decOctet + `\.` + decOctet

	decOctet = (`(?:[0-9]` + `|` + // 0-9
		`[1-9][0-9]` + `|` + // 10-99
		`1[0-9][0-9]` + `|` + // 100-199
		`2[0-4][0-9]` + `|` + // 200-249
		`25[0-5]` + `)`) // 250-255
)

var (
	// re from RFC 3986 page 50, with (?s) so that '.' also matches newlines.
	uriRE               = mustCompileNamed("uriRE", `(?s)^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?$`)
	uriRESchemeGroup    = 2
	uriREAuthorityGroup = 4
	uriREPathGroup      = 5
	uriREQueryGroup     = 7
	uriREFragmentGroup  = 9

	schemeRE       = mustCompileNamed("schemeRE", "^"+scheme+"$")
	authorityRE    = mustCompileNamed("authorityRE", "^"+authorityCapture+"$")
	pathAbemptyRE  = mustCompileNamed("pathAbemptyRE", "^"+pathAbempty+"$")
	pathSchemeRE   = mustCompileNamed("pathSchemeRE", "^(?:"+pathAbsolute+"|"+pathRootless+")?$")
	pathNoSchemeRE = mustCompileNamed("pathNoSchemeRE", "^(?:"+pathAbsolute+"|"+pathNoScheme+")?$")
	queryRE        = mustCompileNamed("queryRE", "^"+query+"$")
	fragmentRE     = mustCompileNamed("fragmentRE", "^"+fragment+"$")
)

func mustCompileNamed(name, expr string) *regexp.Regexp {
	c, err := regexp.Compile(expr)
	if err != nil {
		panic(fmt.Errorf("failed to compile regexp %s: %w", name, err))
	}
	return c
}
