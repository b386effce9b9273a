package uri

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/urikit/internal/refparse"
)

func fromRefparse(r *refparse.Ref) parts {
	opt := func(s string, ok bool) *string {
		if !ok {
			return nil
		}
		return ptr(s)
	}
	p := parts{
		Scheme:   opt(r.Scheme, r.HasScheme),
		Path:     r.Path,
		Query:    opt(r.Query, r.HasQuery),
		Fragment: opt(r.Fragment, r.HasFragment),
	}
	if r.HasAuthority {
		p.Userinfo = opt(r.Userinfo, r.HasUserinfo)
		p.Host = ptr(r.Host)
		p.Port = opt(r.Port, r.HasPort)
	}
	return p
}

var fuzzSeeds = []string{
	"",
	"foo://user@example.com:8042/over/there?name=ferret#nose",
	"urn:example:animal:ferret:nose",
	"http://[2001:db8::7]:80/?#",
	"http://[v1.fe80::a+en1]/",
	"http://[::ffff:192.0.2.1]",
	"http://[1:2:3:4:5:6:7::]",
	"http://[1:2:3:4::5:6:7:8]",
	"http://[::1",
	"http://[00000000::0]",
	"http://[1:00002::3]",
	"http://ex ample.com/",
	"//@:/",
	":a",
	"1a:b",
	"a/b:c",
	"#%",
	"?%2g",
	"a:\n",
	"http://h/\xff",
}

func FuzzParse(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, err := Parse(s)
		want, wantErr := refparse.Parse(s)
		if (err == nil) != (wantErr == nil) {
			t.Fatalf("Parse(%q) error = %v, reference parser error = %v", s, err, wantErr)
		}
		if err != nil {
			return
		}
		if diff := cmp.Diff(fromRefparse(want), flatten(got)); diff != "" {
			t.Errorf("Parse(%q) disagrees with reference parser (-want, +got):\n%s", s, diff)
		}
	})
}
