package encoding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/urikit/encoding/encoder"
)

func TestEString(t *testing.T) {
	q := NewEString[encoder.Query](32)
	q.Encode("name")
	q.PushByte('=')
	q.Encode("José & co")
	q.PushByte('&')
	q.Push(New[encoder.Query]("page=2"))

	type state struct {
		String string
		Len    int
		Pairs  []string
	}
	snapshot := func() state {
		st := state{String: q.String(), Len: q.Len()}
		for kv := range q.AsEStr().Split('&').All() {
			st.Pairs = append(st.Pairs, kv.String())
		}
		return st
	}

	want := state{
		String: "name=Jos%C3%A9%20&%20co&page=2",
		Len:    len("name=Jos%C3%A9%20&%20co&page=2"),
		Pairs:  []string{"name=Jos%C3%A9%20", "%20co", "page=2"},
	}
	if diff := cmp.Diff(want, snapshot()); diff != "" {
		t.Errorf("EString unexpected diff (-want, +got):\n%s", diff)
	}

	q.Reset()
	if diff := cmp.Diff(state{Pairs: []string{""}}, snapshot(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("after Reset unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestEStringEncodesPercent(t *testing.T) {
	var s EString[encoder.PathSegment]
	s.Encode("50%/off")
	if got, want := s.String(), "50%25%2Foff"; got != want {
		t.Errorf("Encode(%q) = %q, want %q", "50%/off", got, want)
	}
	text, err := Decode(s.AsEStr()).Text()
	if err != nil || text != "50%/off" {
		t.Errorf("decoded = %q, %v", text, err)
	}
}

func TestEStringLongInput(t *testing.T) {
	in := make([]byte, 1000)
	for i := range in {
		in[i] = byte(i)
	}
	var s EString[encoder.Data]
	s.EncodeBytes(in)
	if got := Decode(s.AsEStr()).AppendTo(nil); string(got) != string(in) {
		t.Errorf("round trip of %d bytes failed", len(in))
	}
}

func TestEStringPanics(t *testing.T) {
	mustPanic(t, "PushByte('#') on query", func() {
		var s EString[encoder.Query]
		s.PushByte('#')
	})
	mustPanic(t, "PushByte('%') on path", func() {
		var s EString[encoder.Path]
		s.PushByte('%')
	})
	mustPanic(t, "Encode on scheme", func() {
		var s EString[encoder.Scheme]
		s.Encode("http")
	})
}

func TestToOwned(t *testing.T) {
	p := New[encoder.Path]("/a/b")
	o := p.ToOwned()
	o.PushByte('/')
	o.Encode("c d")
	if got, want := o.String(), "/a/b/c%20d"; got != want {
		t.Errorf("owned = %q, want %q", got, want)
	}
	if p.String() != "/a/b" {
		t.Errorf("original changed to %q", p)
	}
}
