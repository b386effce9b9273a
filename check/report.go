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

package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/urikit/encoding"
	"github.com/google/urikit/uri"
	"github.com/mitchellh/go-wordwrap"
	"github.com/stoewer/go-strcase"
	"google.golang.org/protobuf/types/known/structpb"
)

// key returns the snake_case form of a Go name, e.g. "UnexpectedChar" becomes
// "unexpected_char".
func key(s fmt.Stringer) string { return strcase.SnakeCase(s.String()) }

// component is one named part of a parsed reference.
type component struct {
	c       uri.Component
	raw     string
	decoded string
	// canDecode is false for components without percent-encoding.
	canDecode bool
}

// components lists the present components of r in order.
func components(r *uri.Ref) []component {
	var out []component
	if s, ok := r.Scheme(); ok {
		out = append(out, component{c: uri.ComponentScheme, raw: s.String()})
	}
	if a := r.Authority(); a != nil {
		if u, ok := a.Userinfo(); ok {
			out = append(out, component{uri.ComponentUserinfo, u.String(), encoding.Decode(u).TextLossy(), true})
		}
		if h, ok := a.RegName(); ok {
			out = append(out, component{uri.ComponentHost, h.String(), encoding.Decode(h).TextLossy(), true})
		} else {
			out = append(out, component{c: uri.ComponentHost, raw: a.Host()})
		}
		if p, ok := a.Port(); ok {
			out = append(out, component{c: uri.ComponentPort, raw: p.String()})
		}
	}
	p := r.Path()
	out = append(out, component{uri.ComponentPath, p.String(), encoding.Decode(p.EStr).TextLossy(), true})
	if q, ok := r.Query(); ok {
		out = append(out, component{uri.ComponentQuery, q.String(), encoding.Decode(q).TextLossy(), true})
	}
	if f, ok := r.Fragment(); ok {
		out = append(out, component{uri.ComponentFragment, f.String(), encoding.Decode(f).TextLossy(), true})
	}
	return out
}

// Struct converts the report to a structpb.Struct suitable for JSON or text
// proto output. When decode is set, decoded component text is included.
func (r *Report) Struct(decode bool) (*structpb.Struct, error) {
	var entries []interface{}
	for _, e := range r.Entries {
		entries = append(entries, e.value(decode))
	}
	return structpb.NewStruct(map[string]interface{}{
		"name":    r.Name,
		"failed":  r.Failed(),
		"entries": entries,
	})
}

func (e *Entry) value(decode bool) map[string]interface{} {
	v := map[string]interface{}{
		"line":  e.Line.Ordinal(),
		"input": e.Input,
	}
	if e.Err != nil {
		v["error"] = map[string]interface{}{
			"kind":      key(e.Err.Kind),
			"component": key(e.Err.Component),
			"index":     e.Err.Index,
			"position":  e.Pos.String(),
			"message":   e.Err.Error(),
		}
		return v
	}
	raw := map[string]interface{}{}
	decoded := map[string]interface{}{}
	for _, c := range components(e.Ref) {
		raw[key(c.c)] = c.raw
		if c.canDecode {
			decoded[key(c.c)] = c.decoded
		}
	}
	v["components"] = raw
	if decode {
		v["decoded"] = decoded
	}
	return v
}

// Structs converts a list of reports to a single structpb.Struct with a
// "reports" field.
func Structs(reports []*Report, decode bool) (*structpb.Struct, error) {
	var list []interface{}
	failed := 0
	for _, r := range reports {
		s, err := r.Struct(decode)
		if err != nil {
			return nil, fmt.Errorf("error converting report %s: %w", r.Name, err)
		}
		list = append(list, s.AsMap())
		failed += r.Failed()
	}
	return structpb.NewStruct(map[string]interface{}{
		"reports": list,
		"failed":  failed,
	})
}

// WriteText writes a human readable form of the report to w. Error messages
// are wrapped at width columns; a width of 0 disables wrapping.
func (r *Report) WriteText(w io.Writer, width uint, decode bool) error {
	b := &strings.Builder{}
	for _, e := range r.Entries {
		if e.Err != nil {
			msg := e.Err.Error()
			if width > 0 {
				msg = wordwrap.WrapString(msg, width)
			}
			fmt.Fprintf(b, "%s:%s: %s\n", r.Name, e.Pos, strings.ReplaceAll(msg, "\n", "\n    "))
			continue
		}
		fmt.Fprintf(b, "%s:%s: %s\n", r.Name, e.Line, e.Input)
		for _, c := range components(e.Ref) {
			fmt.Fprintf(b, "  %-10s %q", key(c.c), c.raw)
			if decode && c.canDecode && c.decoded != c.raw {
				fmt.Fprintf(b, " (%q)", c.decoded)
			}
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
