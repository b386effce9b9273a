package check

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// summary is a comparable digest of an Entry.
type summary struct {
	Line  int
	Input string
	Kind  string
	Pos   string
}

func summarize(r *Report) []summary {
	var out []summary
	for _, e := range r.Entries {
		s := summary{Line: e.Line.Ordinal(), Input: e.Input}
		if e.Err != nil {
			s.Kind = e.Err.Kind.String()
			s.Pos = e.Pos.String()
		}
		out = append(out, s)
	}
	return out
}

func TestContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    Options
		want    []summary
	}{
		{
			name:    "basic",
			content: "http://a/\nhttp://ex ample.com/\n",
			want: []summary{
				{Line: 1, Input: "http://a/"},
				{Line: 2, Input: "http://ex ample.com/", Kind: "UnexpectedChar", Pos: "2:10"},
			},
		},
		{
			name:    "crlf",
			content: "a:b\r\n:c\r\n",
			want: []summary{
				{Line: 1, Input: "a:b"},
				{Line: 2, Input: ":c", Kind: "EmptyScheme", Pos: "2:1"},
			},
		},
		{
			name:    "empty lines skipped",
			content: "\n\na:b\n\n",
			want:    []summary{{Line: 3, Input: "a:b"}},
		},
		{
			name:    "empty lines kept",
			content: "a:b\n\nc:d",
			opts:    Options{KeepEmpty: true},
			want: []summary{
				{Line: 1, Input: "a:b"},
				{Line: 2, Input: ""},
				{Line: 3, Input: "c:d"},
			},
		},
		{
			name:    "hash lines are references by default",
			content: "#frag\n# comment\n",
			want: []summary{
				{Line: 1, Input: "#frag"},
				{Line: 2, Input: "# comment", Kind: "UnexpectedChar", Pos: "2:2"},
			},
		},
		{
			name:    "hash lines are comments with Comments",
			content: "# comment\nhttp://h\n",
			opts:    Options{Comments: true},
			want:    []summary{{Line: 2, Input: "http://h"}},
		},
		{
			name:    "no trailing newline",
			content: "x:y",
			want:    []summary{{Line: 1, Input: "x:y"}},
		},
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Content("test", []byte(tt.content), tt.opts)
			if diff := cmp.Diff(tt.want, summarize(got), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Content(%q) unexpected diff (-want, +got):\n%s", tt.content, diff)
			}
		})
	}
}

func TestInputs(t *testing.T) {
	r := Inputs("args", []string{"http://h/", "http://h/%zz"})
	want := []summary{
		{Line: 1, Input: "http://h/"},
		{Line: 2, Input: "http://h/%zz", Kind: "InvalidPctEncoding", Pos: "2:10"},
	}
	if diff := cmp.Diff(want, summarize(r)); diff != "" {
		t.Errorf("Inputs unexpected diff (-want, +got):\n%s", diff)
	}
	if r.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", r.Failed())
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0660); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt":       "http://a/\n",
		"sub/b.txt":   "http://b/\nbad uri\n",
		"sub/c/d.txt": "urn:x\n",
		"skip.md":     "ignored\n",
	})
	reports, err := Files(context.Background(), []string{filepath.Join(dir, "**", "*.txt")}, Options{Workers: 2})
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	var got []string
	failed := 0
	for _, r := range reports {
		rel, err := filepath.Rel(dir, r.Name)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, filepath.ToSlash(rel))
		failed += r.Failed()
	}
	want := []string{"a.txt", "sub/b.txt", "sub/c/d.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Files() unexpected files (-want, +got):\n%s", diff)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestFilesNoMatch(t *testing.T) {
	dir := t.TempDir()
	if _, err := Files(context.Background(), []string{filepath.Join(dir, "*.txt")}, Options{}); err == nil {
		t.Errorf("Files() with no matches succeeded, want error")
	}
}

func TestFilesCanceled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "a:b\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Files(ctx, []string{filepath.Join(dir, "*.txt")}, Options{}); err != context.Canceled {
		t.Errorf("Files() with canceled context = %v, want %v", err, context.Canceled)
	}
}

func TestStruct(t *testing.T) {
	r := Inputs("args", []string{"http://caf%C3%A9.example:80/a%20b?q#f", "http://ex ample.com/"})
	s, err := r.Struct(true)
	if err != nil {
		t.Fatalf("Struct() failed: %v", err)
	}
	want := map[string]interface{}{
		"name":   "args",
		"failed": 1.0,
		"entries": []interface{}{
			map[string]interface{}{
				"line":  1.0,
				"input": "http://caf%C3%A9.example:80/a%20b?q#f",
				"components": map[string]interface{}{
					"scheme":   "http",
					"host":     "caf%C3%A9.example",
					"port":     "80",
					"path":     "/a%20b",
					"query":    "q",
					"fragment": "f",
				},
				"decoded": map[string]interface{}{
					"host":     "café.example",
					"path":     "/a b",
					"query":    "q",
					"fragment": "f",
				},
			},
			map[string]interface{}{
				"line":  2.0,
				"input": "http://ex ample.com/",
				"error": map[string]interface{}{
					"kind":      "unexpected_char",
					"component": "host",
					"index":     9.0,
					"position":  "2:10",
					"message":   `invalid URI reference "http://ex ample.com/": unexpected character ' ' in host at index 9`,
				},
			},
		},
	}
	if diff := cmp.Diff(want, s.AsMap()); diff != "" {
		t.Errorf("Struct() unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestWriteText(t *testing.T) {
	r := Inputs("args", []string{"s://h/a%20b", "a b"})
	b := &strings.Builder{}
	if err := r.WriteText(b, 0, true); err != nil {
		t.Fatal(err)
	}
	want := `args:1: s://h/a%20b
  scheme     "s"
  host       "h"
  path       "/a%20b" ("/a b")
args:2:2: invalid URI reference "a b": unexpected character ' ' in path at index 1
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("WriteText() unexpected diff (-want, +got):\n%s", diff)
	}
}
