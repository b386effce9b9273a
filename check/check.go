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

// Package check validates files of URI references, one reference per line.
package check

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar"
	"github.com/golang/glog"
	"github.com/google/urikit/internal/textpos"
	"github.com/google/urikit/uri"
	"golang.org/x/sync/errgroup"
)

// Options configures how input is split into references and how many files
// are checked at once.
type Options struct {
	// Workers bounds the number of files checked concurrently. Values <= 0
	// mean runtime.GOMAXPROCS(0).
	Workers int
	// KeepEmpty checks empty lines as the empty reference instead of
	// skipping them.
	KeepEmpty bool
	// Comments skips lines that start with '#'. Without it such a line is
	// checked as a fragment-only reference.
	Comments bool
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// Entry is the outcome of checking one reference.
type Entry struct {
	// Line is the line of the reference in its source.
	Line textpos.Line
	// Input is the reference text.
	Input string
	// Ref is the parsed reference, or nil if parsing failed.
	Ref *uri.Ref
	// Err is the parse error, or nil.
	Err *uri.ParseError
	// Pos is the position of the offending byte within the source when Err
	// is set.
	Pos textpos.LineColumn
}

// Report collects the entries of one source.
type Report struct {
	// Name is the file name, or a descriptive label for in-memory input.
	Name    string
	Entries []*Entry
}

// Failed returns the number of entries that did not parse.
func (r *Report) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}

func newEntry(line textpos.Line, input string) *Entry {
	e := &Entry{Line: line, Input: input}
	ref, err := uri.Parse(input)
	if err != nil {
		var perr *uri.ParseError
		if !errors.As(err, &perr) {
			panic(fmt.Errorf("uri.Parse returned %T, want *uri.ParseError", err))
		}
		e.Err = perr
		return e
	}
	e.Ref = ref
	return e
}

// Inputs checks each element of inputs as a reference. The entry for
// inputs[i] is reported on line i+1.
func Inputs(name string, inputs []string) *Report {
	r := &Report{Name: name}
	for i, in := range inputs {
		e := newEntry(textpos.LineFromOffset(i), in)
		if e.Err != nil {
			e.Pos = textpos.MakeLineColumn(e.Line, textpos.ColumnFromOffset(e.Err.Index))
		}
		r.Entries = append(r.Entries, e)
	}
	return r
}

// Content checks content line by line. A trailing "\r" is not part of the
// line.
func Content(name string, content []byte, opts Options) *Report {
	r := &Report{Name: name}
	idx := textpos.NewIndex(content)
	for n, start := 0, 0; start < len(content); n++ {
		lineStart := start
		end := bytes.IndexByte(content[start:], '\n')
		if end < 0 {
			end, start = len(content), len(content)
		} else {
			end += start
			start = end + 1
		}
		line := bytes.TrimSuffix(content[lineStart:end], []byte{'\r'})

		switch {
		case len(line) == 0 && !opts.KeepEmpty:
			continue
		case len(line) > 0 && line[0] == '#' && opts.Comments:
			continue
		}
		e := newEntry(textpos.LineFromOffset(n), string(line))
		if e.Err != nil {
			pos, err := idx.Position(lineStart + e.Err.Index)
			if err != nil {
				panic(err)
			}
			e.Pos = pos
		}
		r.Entries = append(r.Entries, e)
	}
	return r
}

// File reads and checks the file at path.
func File(ctx context.Context, path string, opts Options) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	r := Content(path, content, opts)
	glog.V(1).Infof("checked %d references in %s, %d failed", len(r.Entries), path, r.Failed())
	return r, nil
}

// Files expands the glob patterns, which may contain "**", and checks every
// matching regular file concurrently. Reports are returned in path order.
// Matches that cannot be read are skipped with a warning.
func Files(ctx context.Context, patterns []string, opts Options) ([]*Report, error) {
	paths, err := expand(patterns)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.workers())
	for i, p := range paths {
		eg.Go(func() error {
			r, err := File(ctx, p, opts)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if err != nil {
				glog.Warningf("skipping %s: %v", p, err)
				return nil
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := reports[:0]
	failed := 0
	for _, r := range reports {
		if r != nil {
			out = append(out, r)
			failed += r.Failed()
		}
	}
	glog.Infof("checked %d files, %d references failed", len(out), failed)
	return out, nil
}

func expand(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string
	for _, pat := range patterns {
		matches, err := doublestar.Glob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pat, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", pat)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			fi, err := os.Stat(m)
			if err != nil {
				glog.Warningf("skipping %s: %v", m, err)
				continue
			}
			if !fi.Mode().IsRegular() {
				glog.V(1).Infof("skipping non-regular file %s", m)
				continue
			}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
