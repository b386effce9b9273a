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

// Program urisplit parses URI references and prints their components.
//
// References are taken from the command line, or with -files from files
// matching the given glob patterns, one reference per line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/google/urikit/check"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
)

const (
	formatText      = "text"
	formatJSON      = "json"
	formatPrototext = "prototext"
)

var cfg = registerFlags(flag.CommandLine)

// errFailed is returned by run when at least one reference did not parse.
var errFailed = errors.New("some references failed to parse")

type config struct {
	format    string
	decode    bool
	files     bool
	workers   int
	wrap      uint
	keepEmpty bool
	comments  bool
}

func registerFlags(fs *flag.FlagSet) *config {
	cfg := &config{}
	fs.StringVar(&cfg.format, "format", formatText, "output format: text, json or prototext")
	fs.BoolVar(&cfg.decode, "decode", false, "also print percent-decoded component text")
	fs.BoolVar(&cfg.files, "files", false, "treat arguments as glob patterns of files with one URI reference per line")
	fs.IntVar(&cfg.workers, "workers", 0, "number of files checked concurrently; 0 means GOMAXPROCS")
	fs.UintVar(&cfg.wrap, "wrap", 100, "wrap error messages in text output at this column; 0 disables wrapping")
	fs.BoolVar(&cfg.keepEmpty, "keep_empty", false, "with -files, check empty lines as the empty reference")
	fs.BoolVar(&cfg.comments, "comments", false, "with -files, skip lines starting with '#'")
	return cfg
}

func main() {
	flag.Parse()
	err := run(context.Background(), cfg, flag.Args(), os.Stdout)
	if errors.Is(err, errFailed) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal urisplit error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, args []string, w io.Writer) error {
	switch cfg.format {
	case formatText, formatJSON, formatPrototext:
	default:
		return fmt.Errorf("unknown -format %q", cfg.format)
	}
	if len(args) == 0 {
		return fmt.Errorf("no arguments; pass URI references, or glob patterns with -files")
	}

	var reports []*check.Report
	if cfg.files {
		var err error
		reports, err = check.Files(ctx, args, check.Options{
			Workers:   cfg.workers,
			KeepEmpty: cfg.keepEmpty,
			Comments:  cfg.comments,
		})
		if err != nil {
			return err
		}
	} else {
		reports = []*check.Report{check.Inputs("arg", args)}
	}

	if err := write(w, cfg, reports); err != nil {
		return err
	}
	failed := 0
	for _, r := range reports {
		failed += r.Failed()
	}
	if failed > 0 {
		glog.Infof("%d references failed to parse", failed)
		return errFailed
	}
	return nil
}

func write(w io.Writer, cfg *config, reports []*check.Report) error {
	if cfg.format == formatText {
		for _, r := range reports {
			if err := r.WriteText(w, cfg.wrap, cfg.decode); err != nil {
				return err
			}
		}
		return nil
	}

	msg, err := check.Structs(reports, cfg.decode)
	if err != nil {
		return err
	}
	var out string
	switch cfg.format {
	case formatJSON:
		out = protojson.MarshalOptions{Multiline: true, Indent: "  "}.Format(msg)
	case formatPrototext:
		out = prototext.Format(msg)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
