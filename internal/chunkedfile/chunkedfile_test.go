// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunkedfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testReporter struct {
	reported []string
}

func (r *testReporter) Errorf(format string, args ...interface{}) {
	r.reported = append(r.reported, fmt.Sprintf(format, args...))
}

func (r *testReporter) check(t *testing.T, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, r.reported); diff != "" {
		t.Errorf("reported errors (-want +got):\n%s", diff)
	}
	r.reported = nil
}

const script = `d = datetime.parse("2016-13-01") ### "month 13"
---
d = datetime.parse("2016-08-29")
assert.eq(d.weekday, "Monday")
`

func TestParse(t *testing.T) {
	r := &testReporter{}
	chunks := Parse("dates.star", script, r)
	r.check(t)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}

	first := chunks[0]
	if want := `d = datetime.parse("2016-13-01") ### "month 13"`; first.Source != want {
		t.Errorf("first chunk = %q, want %q", first.Source, want)
	}
	if first.Expected() != 1 {
		t.Fatalf("first chunk expects %d errors, want 1", first.Expected())
	}
	first.GotError(1, "parse: month 13 is out of range")
	r.check(t)
	first.Done()
	r.check(t)

	// The same error a second time is no longer expected.
	first.GotError(1, "parse: month 13 is out of range")
	r.check(t, "\ndates.star:1: unexpected error: parse: month 13 is out of range")

	second := chunks[1]
	if want := "\n\nd = datetime.parse(\"2016-08-29\")\nassert.eq(d.weekday, \"Monday\")\n"; second.Source != want {
		t.Errorf("second chunk = %q, want %q", second.Source, want)
	}
	if second.Expected() != 0 {
		t.Errorf("second chunk expects %d errors, want 0", second.Expected())
	}
	second.GotError(4, "assert.eq: failed")
	r.check(t, "\ndates.star:4: unexpected error: assert.eq: failed")
}

func TestMismatchAndMissing(t *testing.T) {
	r := &testReporter{}
	chunks := Parse("x.star", "a ### \"day\"\nb ### \"hour\"\n", r)
	r.check(t)

	chunk := chunks[0]
	chunk.GotError(1, "month 13 is out of range")
	r.check(t, "\nx.star:1: error \"month 13 is out of range\" does not match pattern \"day\"")
	chunk.Done()
	r.check(t, "\nx.star:2: expected error matching \"hour\"")
}

func TestBadAnnotations(t *testing.T) {
	r := &testReporter{}
	Parse("x.star", "a ### day\n---\nb ### \"(\"\n", r)
	if len(r.reported) != 2 {
		t.Fatalf("got %d reports, want 2: %q", len(r.reported), r.reported)
	}
	if want := "\nx.star:1: not a quoted regexp: day"; r.reported[0] != want {
		t.Errorf("got %q, want %q", r.reported[0], want)
	}
}

func TestRead(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dates.star")
	crlf := "x = 1\r\n---\r\ny = 2 ### \"boom\"\r\n"
	if err := os.WriteFile(filename, []byte(crlf), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &testReporter{}
	chunks := Read(filename, r)
	r.check(t)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	chunks[1].GotError(3, "boom")
	chunks[1].Done()
	r.check(t)

	Read(filepath.Join(t.TempDir(), "missing.star"), r)
	if len(r.reported) != 1 {
		t.Errorf("missing file: got %d reports, want 1", len(r.reported))
	}
}
