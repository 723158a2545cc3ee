// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ahnan4arch/chronoutil/chrono"
	"github.com/ahnan4arch/chronoutil/lib/datetime"
	"github.com/google/go-cmp/cmp"
	"go.starlark.net/starlark"
)

func TestIsDenotation(t *testing.T) {
	for _, test := range []struct {
		line string
		want bool
	}{
		{"2016-08-29", true},
		{"  2016-08-29T21:32", true},
		{"datetime.now()", false},
		{"x = 1", false},
		{"", false},
		{"   ", false},
		{"-01:00", false},
	} {
		if got := IsDenotation(test.line); got != test.want {
			t.Errorf("IsDenotation(%q) = %t, want %t", test.line, got, test.want)
		}
	}
}

func TestPrint(t *testing.T) {
	for _, test := range []struct {
		printer Printer
		in      string
		want    string
	}{
		{*Denotations, "2016-08-29 21:32:31.588", "Monday 2016-08-29 21:32:31.588\n2016-08-29T21:32:31.588\n"},
		{*Denotations, " 2016-08-29T21:32:31.588+02:00 ", "Monday 2016-08-29 21:32:31.588\n2016-08-29T21:32:31.588+02:00\n"},
		{Printer{Layout: chrono.DateOnly}, "2016/8/29 21:32", "2016-08-29\n"},
		{Printer{Layout: chrono.DateAndTime, NoMilliseconds: true}, "2016-08-29 21:32:31.588", "2016-08-29 21:32:31\n"},
		{Printer{Layout: chrono.TimeOnly, ISO: true, Offset: chrono.FromMinutes(-90)}, "2016-08-29 21:32", "21:32:00\n2016-08-29T21:32:00.000-01:30\n"},
		{Printer{Layout: chrono.TimeOnly, ISO: true, Offset: chrono.FromMinutes(-90)}, "2016-08-29T21:32:00+02:00", "21:32:00\n2016-08-29T21:32:00.000+02:00\n"},
		{Printer{JSON: true}, "2016-08-29T21:32:31.588+02:00", "\"2016-08-29T19:32:31.588Z\"\n"},
		{Printer{JSON: true, Offset: chrono.FromMinutes(120)}, "2016-08-29 21:32:31.588", "\"2016-08-29T19:32:31.588Z\"\n"},
	} {
		var buf bytes.Buffer
		if err := test.printer.Print(&buf, test.in); err != nil {
			t.Errorf("Print(%q): %v", test.in, err)
			continue
		}
		if diff := cmp.Diff(test.want, buf.String()); diff != "" {
			t.Errorf("Print(%q) (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestPrintErrors(t *testing.T) {
	var buf bytes.Buffer
	for _, in := range []string{"2016-08-29 21h32", "2016-08-29T21:32+01:00", "2016-13-01"} {
		err := Denotations.Print(&buf, in)
		var ferr *chrono.FormatError
		var rerr *chrono.RangeError
		if !errors.As(err, &ferr) && !errors.As(err, &rerr) {
			t.Errorf("Print(%q) = %v, want a FormatError or RangeError", in, err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("failed conversions wrote %q", buf.String())
	}
}

func TestPrintAll(t *testing.T) {
	in := "2016-08-29\n\n2016-08-29 21h32\n2000-02-29T12:00\n"
	var out, errs bytes.Buffer
	p := &Printer{Layout: chrono.DateTimeAndShortWeekday}
	failed, err := p.PrintAll(&out, &errs, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if diff := cmp.Diff("Mon 2016-08-29 00:00:00\nTue 2000-02-29 12:00:00\n", out.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
	if want := `cannot parse "2016-08-29 21h32": unexpected 'h' at offset 13` + "\n"; errs.String() != want {
		t.Errorf("errors = %q, want %q", errs.String(), want)
	}
}

func TestMakeLoad(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.star")
	src := "epoch = datetime.datetime(1970, 1, 1)\n"
	if err := os.WriteFile(lib, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cyclic := filepath.Join(dir, "cycle.star")
	if err := os.WriteFile(cyclic, []byte("load(\""+filepath.ToSlash(cyclic)+"\", \"x\")\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	predeclared := starlark.StringDict{datetime.ModuleName: datetime.Module}
	load := MakeLoad(predeclared)
	thread := &starlark.Thread{Name: "test", Load: load}

	globals, err := load(thread, lib)
	if err != nil {
		t.Fatal(err)
	}
	epoch, ok := globals["epoch"].(datetime.DateTime)
	if !ok || chrono.DateTime(epoch) != chrono.UnixEpoch {
		t.Errorf("epoch = %v, want %s", globals["epoch"], chrono.UnixEpoch)
	}

	again, _ := load(thread, lib)
	if fmt.Sprintf("%p", again) != fmt.Sprintf("%p", globals) {
		t.Errorf("second load was not served from the cache")
	}

	if _, err := load(thread, cyclic); err == nil || !strings.Contains(describe(err), "cycle in load graph") {
		t.Errorf("cyclic load: got %v, want cycle error", err)
	}
}

func TestDescribe(t *testing.T) {
	if got := describe(errors.New("plain")); got != "plain" {
		t.Errorf("describe(plain) = %q", got)
	}

	thread := &starlark.Thread{Name: "test"}
	predeclared := starlark.StringDict{datetime.ModuleName: datetime.Module}
	_, err := starlark.ExecFile(thread, "bad.star", "datetime.parse(\"2016-13-01\")\n", predeclared)
	if err == nil {
		t.Fatal("bad date was accepted")
	}
	got := describe(err)
	if !strings.Contains(got, "Traceback") || !strings.Contains(got, "month 13 is out of range") {
		t.Errorf("describe(EvalError) = %q, want a backtrace", got)
	}
}
