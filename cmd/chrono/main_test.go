// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/ahnan4arch/chronoutil/chrono"
	"github.com/ahnan4arch/chronoutil/repl"
	"github.com/google/go-cmp/cmp"
)

func TestNewPrinter(t *testing.T) {
	got, err := newPrinter("date", "-01:30", true, true, false)
	if err != nil {
		t.Fatal(err)
	}
	want := &repl.Printer{
		Layout:         chrono.DateOnly,
		ISO:            true,
		NoMilliseconds: true,
		Offset:         chrono.FromMinutes(-90),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("newPrinter (-want +got):\n%s", diff)
	}

	if p, err := newPrinter("weekday", "", false, false, true); err != nil || !p.JSON || p.Offset != 0 {
		t.Errorf("newPrinter(weekday, json) = %+v, %v", p, err)
	}
}

func TestNewPrinterErrors(t *testing.T) {
	if _, err := newPrinter("rfc1123", "", false, false, false); err == nil {
		t.Error("unknown layout was accepted")
	}
	_, err := newPrinter("date", "02:00", false, false, false)
	var ferr *chrono.FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("bad offset: got %v, want a FormatError", err)
	}
}
