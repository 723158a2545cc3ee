// Copyright 2020 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronopb_test

import (
	"testing"

	"github.com/ahnan4arch/chronoutil/chrono"
	"github.com/ahnan4arch/chronoutil/chronopb"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestTimestamp(t *testing.T) {
	for _, test := range []struct {
		iso  string
		want *timestamppb.Timestamp
	}{
		{"1970-01-01T00:00:00.000", &timestamppb.Timestamp{}},
		{"2016-08-29T21:32:31.588+02:00", &timestamppb.Timestamp{Seconds: 1472499151, Nanos: 588000000}},
		{"2016-08-29T18:02:31.588-01:30", &timestamppb.Timestamp{Seconds: 1472499151, Nanos: 588000000}},
		{"1969-12-31T23:59:59.500", &timestamppb.Timestamp{Seconds: -1, Nanos: 500000000}},
		{"0001-01-01T00:00:00.000", &timestamppb.Timestamp{Seconds: -62135596800}},
	} {
		dt, offset, err := chrono.ParseISO(test.iso)
		if err != nil {
			t.Fatal(err)
		}
		got := chronopb.Timestamp(dt, offset)
		if diff := cmp.Diff(test.want, got, protocmp.Transform()); diff != "" {
			t.Errorf("Timestamp(%s) (-want +got):\n%s", test.iso, diff)
		}

		back, err := chronopb.DateTime(got)
		if err != nil {
			t.Errorf("DateTime(%v): %v", got, err)
			continue
		}
		if want := dt.Add(-offset); back != want {
			t.Errorf("DateTime(Timestamp(%s)) = %s, want %s", test.iso, back, want)
		}
	}
}

func TestDateTimeTruncatesNanos(t *testing.T) {
	dt, err := chronopb.DateTime(&timestamppb.Timestamp{Seconds: 1472499151, Nanos: 588539899})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dt.TimeOfDay().Ticks()%chrono.TicksPerSecond, int64(5885398); got != want {
		t.Errorf("sub-second ticks = %d, want %d", got, want)
	}
}

func TestDateTimeInvalid(t *testing.T) {
	for _, ts := range []*timestamppb.Timestamp{
		nil,
		{Seconds: 253402300800}, // 10000-01-01
		{Nanos: -1},
		{Nanos: 1e9},
	} {
		if dt, err := chronopb.DateTime(ts); err == nil {
			t.Errorf("DateTime(%v) = %s, want error", ts, dt)
		}
	}
}

func TestDuration(t *testing.T) {
	for _, test := range []struct {
		ts   chrono.TimeSpan
		want *durationpb.Duration
	}{
		{0, &durationpb.Duration{}},
		{chrono.FromMinutes(120), &durationpb.Duration{Seconds: 7200}},
		{chrono.FromMinutes(-90), &durationpb.Duration{Seconds: -5400}},
		{chrono.FromMilliseconds(-1500), &durationpb.Duration{Seconds: -1, Nanos: -500000000}},
		{chrono.TimeSpan(1), &durationpb.Duration{Nanos: 100}},
	} {
		got := chronopb.Duration(test.ts)
		if diff := cmp.Diff(test.want, got, protocmp.Transform()); diff != "" {
			t.Errorf("Duration(%s) (-want +got):\n%s", test.ts, diff)
		}
		back, err := chronopb.TimeSpan(got)
		if err != nil {
			t.Errorf("TimeSpan(%v): %v", got, err)
			continue
		}
		if back != test.ts {
			t.Errorf("TimeSpan(Duration(%s)) = %s", test.ts, back)
		}
	}

	if _, err := chronopb.TimeSpan(&durationpb.Duration{Seconds: 1, Nanos: -1}); err == nil {
		t.Errorf("TimeSpan accepted mismatched signs")
	}
}

func TestTimestampJSON(t *testing.T) {
	dt, offset, err := chrono.ParseISO("2016-08-29T21:32:31.588+02:00")
	if err != nil {
		t.Fatal(err)
	}
	data, err := protojson.Marshal(chronopb.Timestamp(dt, offset))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `"2016-08-29T19:32:31.588Z"`; got != want {
		t.Errorf("protojson = %s, want %s", got, want)
	}
}
