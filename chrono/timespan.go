// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strings"
)

// A TimeSpan is a signed number of ticks. It is used both for elapsed
// time and, as returned by ParseISO, for an offset from UTC.
type TimeSpan int64

// FromMilliseconds returns a TimeSpan of ms milliseconds, truncated
// to tick resolution.
func FromMilliseconds(ms float64) TimeSpan { return TimeSpan(ms * TicksPerMillisecond) }

// FromSeconds returns a TimeSpan of s seconds.
func FromSeconds(s float64) TimeSpan { return TimeSpan(s * TicksPerSecond) }

// FromMinutes returns a TimeSpan of m minutes.
func FromMinutes(m float64) TimeSpan { return TimeSpan(m * TicksPerMinute) }

// FromHours returns a TimeSpan of h hours.
func FromHours(h float64) TimeSpan { return TimeSpan(h * TicksPerHour) }

// FromDays returns a TimeSpan of d days.
func FromDays(d float64) TimeSpan { return TimeSpan(d * TicksPerDay) }

// Ticks returns the raw tick count.
func (ts TimeSpan) Ticks() int64 { return int64(ts) }

// The part accessors truncate toward zero, so every part of a negative
// TimeSpan is zero or negative.

func (ts TimeSpan) Milliseconds() int { return int(int64(ts) / TicksPerMillisecond % 1000) }
func (ts TimeSpan) Seconds() int      { return int(int64(ts) / TicksPerSecond % 60) }
func (ts TimeSpan) Minutes() int      { return int(int64(ts) / TicksPerMinute % 60) }
func (ts TimeSpan) Hours() int        { return int(int64(ts) / TicksPerHour % 24) }
func (ts TimeSpan) Days() int         { return int(int64(ts) / TicksPerDay) }

func (ts TimeSpan) TotalMilliseconds() float64 { return float64(ts) / TicksPerMillisecond }
func (ts TimeSpan) TotalSeconds() float64      { return float64(ts) / TicksPerSecond }
func (ts TimeSpan) TotalMinutes() float64      { return float64(ts) / TicksPerMinute }
func (ts TimeSpan) TotalHours() float64        { return float64(ts) / TicksPerHour }
func (ts TimeSpan) TotalDays() float64         { return float64(ts) / TicksPerDay }

// IsNull reports whether ts is zero. A null offset means UTC.
func (ts TimeSpan) IsNull() bool { return ts == 0 }

// IsNegative reports whether ts points to the past, or west of UTC.
func (ts TimeSpan) IsNegative() bool { return ts < 0 }

// Abs returns the magnitude of ts.
func (ts TimeSpan) Abs() TimeSpan {
	if ts < 0 {
		return -ts
	}
	return ts
}

// String renders ts as [-][d.]hh:mm:ss[.mmm].
func (ts TimeSpan) String() string {
	var buf strings.Builder
	if ts < 0 {
		buf.WriteByte('-')
	}
	abs := ts.Abs()
	if d := abs.Days(); d != 0 {
		fmt.Fprintf(&buf, "%d.", d)
	}
	fmt.Fprintf(&buf, "%02d:%02d:%02d", abs.Hours(), abs.Minutes(), abs.Seconds())
	if ms := abs.Milliseconds(); ms != 0 {
		fmt.Fprintf(&buf, ".%03d", ms)
	}
	return buf.String()
}
