// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chrono provides a calendar/clock value type.
//
// A DateTime is an unsigned count of 100-nanosecond ticks elapsed since
// midnight, January 1, 0001, in the proleptic Gregorian calendar,
// ignoring leap seconds. Calendar fields (year, month, day, hour, ...)
// are never stored; they are derived from the tick count on demand.
//
// A DateTime carries no time zone. The ISO parser reports the UTC offset
// found in its input as a separate TimeSpan, and ToIsoString accepts one
// back, so callers that care about zones keep the offset themselves:
//
//	dt, offset, err := chrono.ParseISO("2016-08-29T21:32:31.588+02:00")
//	utc := dt.Add(-offset)
//
// Two parsers are provided. Parse accepts loose numeric denotations such
// as "2016-08-29 21:32:31.588" or "2016/8/29". ParseISO accepts the
// stricter "YYYY-MM-DDTHH:MM:SS[.fff][+|-HH:MM]" form.
//
// Values are immutable and safe for concurrent use.
package chrono // import "github.com/ahnan4arch/chronoutil/chrono"
