// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strings"
)

// An OutputFormat selects a layout for ToString.
type OutputFormat int

const (
	DateAndTime             OutputFormat = iota // 2016-08-29 21:32:31.588
	DateOnly                                    // 2016-08-29
	TimeOnly                                    // 21:32:31.588
	DateTimeAndWeekday                          // Monday 2016-08-29 21:32:31.588
	DateTimeAndShortWeekday                     // Mon 2016-08-29 21:32:31.588
)

var outputFormatNames = [...]string{
	DateAndTime:             "datetime",
	DateOnly:                "date",
	TimeOnly:                "time",
	DateTimeAndWeekday:      "weekday",
	DateTimeAndShortWeekday: "shortweekday",
}

func (f OutputFormat) String() string {
	if 0 <= f && int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat returns the OutputFormat whose String is name.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for f, n := range outputFormatNames {
		if n == name {
			return OutputFormat(f), nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(outputFormatNames[:], ", "))
}

func (f OutputFormat) hasDate() bool { return f != TimeOnly }
func (f OutputFormat) hasTime() bool { return f != DateOnly }

func (f OutputFormat) hasWeekday() bool {
	return f == DateTimeAndWeekday || f == DateTimeAndShortWeekday
}

// ToString renders dt in the given layout. The milliseconds are printed
// only when they are nonzero and noMilliseconds is false.
func (dt DateTime) ToString(format OutputFormat, noMilliseconds bool) string {
	var buf strings.Builder
	if format.hasWeekday() {
		buf.WriteString(dt.DayOfWeek().Name(format == DateTimeAndShortWeekday))
		buf.WriteByte(' ')
	}
	if format.hasDate() {
		fmt.Fprintf(&buf, "%04d-%02d-%02d", dt.Year(), dt.Month(), dt.Day())
		if format.hasTime() {
			buf.WriteByte(' ')
		}
	}
	if format.hasTime() {
		fmt.Fprintf(&buf, "%02d:%02d:%02d", dt.Hour(), dt.Minute(), dt.Second())
		if ms := dt.Millisecond(); !noMilliseconds && ms > 0 {
			fmt.Fprintf(&buf, ".%03d", ms)
		}
	}
	return buf.String()
}

// String renders dt in the DateAndTime layout.
func (dt DateTime) String() string { return dt.ToString(DateAndTime, false) }

// ToIsoString renders dt as YYYY-MM-DDTHH:MM:SS.mmm, always with
// milliseconds, followed by the offset as +HH:MM or -HH:MM unless it
// is null.
func (dt DateTime) ToIsoString(offset TimeSpan) string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03d",
		dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), dt.Millisecond())
	if offset.IsNull() {
		return s
	}
	sign := '+'
	if offset.IsNegative() {
		sign = '-'
	}
	abs := int64(offset.Abs())
	return fmt.Sprintf("%s%c%02d:%02d", s, sign, abs/TicksPerHour, abs/TicksPerMinute%60)
}

// MarshalText implements encoding.TextMarshaler using the ISO layout.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.ToIsoString(0)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An offset in the
// text is subtracted, so the result is in UTC.
func (dt *DateTime) UnmarshalText(text []byte) error {
	v, offset, err := ParseISO(string(text))
	if err != nil {
		return err
	}
	*dt = v.Add(-offset)
	return nil
}
