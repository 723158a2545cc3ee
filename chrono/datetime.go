// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import "time"

// A DateTime is an instant, counted in ticks since 0001-01-01T00:00:00.
// The zero value is that instant and also stands for "no date".
//
// DateTime values compare with the ordinary operators.
type DateTime uint64

// UnixEpoch is 1970-01-01T00:00:00.
const UnixEpoch DateTime = daysTo1970 * TicksPerDay

// NowFunc reports the current time. It may be replaced, for example by
// applications that require deterministic clocks.
var NowFunc = time.Now

// FromDateAndTime returns the DateTime for the given fields.
func FromDateAndTime(year, month, day, hour, minute, second int, millisecond float64) (DateTime, error) {
	date, err := DateToTicks(year, month, day)
	if err != nil {
		return 0, err
	}
	clock, err := TimeToTicks(hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	return DateTime(date + clock), nil
}

// FromDate returns midnight of the given day.
func FromDate(year, month, day int) (DateTime, error) {
	ticks, err := DateToTicks(year, month, day)
	return DateTime(ticks), err
}

// FromTimeOfDay returns the given clock time on 0001-01-01.
func FromTimeOfDay(hour, minute, second int, millisecond float64) (DateTime, error) {
	ticks, err := TimeToTicks(hour, minute, second, millisecond)
	return DateTime(ticks), err
}

// FromTime returns the wall clock of t in t's own location. Sub-second
// precision is kept down to one tick.
func FromTime(t time.Time) (DateTime, error) {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	if second >= 60 {
		second = 59
	}
	dt, err := FromDateAndTime(year, int(month), day, hour, minute, second, 0)
	if err != nil {
		return 0, err
	}
	return dt + DateTime(t.Nanosecond()/100), nil
}

// FromTimestamp converts Unix seconds to a DateTime holding the local
// wall clock, or UTC if local is false.
//
// A timestamp of 0 yields the zero DateTime rather than 1970-01-01, so
// "no timestamp" and "the epoch" cannot be told apart.
func FromTimestamp(ts int64, local bool) (DateTime, error) {
	if ts == 0 {
		return 0, nil
	}
	t := time.Unix(ts, 0)
	if local {
		t = t.Local()
	} else {
		t = t.UTC()
	}
	return FromTime(t)
}

// Now returns the current local wall clock.
func Now() DateTime {
	dt, _ := FromTime(NowFunc().Local())
	return dt
}

// UTCNow returns the current time in UTC.
func UTCNow() DateTime {
	dt, _ := FromTime(NowFunc().UTC())
	return dt
}

// Ticks returns the raw tick count.
func (dt DateTime) Ticks() uint64 { return uint64(dt) }

// IsNull reports whether dt is the zero value.
func (dt DateTime) IsNull() bool { return dt == 0 }

// DatePart returns one calendar field of dt.
func (dt DateTime) DatePart(part DatePart) int { return DatePartOf(uint64(dt), part) }

func (dt DateTime) Year() int      { return DatePartOf(uint64(dt), YearPart) }
func (dt DateTime) Month() int     { return DatePartOf(uint64(dt), MonthPart) }
func (dt DateTime) Day() int       { return DatePartOf(uint64(dt), DayPart) }
func (dt DateTime) DayOfYear() int { return DatePartOf(uint64(dt), DayOfYearPart) }

func (dt DateTime) Hour() int        { return int(uint64(dt) / TicksPerHour % 24) }
func (dt DateTime) Minute() int      { return int(uint64(dt) / TicksPerMinute % 60) }
func (dt DateTime) Second() int      { return int(uint64(dt) / TicksPerSecond % 60) }
func (dt DateTime) Millisecond() int { return int(uint64(dt) / TicksPerMillisecond % 1000) }

// DayOfWeek returns the weekday of dt. 0001-01-01 was a Monday.
func (dt DateTime) DayOfWeek() DayOfWeek {
	return DayOfWeek(uint64(dt) / TicksPerDay % 7)
}

// IsLeapYear reports whether dt falls in a leap year.
func (dt DateTime) IsLeapYear() bool { return IsLeapYear(dt.Year()) }

// Date returns midnight of dt's day.
func (dt DateTime) Date() DateTime { return dt - dt%TicksPerDay }

// TimeOfDay returns the time elapsed since midnight of dt's day.
func (dt DateTime) TimeOfDay() TimeSpan { return TimeSpan(dt % TicksPerDay) }

// Add returns dt+ts. Overflow is not checked.
func (dt DateTime) Add(ts TimeSpan) DateTime { return dt + DateTime(ts) }

// Sub returns dt-u. Overflow is not checked.
func (dt DateTime) Sub(u DateTime) TimeSpan { return TimeSpan(dt - u) }

// Compare returns -1, 0 or +1 as dt is before, equal to or after u.
func (dt DateTime) Compare(u DateTime) int {
	switch {
	case dt < u:
		return -1
	case dt > u:
		return +1
	}
	return 0
}

func (dt DateTime) Before(u DateTime) bool { return dt < u }
func (dt DateTime) After(u DateTime) bool  { return dt > u }

// Time returns dt as a time.Time in UTC.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year(), time.Month(dt.Month()), dt.Day(),
		dt.Hour(), dt.Minute(), dt.Second(), int(dt%TicksPerSecond)*100, time.UTC)
}

// A DayOfWeek specifies a day of the week, starting with Monday.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var longDayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
var shortDayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Name returns the English name of d, or its first three letters if
// abbreviated is set.
func (d DayOfWeek) Name(abbreviated bool) string {
	if d < Monday || d > Sunday {
		return ""
	}
	if abbreviated {
		return shortDayNames[d]
	}
	return longDayNames[d]
}

func (d DayOfWeek) String() string { return d.Name(false) }
