// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// Tick ratios. One tick is 100 nanoseconds.
const (
	TicksPerMillisecond = 10000
	TicksPerSecond      = 1000 * TicksPerMillisecond
	TicksPerMinute      = 60 * TicksPerSecond
	TicksPerHour        = 60 * TicksPerMinute
	TicksPerDay         = 24 * TicksPerHour
)

const (
	daysPerYear     = 365
	daysPer4Years   = 1461
	daysPer100Years = 36524
	daysPer400Years = 146097
	daysTo1970      = 719162

	minYear = 1
	maxYear = 9999
)

// daysToMonth365[m] is the number of days in a common year before month
// m+1 begins; the last entry is the length of the year.
var daysToMonth365 = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
var daysToMonth366 = [13]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}

// A DatePart selects one calendar field for DatePartOf.
type DatePart int

const (
	YearPart DatePart = iota
	MonthPart
	DayPart
	DayOfYearPart
)

var datePartNames = [...]string{
	YearPart:      "year",
	MonthPart:     "month",
	DayPart:       "day",
	DayOfYearPart: "day of year",
}

func (p DatePart) String() string {
	if 0 <= p && int(p) < len(datePartNames) {
		return datePartNames[p]
	}
	return "DatePart(?)"
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of the given month,
// or 0 if month is not in [1, 12].
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	table := monthTable(IsLeapYear(year))
	return table[month] - table[month-1]
}

func monthTable(leap bool) *[13]int {
	if leap {
		return &daysToMonth366
	}
	return &daysToMonth365
}

// DateToTicks returns the number of ticks between 0001-01-01 and the
// start of the given day.
func DateToTicks(year, month, day int) (uint64, error) {
	if year < minYear || year > maxYear {
		return 0, &RangeError{"year", year}
	}
	if month < 1 || month > 12 {
		return 0, &RangeError{"month", month}
	}
	table := monthTable(IsLeapYear(year))
	if day < 1 || day > table[month]-table[month-1] {
		return 0, &RangeError{"day", day}
	}
	passedYears := year - 1
	days := passedYears*daysPerYear + passedYears/4 - passedYears/100 + passedYears/400 +
		table[month-1] + day - 1
	return uint64(days) * TicksPerDay, nil
}

// TimeToTicks returns the number of ticks between midnight and the given
// time of day. The fractional part of millisecond is kept down to tick
// resolution and truncated below it.
func TimeToTicks(hour, minute, second int, millisecond float64) (uint64, error) {
	switch {
	case hour < 0 || hour >= 24:
		return 0, &RangeError{"hour", hour}
	case minute < 0 || minute >= 60:
		return 0, &RangeError{"minute", minute}
	case second < 0 || second >= 60:
		return 0, &RangeError{"second", second}
	case !(millisecond >= 0 && millisecond < 1000):
		return 0, &RangeError{"millisecond", millisecond}
	}
	return uint64(hour)*TicksPerHour +
		uint64(minute)*TicksPerMinute +
		uint64(second)*TicksPerSecond +
		uint64(millisecond*TicksPerMillisecond), nil
}

// DatePartOf decomposes ticks into the requested calendar field.
//
// The day count is split into whole 400-, 100-, 4- and 1-year blocks.
// The 100-year and 1-year quotients are capped at 3: the only day that
// would produce a 4th block is the 366th day of a leap year at the end
// of the enclosing block, which belongs to the 3rd.
func DatePartOf(ticks uint64, part DatePart) int {
	days := int(ticks / TicksPerDay)

	n400 := days / daysPer400Years
	days -= n400 * daysPer400Years

	n100 := days / daysPer100Years
	if n100 == 4 {
		n100 = 3
	}
	days -= n100 * daysPer100Years

	n4 := days / daysPer4Years
	days -= n4 * daysPer4Years

	n1 := days / daysPerYear
	if n1 == 4 {
		n1 = 3
	}
	if part == YearPart {
		return n400*400 + n100*100 + n4*4 + n1 + 1
	}

	days -= n1 * daysPerYear
	if part == DayOfYearPart {
		return days + 1
	}

	// The last year of a 4-year block is a leap year unless it is the
	// last year of a century that is not also the last of 400 years.
	table := monthTable(n1 == 3 && (n4 != 24 || n100 == 3))
	month := 1
	for days >= table[month] {
		month++
	}
	if part == MonthPart {
		return month
	}
	return days - table[month-1] + 1
}
