// Copyright 2020 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"

	"github.com/ahnan4arch/chronoutil/chrono"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TimeSpan is a Starlark representation of a signed tick count.
type TimeSpan chrono.TimeSpan

var (
	_ starlark.HasAttrs   = TimeSpan(0)
	_ starlark.HasBinary  = TimeSpan(0)
	_ starlark.HasUnary   = TimeSpan(0)
	_ starlark.Comparable = TimeSpan(0)
	_ starlark.Unpacker   = (*TimeSpan)(nil)
)

// Unpack accepts a timespan, an int tick count, or an offset string
// such as "+02:00".
func (ts *TimeSpan) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case TimeSpan:
		*ts = x
		return nil
	case starlark.Int:
		i, ok := x.Int64()
		if !ok {
			return fmt.Errorf("int value out of range (want signed 64-bit value)")
		}
		*ts = TimeSpan(i)
		return nil
	case starlark.String:
		offset, err := chrono.ParseOffset(string(x))
		if err != nil {
			return err
		}
		*ts = TimeSpan(offset)
		return nil
	}
	return fmt.Errorf("cannot convert %s to %s", v.Type(), ts.Type())
}

func (ts TimeSpan) String() string { return chrono.TimeSpan(ts).String() }
func (ts TimeSpan) Type() string   { return "timespan" }
func (ts TimeSpan) Freeze()        {}

func (ts TimeSpan) Hash() (uint32, error) {
	return uint32(ts) ^ uint32(int64(ts)>>32), nil
}

func (ts TimeSpan) Truth() starlark.Bool { return ts != 0 }

var timeSpanAttrs = []string{
	"days", "hours", "minutes", "seconds", "milliseconds", "ticks",
	"total_days", "total_hours", "total_minutes", "total_seconds", "total_milliseconds",
	"negative",
}

func (ts TimeSpan) Attr(name string) (starlark.Value, error) {
	x := chrono.TimeSpan(ts)
	switch name {
	case "days":
		return starlark.MakeInt(x.Days()), nil
	case "hours":
		return starlark.MakeInt(x.Hours()), nil
	case "minutes":
		return starlark.MakeInt(x.Minutes()), nil
	case "seconds":
		return starlark.MakeInt(x.Seconds()), nil
	case "milliseconds":
		return starlark.MakeInt(x.Milliseconds()), nil
	case "ticks":
		return starlark.MakeInt64(x.Ticks()), nil
	case "total_days":
		return starlark.Float(x.TotalDays()), nil
	case "total_hours":
		return starlark.Float(x.TotalHours()), nil
	case "total_minutes":
		return starlark.Float(x.TotalMinutes()), nil
	case "total_seconds":
		return starlark.Float(x.TotalSeconds()), nil
	case "total_milliseconds":
		return starlark.Float(x.TotalMilliseconds()), nil
	case "negative":
		return starlark.Bool(x.IsNegative()), nil
	}
	return nil, nil
}

func (ts TimeSpan) AttrNames() []string { return timeSpanAttrs }

func (ts TimeSpan) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x, y := ts, yV.(TimeSpan)
	cmp := 0
	if x < y {
		cmp = -1
	} else if x > y {
		cmp = +1
	}
	return threeway(op, cmp), nil
}

func (ts TimeSpan) Unary(op syntax.Token) (starlark.Value, error) {
	switch op {
	case syntax.MINUS:
		return -ts, nil
	case syntax.PLUS:
		return ts, nil
	}
	return nil, nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface. operators:
//    timespan + timespan = timespan
//    timespan + datetime = datetime
//    timespan - timespan = timespan
//    timespan * int = timespan
//    timespan * float = timespan
//    timespan / timespan = float
//    timespan / int = timespan
//    timespan // timespan = int
//    timespan // int = timespan
func (ts TimeSpan) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	switch op {
	case syntax.PLUS:
		switch y := yV.(type) {
		case TimeSpan:
			return ts + y, nil
		case DateTime:
			return DateTime(chrono.DateTime(y).Add(chrono.TimeSpan(ts))), nil
		}

	case syntax.MINUS:
		if y, ok := yV.(TimeSpan); ok {
			if side == starlark.Left {
				return ts - y, nil
			}
			return y - ts, nil
		}

	case syntax.STAR:
		switch y := yV.(type) {
		case starlark.Int:
			i, ok := y.Int64()
			if !ok {
				return nil, fmt.Errorf("int value out of range (want signed 64-bit value)")
			}
			return ts * TimeSpan(i), nil
		case starlark.Float:
			return TimeSpan(float64(ts) * float64(y)), nil
		}

	case syntax.SLASH:
		if side == starlark.Right {
			return nil, nil
		}
		switch y := yV.(type) {
		case TimeSpan:
			if y == 0 {
				return nil, fmt.Errorf("%s division by zero", ts.Type())
			}
			return starlark.Float(float64(ts) / float64(y)), nil
		case starlark.Int:
			i, ok := y.Int64()
			if !ok {
				return nil, fmt.Errorf("int value out of range (want signed 64-bit value)")
			}
			if i == 0 {
				return nil, fmt.Errorf("%s division by zero", ts.Type())
			}
			return ts / TimeSpan(i), nil
		}

	case syntax.SLASHSLASH:
		if side == starlark.Right {
			return nil, nil
		}
		switch y := yV.(type) {
		case TimeSpan:
			if y == 0 {
				return nil, fmt.Errorf("%s floored division by zero", ts.Type())
			}
			return starlark.MakeInt64(floorDiv(int64(ts), int64(y))), nil
		case starlark.Int:
			i, ok := y.Int64()
			if !ok {
				return nil, fmt.Errorf("int value out of range (want signed 64-bit value)")
			}
			if i == 0 {
				return nil, fmt.Errorf("%s floored division by zero", ts.Type())
			}
			return TimeSpan(floorDiv(int64(ts), i)), nil
		}
	}

	return nil, nil
}

func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// DateTime is a Starlark representation of a chrono.DateTime.
type DateTime chrono.DateTime

var (
	_ starlark.HasAttrs   = DateTime(0)
	_ starlark.HasBinary  = DateTime(0)
	_ starlark.Comparable = DateTime(0)
	_ starlark.Unpacker   = (*DateTime)(nil)
)

// Unpack accepts a datetime or a denotation string. Strings containing
// 'T' are read as ISO 8601 without an offset, others loosely.
func (dt *DateTime) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case DateTime:
		*dt = x
		return nil
	case starlark.String:
		d, err := unpackDenotation(string(x))
		if err != nil {
			return err
		}
		*dt = DateTime(d)
		return nil
	}
	return fmt.Errorf("cannot convert %s to %s", v.Type(), dt.Type())
}

func (dt DateTime) String() string { return chrono.DateTime(dt).String() }
func (dt DateTime) Type() string   { return "datetime" }
func (dt DateTime) Freeze()        {}

func (dt DateTime) Hash() (uint32, error) {
	return uint32(dt) ^ uint32(uint64(dt)>>32), nil
}

// Truth reports whether dt is set; the zero datetime is false.
func (dt DateTime) Truth() starlark.Bool { return dt != 0 }

var dateTimeAttrs = []string{
	"year", "month", "day", "day_of_year",
	"hour", "minute", "second", "millisecond",
	"day_of_week", "weekday", "ticks",
}

func (dt DateTime) Attr(name string) (starlark.Value, error) {
	x := chrono.DateTime(dt)
	switch name {
	case "year":
		return starlark.MakeInt(x.Year()), nil
	case "month":
		return starlark.MakeInt(x.Month()), nil
	case "day":
		return starlark.MakeInt(x.Day()), nil
	case "day_of_year":
		return starlark.MakeInt(x.DayOfYear()), nil
	case "hour":
		return starlark.MakeInt(x.Hour()), nil
	case "minute":
		return starlark.MakeInt(x.Minute()), nil
	case "second":
		return starlark.MakeInt(x.Second()), nil
	case "millisecond":
		return starlark.MakeInt(x.Millisecond()), nil
	case "day_of_week":
		return starlark.MakeInt(int(x.DayOfWeek())), nil
	case "weekday":
		return starlark.String(x.DayOfWeek().String()), nil
	case "ticks":
		return starlark.MakeUint64(x.Ticks()), nil
	}
	return builtinAttr(dt, name, dateTimeMethods)
}

func (dt DateTime) AttrNames() []string {
	names := append([]string{}, dateTimeAttrs...)
	return append(names, builtinAttrNames(dateTimeMethods)...)
}

func (dt DateTime) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x, y := chrono.DateTime(dt), chrono.DateTime(yV.(DateTime))
	return threeway(op, x.Compare(y)), nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface. operators:
//    datetime + timespan = datetime
//    datetime - timespan = datetime
//    datetime - datetime = timespan
func (dt DateTime) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := chrono.DateTime(dt)

	switch op {
	case syntax.PLUS:
		switch y := yV.(type) {
		case TimeSpan:
			return DateTime(x.Add(chrono.TimeSpan(y))), nil
		case DateTime:
			return nil, fmt.Errorf("cannot add %s to %s", dt.Type(), yV.Type())
		}
	case syntax.MINUS:
		switch y := yV.(type) {
		case TimeSpan:
			if side == starlark.Left {
				return DateTime(x.Add(-chrono.TimeSpan(y))), nil
			}
		case DateTime:
			if side == starlark.Left {
				return TimeSpan(x.Sub(chrono.DateTime(y))), nil
			}
			return TimeSpan(chrono.DateTime(y).Sub(x)), nil
		}
	}

	return nil, nil
}

var dateTimeMethods = map[string]builtinMethod{
	"format":      dateTimeFormat,
	"iso":         dateTimeISO,
	"date":        dateTimeDate,
	"time_of_day": dateTimeTimeOfDay,
}

func dateTimeFormat(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		layout = chrono.DateAndTime.String()
		noMs   bool
	)
	if err := starlark.UnpackArgs(fnname, args, kwargs, "layout?", &layout, "no_milliseconds?", &noMs); err != nil {
		return nil, err
	}
	format, err := chrono.ParseOutputFormat(layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnname, err)
	}
	recv := chrono.DateTime(recV.(DateTime))
	return starlark.String(recv.ToString(format, noMs)), nil
}

func dateTimeISO(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var offset TimeSpan
	if err := starlark.UnpackArgs(fnname, args, kwargs, "offset?", &offset); err != nil {
		return nil, err
	}
	recv := chrono.DateTime(recV.(DateTime))
	return starlark.String(recv.ToIsoString(chrono.TimeSpan(offset))), nil
}

func dateTimeDate(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return DateTime(chrono.DateTime(recV.(DateTime)).Date()), nil
}

func dateTimeTimeOfDay(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return TimeSpan(chrono.DateTime(recV.(DateTime)).TimeOfDay()), nil
}
