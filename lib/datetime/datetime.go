// Copyright 2020 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ahnan4arch/chronoutil/chrono"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "datetime"

// Module datetime is a Starlark module of calendar functions.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"datetime":       starlark.NewBuiltin("datetime", newDateTime),
		"parse":          starlark.NewBuiltin("parse", parse),
		"parse_iso":      starlark.NewBuiltin("parse_iso", parseISO),
		"parse_offset":   starlark.NewBuiltin("parse_offset", parseOffset),
		"from_timestamp": starlark.NewBuiltin("from_timestamp", fromTimestamp),
		"now":            starlark.NewBuiltin("now", now),
		"utc_now":        starlark.NewBuiltin("utc_now", utcNow),
		"timespan":       starlark.NewBuiltin("timespan", newTimeSpan),
		"period":         starlark.NewBuiltin("period", period),
		"is_leap_year":   starlark.NewBuiltin("is_leap_year", isLeapYear),
		"days_in_year":   starlark.NewBuiltin("days_in_year", daysInYear),
		"days_in_month":  starlark.NewBuiltin("days_in_month", daysInMonth),

		"zero": DateTime(0),

		"millisecond": TimeSpan(chrono.TicksPerMillisecond),
		"second":      TimeSpan(chrono.TicksPerSecond),
		"minute":      TimeSpan(chrono.TicksPerMinute),
		"hour":        TimeSpan(chrono.TicksPerHour),
		"day":         TimeSpan(chrono.TicksPerDay),
	},
}

// LoadModule loads the datetime module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

const nowKey = "datetime.now"

// SetNow installs a clock for now() and utc_now() calls made by thread.
// The installed clock has no notion of zone, so both builtins return
// whatever it reports. Threads without a clock use chrono.NowFunc.
func SetNow(thread *starlark.Thread, fn func() (chrono.DateTime, error)) {
	thread.SetLocal(nowKey, fn)
}

func threadNow(thread *starlark.Thread) func() (chrono.DateTime, error) {
	fn, _ := thread.Local(nowKey).(func() (chrono.DateTime, error))
	return fn
}

func now(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	if fn := threadNow(thread); fn != nil {
		dt, err := fn()
		if err != nil {
			return nil, err
		}
		return DateTime(dt), nil
	}
	if chrono.NowFunc == nil {
		return nil, fmt.Errorf("%s: no clock available", b.Name())
	}
	return DateTime(chrono.Now()), nil
}

func utcNow(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	if fn := threadNow(thread); fn != nil {
		dt, err := fn()
		if err != nil {
			return nil, err
		}
		return DateTime(dt), nil
	}
	if chrono.NowFunc == nil {
		return nil, fmt.Errorf("%s: no clock available", b.Name())
	}
	return DateTime(chrono.UTCNow()), nil
}

func newDateTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		year, month, day     int
		hour, minute, second int
		millisecond          starlark.Value = starlark.MakeInt(0)
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"year", &year, "month", &month, "day", &day,
		"hour?", &hour, "minute?", &minute, "second?", &second,
		"millisecond?", &millisecond); err != nil {
		return nil, err
	}
	ms, err := toFloat(b.Name(), "millisecond", millisecond)
	if err != nil {
		return nil, err
	}
	dt, err := chrono.FromDateAndTime(year, month, day, hour, minute, second, ms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return DateTime(dt), nil
}

func parse(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	dt, err := chrono.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return DateTime(dt), nil
}

func parseISO(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	dt, offset, err := chrono.ParseISO(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.Tuple{DateTime(dt), TimeSpan(offset)}, nil
}

func parseOffset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	offset, err := chrono.ParseOffset(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return TimeSpan(offset), nil
}

func fromTimestamp(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		x     starlark.Int
		local bool
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "ts", &x, "local?", &local); err != nil {
		return nil, err
	}
	ts, ok := x.Int64()
	if !ok {
		return nil, fmt.Errorf("%s: int value out of range (want signed 64-bit value)", b.Name())
	}
	dt, err := chrono.FromTimestamp(ts, local)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return DateTime(dt), nil
}

func newTimeSpan(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var days, hours, minutes, seconds, milliseconds, ticks starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"days?", &days, "hours?", &hours, "minutes?", &minutes,
		"seconds?", &seconds, "milliseconds?", &milliseconds, "ticks?", &ticks); err != nil {
		return nil, err
	}

	var ts chrono.TimeSpan
	for _, unit := range []struct {
		name string
		v    starlark.Value
		conv func(float64) chrono.TimeSpan
	}{
		{"days", days, chrono.FromDays},
		{"hours", hours, chrono.FromHours},
		{"minutes", minutes, chrono.FromMinutes},
		{"seconds", seconds, chrono.FromSeconds},
		{"milliseconds", milliseconds, chrono.FromMilliseconds},
	} {
		if unit.v == nil {
			continue
		}
		f, err := toFloat(b.Name(), unit.name, unit.v)
		if err != nil {
			return nil, err
		}
		ts += unit.conv(f)
	}
	if ticks != nil {
		var t TimeSpan
		if err := t.Unpack(ticks); err != nil {
			return nil, fmt.Errorf("%s: for parameter ticks: %v", b.Name(), err)
		}
		ts += chrono.TimeSpan(t)
	}
	return TimeSpan(ts), nil
}

func period(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var begin, end DateTime
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "begin", &begin, "end", &end); err != nil {
		return nil, err
	}
	p := chrono.NewPeriod(chrono.DateTime(begin), chrono.DateTime(end))
	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"years":  starlark.MakeInt(p.Years),
		"months": starlark.MakeInt(p.Months),
		"days":   starlark.MakeInt(p.Days),
	}), nil
}

func isLeapYear(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var year int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &year); err != nil {
		return nil, err
	}
	return starlark.Bool(chrono.IsLeapYear(year)), nil
}

func daysInYear(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var year int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &year); err != nil {
		return nil, err
	}
	return starlark.MakeInt(chrono.DaysInYear(year)), nil
}

func daysInMonth(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var year, month int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &year, &month); err != nil {
		return nil, err
	}
	n := chrono.DaysInMonth(year, month)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", b.Name(), &chrono.RangeError{Field: "month", Value: month})
	}
	return starlark.MakeInt(n), nil
}

// toFloat converts an int or float argument.
func toFloat(fnname, param string, v starlark.Value) (float64, error) {
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("%s: for parameter %s: got %s, want float or int", fnname, param, v.Type())
	}
	return f, nil
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}

// unpackDenotation reads a datetime argument given as a string. A 'T'
// selects the ISO form, which must then carry no offset.
func unpackDenotation(s string) (chrono.DateTime, error) {
	if !strings.ContainsRune(s, 'T') {
		return chrono.Parse(s)
	}
	dt, offset, err := chrono.ParseISO(s)
	if err != nil {
		return 0, err
	}
	if !offset.IsNull() {
		return 0, fmt.Errorf("%q carries an offset; use parse_iso", s)
	}
	return dt, nil
}
