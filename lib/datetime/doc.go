// Copyright 2020 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*Package datetime exposes chrono date-times and time spans to Starlark.

  outline: datetime
    datetime defines tick-based calendar values for starlark
    path: datetime
    functions:
      datetime(year, month, day, hour=0, minute=0, second=0, millisecond=0.0) datetime
        construct a datetime from calendar fields
      parse(string) datetime
        parse a loose denotation such as "2016-08-29 21:32:31.588"
      parse_iso(string) (datetime, timespan)
        parse "2016-08-29T21:32:31.588+02:00"; the timespan is the UTC offset
      parse_offset(string) timespan
        parse "+02:00" or "-01:30"
      from_timestamp(int, local=False) datetime
        convert Unix seconds; 0 yields zero
      now() datetime
        the local wall clock
      utc_now() datetime
        the wall clock in UTC
      timespan(days=0, hours=0, minutes=0, seconds=0, milliseconds=0, ticks=0) timespan
        construct a time span from any combination of units
      period(begin, end) struct
        calendar distance with fields years, months, days
      is_leap_year(int) bool
      days_in_year(int) int
      days_in_month(int, int) int
      zero datetime
        0001-01-01 00:00:00, also meaning "no date"

    types:
      timespan
        fields:
          days int
          hours int
          minutes int
          seconds int
          milliseconds int
          ticks int
          total_days float
          total_hours float
          total_minutes float
          total_seconds float
          total_milliseconds float
          negative bool
        operators:
          timespan + timespan = timespan
          timespan + datetime = datetime
          timespan - timespan = timespan
          timespan * int = timespan
          timespan / timespan = float
          timespan / int = timespan
          timespan // timespan = int
          -timespan = timespan
          timespan < timespan = boolean
      datetime
        fields:
          year int
          month int
          day int
          day_of_year int
          hour int
          minute int
          second int
          millisecond int
          day_of_week int
            0 is Monday
          weekday string
          ticks int
        functions:
          format(layout="datetime", no_milliseconds=False) string
            layout is one of date, time, datetime, weekday, shortweekday
          iso(offset=timespan()) string
          date() datetime
          time_of_day() timespan
        operators:
          datetime + timespan = datetime
          datetime - timespan = datetime
          datetime - datetime = timespan
          datetime == datetime = boolean
          datetime < datetime = boolean
*/
package datetime // import "github.com/ahnan4arch/chronoutil/lib/datetime"
