// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPeriod(t *testing.T) {
	for _, test := range []struct {
		begin, end calendarFields
		want       Period
	}{
		{calendarFields{Year: 1990, Month: 5, Day: 15}, calendarFields{Year: 2016, Month: 8, Day: 29}, Period{26, 3, 14}},
		{calendarFields{Year: 2000, Month: 1, Day: 31}, calendarFields{Year: 2000, Month: 3, Day: 1}, Period{0, 1, 1}},
		{calendarFields{Year: 2016, Month: 8, Day: 29, Hour: 21}, calendarFields{Year: 2017, Month: 8, Day: 29, Hour: 20}, Period{0, 11, 30}},
		{calendarFields{Year: 2016, Month: 8, Day: 29}, calendarFields{Year: 2016, Month: 8, Day: 29}, Period{}},
	} {
		b, e := test.begin, test.end
		begin := mustDateTime(t, b.Year, b.Month, b.Day, b.Hour, 0, 0, 0)
		end := mustDateTime(t, e.Year, e.Month, e.Day, e.Hour, 0, 0, 0)
		if diff := cmp.Diff(test.want, NewPeriod(begin, end)); diff != "" {
			t.Errorf("NewPeriod(%s, %s) (-want +got):\n%s", begin, end, diff)
		}
	}
}
