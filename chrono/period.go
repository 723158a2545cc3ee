// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// A Period is the calendar distance between two instants in whole
// years, months and days.
type Period struct {
	Years, Months, Days int
}

// NewPeriod returns the Period from begin to end. end is expected not
// to precede begin.
func NewPeriod(begin, end DateTime) Period {
	p := Period{
		Years:  end.Year() - begin.Year(),
		Months: end.Month() - begin.Month(),
		Days:   end.Day() - begin.Day(),
	}
	if end.Hour() < begin.Hour() {
		p.Days--
	}
	if p.Days < 0 {
		p.Days += DaysInMonth(begin.Year(), begin.Month())
		p.Months--
	}
	if p.Months < 0 {
		p.Months += 12
		p.Years--
	}
	return p
}
