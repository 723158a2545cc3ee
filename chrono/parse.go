// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import "math"

// A slot is the index of the field a parser is currently filling.
type slot int

const (
	slotYear slot = iota
	slotMonth
	slotDay
	slotHour
	slotMinute
	slotSecond
	slotMillisecond
	slotOffsetHour
	slotOffsetMinute
	numSlots
)

var slotNames = [numSlots]string{
	"year", "month", "day", "hour", "minute", "second", "millisecond", "offset hour", "offset minute",
}

// A charClass groups the input bytes the parsers distinguish.
type charClass int

const (
	classOther charClass = iota
	classDigit
	classDash
	classColon
	classSlash
	classDot
	classSpace
	classPlus
	classT
)

func classify(c byte) charClass {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return classDigit
	case '-':
		return classDash
	case ':':
		return classColon
	case '/':
		return classSlash
	case '.':
		return classDot
	case ' ':
		return classSpace
	case '+':
		return classPlus
	case 'T':
		return classT
	}
	return classOther
}

// fields accumulates slot values shared by both parsers.
type fields struct {
	cur    slot
	values [numSlots]int

	// fraction of a second in milliseconds; each further digit weighs
	// a tenth of the previous one, starting at 100.
	ms     float64
	weight float64
}

func newFields() fields { return fields{weight: 100} }

func (f *fields) digit(c byte) {
	d := int(c - '0')
	if v := f.values[f.cur]; v > (math.MaxInt32-d)/10 {
		f.values[f.cur] = math.MaxInt32
	} else {
		f.values[f.cur] = v*10 + d
	}
}

func (f *fields) fractionDigit(c byte) {
	f.ms += float64(c-'0') * f.weight
	f.weight /= 10
}

func (f *fields) dateTime() (DateTime, error) {
	v := &f.values
	return FromDateAndTime(v[slotYear], v[slotMonth], v[slotDay], v[slotHour], v[slotMinute], v[slotSecond], f.ms)
}

// Parse parses a loose numeric date-time denotation such as
// "2016-08-29 21:32:31.588".
//
// Up to six integer fields (year, month, day, hour, minute, second) are
// separated by any of "-", ":" or "/". The day may be followed by a space
// or a "T" instead, and the second by "." and a fraction. Missing fields
// are zero. Input after the fraction's terminating separator is ignored.
func Parse(text string) (DateTime, error) {
	p := looseParser{fields: newFields()}
	for i := 0; i < len(text); i++ {
		done, msg := p.step(text[i])
		if msg != "" {
			return 0, &FormatError{Input: text, Pos: i, Char: text[i], Msg: msg}
		}
		if done {
			break
		}
	}
	return p.dateTime()
}

type looseParser struct {
	fields
}

// step consumes one byte. It returns done when scanning should stop,
// or a non-empty message when c is not acceptable here.
func (p *looseParser) step(c byte) (done bool, msg string) {
	switch classify(c) {
	case classDigit:
		if p.cur > slotSecond {
			p.fractionDigit(c)
		} else {
			p.digit(c)
		}
		return false, ""
	case classDash, classColon, classSlash:
		return p.advance(), ""
	case classDot:
		if p.cur == slotSecond {
			return p.advance(), ""
		}
	case classSpace, classT:
		if p.cur == slotDay {
			return p.advance(), ""
		}
	}
	return false, unexpected(c)
}

// advance moves to the next slot and reports whether the fraction
// slot has been left.
func (p *looseParser) advance() bool {
	p.cur++
	return p.cur > slotMillisecond
}

// ParseISO parses a denotation of the form
// YYYY-MM-DDTHH:MM:SS[.fff][+|-HH:MM], for example
// "2016-08-29T21:32:31.588539814+02:00".
//
// It returns the wall clock as written and the UTC offset, which is zero
// when absent. Subtracting the offset from the DateTime gives UTC.
func ParseISO(text string) (DateTime, TimeSpan, error) {
	p := isoParser{fields: newFields()}
	if err := p.run(text); err != nil {
		return 0, 0, err
	}
	dt, err := p.dateTime()
	if err != nil {
		return 0, 0, err
	}
	return dt, p.offset(), nil
}

// ParseOffset parses a UTC offset of the form +HH:MM or -HH:MM.
func ParseOffset(text string) (TimeSpan, error) {
	if text == "" || (text[0] != '+' && text[0] != '-') {
		var c byte
		if text != "" {
			c = text[0]
		}
		return 0, &FormatError{Input: text, Char: c, Msg: "offset must start with + or -"}
	}
	p := isoParser{fields: newFields()}
	p.cur = slotSecond
	if err := p.run(text); err != nil {
		return 0, err
	}
	return p.offset(), nil
}

type isoParser struct {
	fields
	negative bool
}

func (p *isoParser) run(text string) error {
	for i := 0; i < len(text); i++ {
		if msg := p.step(text[i]); msg != "" {
			return &FormatError{Input: text, Pos: i, Char: text[i], Msg: msg}
		}
	}
	return nil
}

func (p *isoParser) step(c byte) (msg string) {
	switch classify(c) {
	case classDigit:
		if p.cur == slotMillisecond {
			p.fractionDigit(c)
		} else {
			p.digit(c)
		}
		return ""
	case classT:
		if p.cur+1 != slotHour {
			return "'T' expected before hour"
		}
		return p.advance(c)
	case classDash:
		if p.cur < slotDay {
			return p.advance(c)
		}
		return p.sign(c, true)
	case classPlus:
		return p.sign(c, false)
	case classDot:
		if p.cur != slotSecond {
			return unexpected(c)
		}
		return p.advance(c)
	case classColon:
		switch {
		case p.cur < slotHour:
			return "unexpected ':' before hour"
		case p.cur == slotSecond:
			return "unexpected ':' after second"
		}
		return p.advance(c)
	}
	return unexpected(c)
}

func (p *isoParser) advance(c byte) string {
	if p.cur+1 == numSlots {
		return unexpected(c) + " after " + slotNames[p.cur]
	}
	p.cur++
	return ""
}

// sign starts the UTC offset. It is accepted only once the seconds
// have begun.
func (p *isoParser) sign(c byte, negative bool) string {
	if p.cur != slotSecond && p.cur != slotMillisecond {
		return unexpected(c) + " after " + slotNames[p.cur]
	}
	p.cur = slotOffsetHour
	p.negative = negative
	return ""
}

func (p *isoParser) offset() TimeSpan {
	minutes := p.values[slotOffsetHour]*60 + p.values[slotOffsetMinute]
	if p.negative {
		minutes = -minutes
	}
	return FromMinutes(float64(minutes))
}
