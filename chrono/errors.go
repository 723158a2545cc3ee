// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
)

// A RangeError reports a calendar or clock field outside its domain.
type RangeError struct {
	Field string      // "year", "month", "day", "hour", "minute", "second" or "millisecond"
	Value interface{} // the rejected value, an int or a float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %v is out of range", e.Field, e.Value)
}

// A FormatError reports a character that does not fit the grammar of
// a denotation at the position where it was found.
type FormatError struct {
	Input string // the whole denotation
	Pos   int    // byte offset of the offending character
	Char  byte   // the offending character
	Msg   string
}

func (e *FormatError) Error() string {
	return "cannot parse " + strconv.Quote(e.Input) + ": " + e.Msg + " at offset " + strconv.Itoa(e.Pos)
}

func unexpected(c byte) string {
	return "unexpected " + strconv.QuoteRune(rune(c))
}
