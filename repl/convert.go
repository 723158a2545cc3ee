// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ahnan4arch/chronoutil/chrono"
	"github.com/ahnan4arch/chronoutil/chronopb"
	"google.golang.org/protobuf/encoding/protojson"
)

// IsDenotation reports whether line, ignoring leading blanks, starts
// with a digit and should therefore be converted rather than evaluated.
func IsDenotation(line string) bool {
	line = strings.TrimLeft(line, " \t")
	return line != "" && '0' <= line[0] && line[0] <= '9'
}

// ParseDenotation reads text with the ISO parser if it contains a 'T'
// and with the loose parser otherwise. Loose denotations carry no offset.
func ParseDenotation(text string) (chrono.DateTime, chrono.TimeSpan, error) {
	text = strings.TrimSpace(text)
	if strings.ContainsRune(text, 'T') {
		return chrono.ParseISO(text)
	}
	dt, err := chrono.Parse(text)
	return dt, 0, err
}

// A Printer renders converted denotations.
type Printer struct {
	Layout         chrono.OutputFormat
	NoMilliseconds bool
	ISO            bool // add a second line in ISO 8601 form
	JSON           bool // print the UTC instant as a protobuf JSON timestamp instead

	// Offset applies to denotations that carry none.
	Offset chrono.TimeSpan
}

// Denotations is the Printer used by REPL.
var Denotations = &Printer{Layout: chrono.DateTimeAndWeekday, ISO: true}

// Print converts one denotation and writes the result to w.
func (p *Printer) Print(w io.Writer, text string) error {
	dt, offset, err := ParseDenotation(text)
	if err != nil {
		return err
	}
	if offset.IsNull() {
		offset = p.Offset
	}

	if p.JSON {
		data, err := protojson.Marshal(chronopb.Timestamp(dt, offset))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if _, err := fmt.Fprintln(w, dt.ToString(p.Layout, p.NoMilliseconds)); err != nil {
		return err
	}
	if p.ISO {
		if _, err := fmt.Fprintln(w, dt.ToIsoString(offset)); err != nil {
			return err
		}
	}
	return nil
}

// PrintAll converts every non-blank line of r. Conversion failures are
// reported to errw and do not stop the scan; the returned count says
// how many lines failed.
func (p *Printer) PrintAll(w, errw io.Writer, r io.Reader) (failed int, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := p.Print(w, line); err != nil {
			fmt.Fprintln(errw, err)
			failed++
		}
	}
	return failed, sc.Err()
}
