// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkedfile splits test scripts into independent chunks and
// checks that failures are reported on the expected lines.
//
// A chunked file consists of several chunks of input text separated by
// "---" lines. Lines containing "###" are expectations of failure: the
// following text is a Go string literal holding a regular expression
// that must match the failure message reported for that line.
//
// Example:
//
//      datetime.parse("2016-13-01") ### "month 13 is out of range"
//      ---
//      d = datetime.parse("2016-08-29")
//      assert.eq(d.weekday, "Monday")
//
// A client feeds each chunk's Source to the program under test, calls
// GotError for each failure that occurred, and finally Done.
package chunkedfile // import "github.com/ahnan4arch/chronoutil/internal/chunkedfile"

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// A Chunk is a portion of a source file.
// It contains a set of expected errors.
type Chunk struct {
	// Source is padded with newlines so that line numbers match
	// those of the whole file.
	Source   string
	filename string
	report   Reporter
	wantErrs map[int]*regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read parses a chunked file and returns its chunks.
// It reports failures using the reporter.
func Read(filename string, report Reporter) []Chunk {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return nil
	}
	return Parse(filename, string(data), report)
}

// Parse splits data, read from filename, into chunks.
//
// Error messages of the form "file.star:line: ..." are prefixed by a
// newline so that the Go source position added by (*testing.T).Errorf
// appears on a separate line.
func Parse(filename, data string, report Reporter) (chunks []Chunk) {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	linenum := 1
	for _, text := range strings.Split(data, "\n---\n") {
		chunk := Chunk{
			Source:   strings.Repeat("\n", linenum-1) + text,
			filename: filename,
			report:   report,
			wantErrs: make(map[int]*regexp.Regexp),
		}
		for _, line := range strings.Split(text, "\n") {
			if i := strings.Index(line, "###"); i >= 0 {
				chunk.expect(linenum, strings.TrimSpace(line[i+len("###"):]))
			}
			linenum++
		}
		linenum++ // separator
		chunks = append(chunks, chunk)
	}
	return chunks
}

func (chunk *Chunk) expect(linenum int, quoted string) {
	pattern, err := strconv.Unquote(quoted)
	if err != nil {
		chunk.report.Errorf("\n%s:%d: not a quoted regexp: %s", chunk.filename, linenum, quoted)
		return
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		chunk.report.Errorf("\n%s:%d: %v", chunk.filename, linenum, err)
		return
	}
	chunk.wantErrs[linenum] = rx
}

// Expected returns the number of expected errors not yet reported.
func (chunk *Chunk) Expected() int { return len(chunk.wantErrs) }

// GotError reports an error at a particular line. An error that no
// "###" annotation expects is reported to the chunk's reporter.
func (chunk *Chunk) GotError(linenum int, msg string) {
	rx, ok := chunk.wantErrs[linenum]
	if !ok {
		chunk.report.Errorf("\n%s:%d: unexpected error: %v", chunk.filename, linenum, msg)
		return
	}
	delete(chunk.wantErrs, linenum)
	if !rx.MatchString(msg) {
		chunk.report.Errorf("\n%s:%d: error %q does not match pattern %q", chunk.filename, linenum, msg, rx)
	}
}

// Done reports expected errors that did not occur.
func (chunk *Chunk) Done() {
	for linenum, rx := range chunk.wantErrs {
		chunk.report.Errorf("\n%s:%d: expected error matching %q", chunk.filename, linenum, rx)
	}
}
