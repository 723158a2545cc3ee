// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The chrono command converts date-time denotations and runs Starlark
// programs over the datetime module.
//
// Each argument is a denotation, such as 2016-08-29 21:32:31.588 or
// 2016-08-29T21:32:31.588+02:00. With no arguments, chrono converts the
// lines of its standard input, or starts a read-eval-print loop (REPL)
// when standard input is a terminal.
package main // import "github.com/ahnan4arch/chronoutil/cmd/chrono"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/ahnan4arch/chronoutil/chrono"
	"github.com/ahnan4arch/chronoutil/lib/datetime"
	"github.com/ahnan4arch/chronoutil/repl"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"golang.org/x/term"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	profile    = flag.String("profile", "", "gather Starlark time profile in this file")
	showenv    = flag.Bool("showenv", false, "on success, print final global environment")
	execprog   = flag.String("c", "", "execute program `prog`")
	execfile   = flag.String("f", "", "execute Starlark `file`")

	layout = flag.String("layout", chrono.DateTimeAndWeekday.String(), "output `layout`: date, time, datetime, weekday or shortweekday")
	iso    = flag.Bool("iso", false, "also print the ISO 8601 form")
	noMs   = flag.Bool("no-ms", false, "omit milliseconds")
	offset = flag.String("offset", "", "UTC `offset` (+HH:MM or -HH:MM) for denotations that carry none")
	asJSON = flag.Bool("json", false, "print the UTC instant as a protobuf JSON timestamp")
)

func init() {
	flag.BoolVar(&resolve.AllowRecursion, "recursion", resolve.AllowRecursion, "allow while statements and recursive functions")
	flag.BoolVar(&resolve.AllowGlobalReassign, "globalreassign", resolve.AllowGlobalReassign, "allow reassignment of globals, and if/for/while statements at top level")
}

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("chrono: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			err := f.Close()
			check(err)
		}()
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		check(err)
		err = starlark.StartProfile(f)
		check(err)
		defer func() {
			err := starlark.StopProfile()
			check(err)
		}()
	}

	printer, err := newPrinter(*layout, *offset, *iso, *noMs, *asJSON)
	if err != nil {
		log.Print(err)
		return 2
	}

	predeclared := starlark.StringDict{datetime.ModuleName: datetime.Module}
	thread := &starlark.Thread{Load: repl.MakeLoad(predeclared)}
	globals := make(starlark.StringDict)

	switch {
	case *execprog != "" && *execfile != "":
		log.Print("want at most one of -c and -f")
		return 2
	case *execprog != "" || *execfile != "":
		var (
			filename string
			src      interface{}
		)
		if *execprog != "" {
			filename = "cmdline"
			src = *execprog
		} else {
			filename = *execfile
		}
		thread.Name = "exec " + filename
		globals, err = starlark.ExecFile(thread, filename, src, predeclared)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
	case flag.NArg() > 0:
		failed := 0
		for _, arg := range flag.Args() {
			if err := printer.Print(os.Stdout, arg); err != nil {
				log.Print(err)
				failed++
			}
		}
		if failed > 0 {
			return 1
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		fmt.Println("Enter a date-time denotation or a Starlark statement.")
		printer.ISO = printer.ISO || !printer.JSON
		repl.Denotations = printer
		thread.Name = "REPL"
		globals[datetime.ModuleName] = datetime.Module
		repl.REPL(thread, globals)
	default:
		failed, err := printer.PrintAll(os.Stdout, os.Stderr, os.Stdin)
		check(err)
		if failed > 0 {
			return 1
		}
	}

	// Print the global environment.
	if *showenv {
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(os.Stderr, "%s = %s\n", name, globals[name])
			}
		}
	}

	return 0
}

// newPrinter builds the denotation printer described by the output flags.
func newPrinter(layout, offset string, iso, noMs, asJSON bool) (*repl.Printer, error) {
	format, err := chrono.ParseOutputFormat(layout)
	if err != nil {
		return nil, fmt.Errorf("-layout: %w", err)
	}
	p := &repl.Printer{Layout: format, ISO: iso, NoMilliseconds: noMs, JSON: asJSON}
	if offset != "" {
		p.Offset, err = chrono.ParseOffset(offset)
		if err != nil {
			return nil, fmt.Errorf("-offset: %w", err)
		}
	}
	return p, nil
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
