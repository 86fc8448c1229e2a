/*
Package cmdline describes command-line options: their short and long names,
documentation, whether they take an argument, and how to validate and convert
a raw textual argument into a typed value.

It is the foundation an argument parser builds on. The parser owns the
tokenizing loop, usage printing, and error reporting; this package owns the
per-option metadata and the validate/convert contract.

Example

A program declares its options once, up front:

		package main

		import (
			"fmt"
			"os"

			"github.com/cmdline-go/cmdline"
		)

		var (
			verbose = cmdline.NewBoolOption('v', "verbose", "enable verbose output")
			output  = cmdline.NewPathOption('o', "output", "file to write results to", "FILE").
				WithDefault("results.txt")
			jobs = cmdline.NewIntOption(0, "jobs", "number of parallel jobs", "N")
		)

		func main() {
			// A parser would match os.Args tokens against the descriptors by
			// short or long name. For any option that takes an argument it
			// validates the raw text first, then converts it.
			raw := "out/results.txt"
			if err := output.Validate(raw); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println("writing to", output.Convert(raw))
		}

Validate and Convert

Options that take an argument follow a two-phase protocol: Validate reports
whether raw text is acceptable, returning an *InvalidArgumentValueError that
carries the option's formatted name, the offending text, and a cause; Convert
turns text that already passed Validate into the option's typed value.
Calling Convert on text that did not pass Validate is a caller bug and
panics.

Contracts

Descriptors are immutable after construction and safe for concurrent use.
Accessors guarded by a query method (ShortName by HasShortName, ArgName and
DefaultValue by NeedsArg and HasDefaultValue) panic when the query would
report false; such calls indicate a bug in the parser, not bad user input.
*/
package cmdline
