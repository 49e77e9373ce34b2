// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optparse provides a declarative, type-safe command-line argument
// parser with automatic usage and help generation.
//
// Callers declare flags, single-value options, and positional arguments
// against a Parser, then hand it the raw argument vector. The parser
// tokenizes, validates, converts, and stores values, which are read back
// through the handles returned at declaration time.
//
// # Basic Usage
//
//	parser := optparse.New("Frobnicate the widgets")
//	all := optparse.AddFlag(parser, []string{"-a", "--all"}, true, false).
//	    Help("Process every widget")
//	count := optparse.AddOption[int](parser, []string{"-n", "--count"}, 1).
//	    Help("Number of passes")
//	name := optparse.AddArgument[string](parser, "name").
//	    Help("Widget to process")
//
//	if err := parser.Parse(os.Args); err != nil {
//	    if errors.Is(err, optparse.ErrHelp) {
//	        fmt.Print(parser.Help())
//	        os.Exit(0)
//	    }
//	    fmt.Fprintln(os.Stderr, err)
//	    fmt.Fprint(os.Stderr, parser.Usage())
//	    os.Exit(1)
//	}
//	fmt.Println(all.Get(), count.Get(), name.Get())
//
// # Option Syntax
//
// Options follow POSIX short/long conventions:
//   - Short options: -a
//   - Short option clusters: -ab is -a -b (while -a takes no value)
//   - Attached short values: -n5 is -n 5
//   - Long options: --all
//   - Values from the next argument: -n 5, --count 5
//   - End of options: everything after -- is positional; a lone - is
//     never an option name
//
// Inline long-option values (--count=5) and name abbreviation are
// deliberately not supported.
//
// # Declaration Errors vs Parse Errors
//
// Declaring an option with a malformed or already-used name is a programmer
// error: the Add functions panic with a typed error (InvalidNameError,
// DuplicateNameError) during program setup. Errors in the parsed input
// (UnknownOptionError, MissingArgumentError, ConversionError,
// UnexpectedArgumentError) are returned from Parse and carry the offending
// token, the option name, and the expected type.
//
// # Supported Types
//
// AddFlag and AddAccumFlag work with any type. AddOption and AddArgument
// have built-in converters for:
//   - string, bool
//   - int, int8, int16, int32, int64
//   - uint, uint8, uint16, uint32, uint64
//   - float32, float64
//   - time.Duration
//
// Any other type needs a Converter supplied through AddOptionFunc or
// AddArgumentFunc. Custom converters can also be used to layer validation
// on top of a built-in type.
//
// A Parser is not safe for concurrent use: declare everything, call Parse
// once, then read the values.
package optparse
