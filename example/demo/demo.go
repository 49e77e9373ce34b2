// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command demo walks through the whole declaration surface: flags,
// accumulating flags, value options with built-in and custom converters,
// and positional arguments.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/parsekit/parsekit/pkg/optparse"
	"github.com/parsekit/parsekit/pkg/tui"
)

func main() {
	parser := optparse.New(
		"This is a test program with a description! If descriptions are " +
			"long enough, they'll wrap.")

	// A plain boolean flag: matching -b or --bool sets it to true.
	boolFlag := optparse.AddFlag(parser, []string{"-b", "--bool"}, true, false).
		Help("Set the boolean flag")

	// Flags can carry any type. This one has no short name.
	stringFlag := optparse.AddFlag(parser, []string{"--string"}, "set", "unset").
		Help("Set the string flag")

	// An accumulating flag: every -v bumps the count.
	verbose := optparse.AddAccumFlag(parser, []string{"-v", "--verbose"}, 1, 0,
		func(a, b int) int { return a + b }).
		Help("Increase verbosity; may be repeated")

	// An option taking one value, converted with the built-in float64
	// converter.
	double := optparse.AddOption[float64](parser, []string{"-d", "--double"}, 0).
		Help("This option has a long name, so its help goes on a new line.")

	// A custom converter layers validation on top of the raw token.
	level := optparse.AddOptionFunc(parser, []string{"-l", "--level"}, "info",
		func(s string) (string, error) {
			switch strings.ToLower(s) {
			case "debug", "info", "warn", "error":
				return strings.ToLower(s), nil
			}
			return "", fmt.Errorf("expected debug|info|warn|error")
		}).
		Help("Log level").
		Meta("level")

	// A required positional argument.
	integer := optparse.AddArgument[int](parser, "integer").
		Help("This integer is required but unused. If descriptions are " +
			"long enough, they also wrap.")

	// An extra option to show usage indentation.
	optparse.AddOption[string](parser, []string{"--extra-argument"}, "")

	if err := parser.Parse(os.Args); err != nil {
		if errors.Is(err, optparse.ErrHelp) {
			fmt.Print(parser.Help())
			os.Exit(0)
		}
		tui.Errorf(os.Stderr, "%v", err)
		fmt.Fprint(os.Stderr, parser.Usage())
		os.Exit(1)
	}

	fmt.Printf("Boolean flag   : %v\n", boolFlag.Get())
	fmt.Printf("String flag    : %s\n", stringFlag.Get())
	fmt.Printf("Verbosity      : %d\n", verbose.Get())
	fmt.Printf("Double option  : %g\n", double.Get())
	fmt.Printf("Log level      : %s\n", level.Get())
	fmt.Printf("Int argument   : %d\n", integer.Get())
}
