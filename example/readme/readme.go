// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command readme is the minimal sample from the package documentation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/parsekit/parsekit/pkg/optparse"
)

func main() {
	parser := optparse.New("This program just parses command line arguments")
	flag := optparse.AddFlag(parser, []string{"-f", "--flag"}, true, false).
		Help("Activate flag")
	number := optparse.AddOption[int](parser, []string{"-n", "--num"}, 0).
		Help("Set a number")
	stringArg := optparse.AddArgument[string](parser, "string").
		Help("This is a required string")

	if err := parser.Parse(os.Args); err != nil {
		if errors.Is(err, optparse.ErrHelp) {
			fmt.Print(parser.Help())
			return
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, parser.Usage())
		os.Exit(1)
	}

	set := "un"
	if flag.Get() {
		set = ""
	}
	fmt.Printf("Flag was %sset, number was %d, and the string arg was %q\n",
		set, number.Get(), stringArg.Get())
}
