// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func demoParser() *Parser {
	p := New("A demo parser.")
	p.SetProgram("prog")
	p.SetWidth(80)
	AddFlag(p, []string{"-b", "--bool"}, true, false).Help("Set the bool")
	AddOption[float64](p, []string{"-d", "--double"}, 0).Help("How much")
	AddArgument[string](p, "name").Help("The name")
	return p
}

func TestUsage(t *testing.T) {
	p := demoParser()
	want := "usage: prog [-h] [-b] [-d <double>] <name>\n"
	if diff := cmp.Diff(want, p.Usage()); diff != "" {
		t.Errorf("Usage() mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageWraps(t *testing.T) {
	p := New("")
	p.SetProgram("prog")
	p.SetWidth(30)
	AddFlag(p, []string{"-a"}, true, false)
	AddFlag(p, []string{"-b"}, true, false)
	AddFlag(p, []string{"-c"}, true, false)
	AddArgument[string](p, "name")

	want := strings.Join([]string{
		"usage: prog [-h] [-a] [-b]",
		"       [-c] <name>",
		"",
	}, "\n")
	if diff := cmp.Diff(want, p.Usage()); diff != "" {
		t.Errorf("Usage() mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageAccumFlagEllipsis(t *testing.T) {
	p := NewWithoutHelp("")
	p.SetProgram("prog")
	p.SetWidth(80)
	AddAccumFlag(p, []string{"-v", "--verbose"}, 1, 0,
		func(a, b int) int { return a + b })

	want := "usage: prog [-v]...\n"
	if diff := cmp.Diff(want, p.Usage()); diff != "" {
		t.Errorf("Usage() mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageMeta(t *testing.T) {
	p := NewWithoutHelp("")
	p.SetProgram("prog")
	p.SetWidth(80)
	AddOption[int](p, []string{"-n"}, 0)
	AddOption[int](p, []string{"--count"}, 0).Meta("N")

	want := "usage: prog [-n <n>] [--count <N>]\n"
	if diff := cmp.Diff(want, p.Usage()); diff != "" {
		t.Errorf("Usage() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelp(t *testing.T) {
	p := demoParser()
	want := strings.Join([]string{
		"usage: prog [-h] [-b] [-d <double>] <name>",
		"",
		"A demo parser.",
		"",
		"Positional Arguments:",
		"  <name>                  The name",
		"",
		"Optional Arguments:",
		"  -h, --help              Show this help message and exit",
		"  -b, --bool              Set the bool",
		"  -d <double>, --double <double>",
		"                          How much",
		"",
	}, "\n")
	if diff := cmp.Diff(want, p.Help()); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpWrapsHelpText(t *testing.T) {
	p := NewWithoutHelp("")
	p.SetProgram("prog")
	p.SetWidth(50)
	AddFlag(p, []string{"-a"}, true, false).
		Help("aaaa bbbb cccc dddd eeee ffff")

	want := strings.Join([]string{
		"usage: prog [-a]",
		"",
		"Optional Arguments:",
		"  -a                      aaaa bbbb cccc dddd",
		"                          eeee ffff",
		"",
	}, "\n")
	if diff := cmp.Diff(want, p.Help()); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpOmitsEmptySections(t *testing.T) {
	p := NewWithoutHelp("No options at all")
	p.SetProgram("prog")
	p.SetWidth(80)
	AddArgument[string](p, "name")

	got := p.Help()
	if strings.Contains(got, "Optional Arguments:") {
		t.Errorf("Help() = %q, want no Optional Arguments section", got)
	}
	if !strings.Contains(got, "Positional Arguments:") {
		t.Errorf("Help() = %q, want a Positional Arguments section", got)
	}
}
