// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui is the terminal shim for the parser's rendering: line-width
// detection for help wrapping and colored diagnostics. Nothing here affects
// parsing semantics.
package tui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultWidth is the line width used when no terminal size is available.
const DefaultWidth = 80

// Width reports the line width to wrap output for f. A terminal reports its
// own size; otherwise the COLUMNS environment variable is honored, then
// DefaultWidth.
func Width(f *os.File) int {
	if fd := int(f.Fd()); term.IsTerminal(fd) {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return cols
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}

// Errorf writes a red diagnostic line to w. Color is stripped when w is not
// a terminal or NO_COLOR is set.
func Errorf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.RedString(format, a...))
}

// Warnf writes a yellow diagnostic line to w.
func Warnf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.YellowString(format, a...))
}
