// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/parsekit/parsekit/pkg/textwrap"
	"github.com/parsekit/parsekit/pkg/tui"
)

// usageIndent is the column continuation lines of the usage line start at,
// aligning them under the program name.
const usageIndent = len("usage: ")

// helpColumn is the column help text starts at in the argument listings.
// Entries that reach into it push their help onto the next line.
const helpColumn = 26

// SetWidth fixes the line width used by Usage and Help. Zero restores
// terminal-width detection.
func (p *Parser) SetWidth(width int) {
	p.width = width
}

// SetProgram fixes the program name shown in usage and help. It otherwise
// defaults to argv[0] of the parsed vector, or os.Args[0] before parsing.
func (p *Parser) SetProgram(name string) {
	p.program = name
}

func (p *Parser) targetWidth() int {
	if p.width > 0 {
		return p.width
	}
	return tui.Width(os.Stdout)
}

func (p *Parser) programName() string {
	if p.program != "" {
		return p.program
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "program"
}

// Usage returns the one-line (word-wrapped) usage string: the program name
// followed by a bracketed fragment per named option in declaration order,
// then the positional arguments.
func (p *Parser) Usage() string {
	var b strings.Builder
	head := "usage: " + p.programName()
	b.WriteString(head)
	w := textwrap.New(&b, len(head), p.targetWidth(), usageIndent)
	for _, opt := range p.reg.options {
		w.Word(opt.shortUsage())
	}
	for _, arg := range p.reg.positionals {
		w.Word(arg.shortUsage())
	}
	b.WriteByte('\n')
	return b.String()
}

// Help returns the full help text: the usage line, the description, and
// listings of the positional and optional arguments with their help
// strings, all wrapped to the target width.
func (p *Parser) Help() string {
	width := p.targetWidth()
	var b strings.Builder
	b.WriteString(p.Usage())

	if p.description != "" {
		b.WriteByte('\n')
		w := textwrap.New(&b, 0, width, 0)
		w.Words(p.description)
		b.WriteByte('\n')
	}

	if len(p.reg.positionals) > 0 {
		b.WriteString("\nPositional Arguments:\n")
		for _, arg := range p.reg.positionals {
			writeEntry(&b, arg, width)
		}
	}
	if len(p.reg.options) > 0 {
		b.WriteString("\nOptional Arguments:\n")
		for _, opt := range p.reg.options {
			writeEntry(&b, opt, width)
		}
	}
	return b.String()
}

// writeEntry emits one listing line: the aliases, then the help text
// aligned at helpColumn, wrapped with a hanging indent. Long invocations
// push the help onto their own line.
func writeEntry(b *strings.Builder, opt Option, width int) {
	entry := "  " + opt.longUsage()
	b.WriteString(entry)
	help := opt.helpText()
	if help == "" {
		b.WriteByte('\n')
		return
	}
	current := len(entry)
	if current+2 > helpColumn {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", helpColumn))
	} else {
		b.WriteString(strings.Repeat(" ", helpColumn-current))
	}
	w := textwrap.New(b, helpColumn, width, helpColumn)
	w.Words(help)
	b.WriteByte('\n')
}
