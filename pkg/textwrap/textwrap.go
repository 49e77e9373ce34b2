// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textwrap emits words into a strings.Builder, wrapping lines at a
// target width with a hanging indent. It is the text-layout collaborator of
// the usage and help renderers and has no parsing semantics of its own.
package textwrap

import "strings"

// Wrapper appends words to a builder one at a time, inserting a separator
// space between words on a line and breaking to an indented fresh line when
// the next word would cross the width. A word longer than the width is
// emitted unbroken.
type Wrapper struct {
	b       *strings.Builder
	width   int
	indent  int
	current int // column the next write starts at
}

// New returns a Wrapper writing to b. start is the column already occupied
// on the current line, width the target line width, and indent the column
// continuation lines begin at.
func New(b *strings.Builder, start, width, indent int) *Wrapper {
	return &Wrapper{b: b, width: width, indent: indent, current: start}
}

// Word writes one word, wrapping first if it would cross the width.
func (w *Wrapper) Word(word string) {
	if w.current > w.indent && w.current+len(word)+1 >= w.width {
		w.b.WriteByte('\n')
		for i := 0; i < w.indent; i++ {
			w.b.WriteByte(' ')
		}
		w.current = w.indent
	}
	if w.current > w.indent {
		w.b.WriteByte(' ')
		w.current++
	}
	w.b.WriteString(word)
	w.current += len(word)
}

// Words splits text on whitespace and writes each field.
func (w *Wrapper) Words(text string) {
	for _, word := range strings.Fields(text) {
		w.Word(word)
	}
}
