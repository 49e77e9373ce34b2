// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

import "strings"

// Option is the behavior shared by every parseable unit: flags,
// accumulating flags, single-value options, and positional arguments.
// The set is closed; all implementations live in this package.
type Option interface {
	// parse consumes this option's values (if any) from the reader and
	// updates the value slot.
	parse(r *TokenReader) error
	// shortUsage is the one-line usage fragment, e.g. "[-x]" or
	// "[--count <n>]".
	shortUsage() string
	// longUsage lists every alias with its argument fragment, e.g.
	// "-n <n>, --count <n>".
	longUsage() string
	// helpText is the declared help string, possibly empty.
	helpText() string
}

// names is the declared identity of a named option: its aliases in
// declaration order and the help text. It is embedded by every named
// variant.
type names struct {
	display string   // first declared name, with its dashes
	shorts  []byte   // short-name characters in declaration order
	longs   []string // long names in declaration order, dashes stripped
	help    string
}

func (n *names) helpText() string { return n.help }

// aliasList joins every declared alias, each followed by the argument
// fragment: "-n <n>, --count <n>".
func (n *names) aliasList(fragment string) string {
	parts := make([]string, 0, len(n.shorts)+len(n.longs))
	for _, s := range n.shorts {
		parts = append(parts, string(optionPrefix)+string(s)+fragment)
	}
	for _, l := range n.longs {
		parts = append(parts, longOptionPrefix+l+fragment)
	}
	return strings.Join(parts, ", ")
}

// Flag is an option that takes no value: matching it overwrites the value
// slot with the declared constant. Declare one with AddFlag.
type Flag[T any] struct {
	names
	value    T
	constant T
}

func (f *Flag[T]) parse(r *TokenReader) error {
	f.value = f.constant
	return nil
}

func (f *Flag[T]) shortUsage() string { return "[" + f.display + "]" }
func (f *Flag[T]) longUsage() string  { return f.aliasList("") }

// Get returns the flag's value: the default before parsing, the constant
// after the flag was matched.
func (f *Flag[T]) Get() T { return f.value }

// Help sets the help text and returns the flag for chaining.
func (f *Flag[T]) Help(text string) *Flag[T] {
	f.help = text
	return f
}

// AccumFlag is a flag that may be matched any number of times: each match
// folds the previous value and the constant through the combining function,
// enabling count-occurrences or OR-together semantics. Declare one with
// AddAccumFlag.
type AccumFlag[T any] struct {
	names
	value    T
	constant T
	combine  func(T, T) T
}

func (f *AccumFlag[T]) parse(r *TokenReader) error {
	f.value = f.combine(f.value, f.constant)
	return nil
}

func (f *AccumFlag[T]) shortUsage() string { return "[" + f.display + "]..." }
func (f *AccumFlag[T]) longUsage() string  { return f.aliasList("") + "..." }

// Get returns the accumulated value.
func (f *AccumFlag[T]) Get() T { return f.value }

// Help sets the help text and returns the flag for chaining.
func (f *AccumFlag[T]) Help(text string) *AccumFlag[T] {
	f.help = text
	return f
}

// helpOption is the built-in -h/--help flag. Matching it aborts the parse
// with ErrHelp; the caller decides how to render and where to exit.
type helpOption struct {
	names
}

func (h *helpOption) parse(r *TokenReader) error { return ErrHelp }
func (h *helpOption) shortUsage() string         { return "[" + h.display + "]" }
func (h *helpOption) longUsage() string          { return h.aliasList("") }
