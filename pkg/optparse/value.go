// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

// ValueOption is a named option that consumes exactly one value, runs it
// through its converter, and overwrites the value slot. Declare one with
// AddOption or AddOptionFunc.
type ValueOption[T any] struct {
	names
	meta    string // display name for the value, e.g. "count" in "--count <count>"
	value   T
	convert Converter[T]
}

func (o *ValueOption[T]) parse(r *TokenReader) error {
	raw, ok := r.ReadValue()
	if !ok {
		return &MissingArgumentError{Name: o.display}
	}
	v, err := o.convert(raw)
	if err != nil {
		return &ConversionError{Name: o.display, Value: raw, Type: typeName[T](), Err: err}
	}
	o.value = v
	return nil
}

func (o *ValueOption[T]) shortUsage() string {
	return "[" + o.display + " <" + o.meta + ">]"
}

func (o *ValueOption[T]) longUsage() string {
	return o.aliasList(" <" + o.meta + ">")
}

// Get returns the option's value: the default before parsing, the last
// converted value after.
func (o *ValueOption[T]) Get() T { return o.value }

// Help sets the help text and returns the option for chaining.
func (o *ValueOption[T]) Help(text string) *ValueOption[T] {
	o.help = text
	return o
}

// Meta overrides the display name of the option's value in usage text.
// It defaults to the first long name, or the first short name if the
// option has no long name.
func (o *ValueOption[T]) Meta(name string) *ValueOption[T] {
	o.meta = name
	return o
}

// defaultMeta derives the meta-variable name from the declared names.
func (n *names) defaultMeta() string {
	if len(n.longs) > 0 {
		return n.longs[0]
	}
	return string(n.shorts[0])
}

// Argument is a required positional argument, matched by declaration order
// rather than by name. Its value-consumption and conversion contract is
// identical to ValueOption's. Declare one with AddArgument or
// AddArgumentFunc.
type Argument[T any] struct {
	name    string
	help    string
	value   T
	convert Converter[T]
}

func (a *Argument[T]) parse(r *TokenReader) error {
	raw, ok := r.ReadValue()
	if !ok {
		return &MissingArgumentError{Name: a.name}
	}
	v, err := a.convert(raw)
	if err != nil {
		return &ConversionError{Name: a.name, Value: raw, Type: typeName[T](), Err: err}
	}
	a.value = v
	return nil
}

func (a *Argument[T]) shortUsage() string { return "<" + a.name + ">" }
func (a *Argument[T]) longUsage() string  { return "<" + a.name + ">" }
func (a *Argument[T]) helpText() string   { return a.help }

// Get returns the argument's value: the zero value before parsing, the
// converted token after.
func (a *Argument[T]) Get() T { return a.value }

// Help sets the help text and returns the argument for chaining.
func (a *Argument[T]) Help(text string) *Argument[T] {
	a.help = text
	return a
}
