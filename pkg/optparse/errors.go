// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Parse when the built-in help flag is matched.
// Callers should print Parser.Help and exit zero.
var ErrHelp = errors.New("help requested")

// InvalidNameError is the panic value when a declared option name has the
// wrong shape. Short names are "-x" with x alphanumeric; long names are
// "--name" with an alphanumeric first character, internal hyphens allowed,
// and at least two characters after the dashes.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid option name %q: %s", e.Name, e.Reason)
}

// DuplicateNameError is the panic value when a declared name collides with
// one already registered. Registration is atomic: a declaration that fails
// on its second name leaves no trace of its first.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate option name %q", e.Name)
}

// UnknownOptionError is returned when the input names an option that was
// never declared. Name carries its dashes as it appeared on the command line.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %s", e.Name)
}

// MissingArgumentError is returned when an option or positional argument
// required a value and none was available: the argument vector was
// exhausted, or the next token was itself option-shaped.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s requires an argument, but none was supplied", e.Name)
}

// ConversionError is returned when a supplied value could not be converted
// to the declared type. Err holds the underlying converter error.
type ConversionError struct {
	Name  string // option or argument the value was for
	Value string // the offending token
	Type  string // the declared Go type
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot interpret %q as %s for %s", e.Value, e.Type, e.Name)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// UnexpectedArgumentError is returned when a positional value is supplied
// after every declared positional argument has been satisfied.
type UnexpectedArgumentError struct {
	Value string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument %q", e.Value)
}
