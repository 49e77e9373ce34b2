// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

// Parser ties declared options to the token stream. Declare options with
// the Add functions, call Parse once, then read values from the handles the
// Add functions returned. A Parser has no internal synchronization;
// concurrent Parse calls must be serialized by the caller.
type Parser struct {
	reg         *registry
	program     string
	description string
	width       int // help/usage line width; 0 means detect at render time
}

// New returns a Parser with a built-in -h/--help flag. The description is
// shown in help output and may be empty.
func New(description string) *Parser {
	p := NewWithoutHelp(description)
	h := &helpOption{}
	h.names = p.enroll([]string{"-h", "--help"}, h)
	h.help = "Show this help message and exit"
	return p
}

// NewWithoutHelp returns a Parser without the built-in help flag, freeing
// -h and --help for the caller.
func NewWithoutHelp(description string) *Parser {
	return &Parser{reg: newRegistry(), description: description}
}

// enroll registers a named option, panicking on declaration errors: a
// malformed or colliding name is a programmer error and aborts setup.
func (p *Parser) enroll(declared []string, opt Option) names {
	n, err := p.reg.enroll(declared, opt)
	if err != nil {
		panic(err)
	}
	return n
}

// AddFlag declares a flag that takes no value. Matching any of its names
// sets the value to constant; until then Get returns def. Names carry
// their dashes: short names like "-a", long names like "--all".
// Declaration errors panic with InvalidNameError or DuplicateNameError.
func AddFlag[T any](p *Parser, name []string, constant, def T) *Flag[T] {
	f := &Flag[T]{value: def, constant: constant}
	f.names = p.enroll(name, f)
	return f
}

// AddAccumFlag declares a flag that folds every match into its value with
// combine: value = combine(value, constant). Counting matches is
// AddAccumFlag(p, names, 1, 0, func(a, b int) int { return a + b }).
// The combining function is required.
func AddAccumFlag[T any](p *Parser, name []string, constant, def T, combine func(T, T) T) *AccumFlag[T] {
	if combine == nil {
		panic("optparse: AddAccumFlag requires a combine function")
	}
	f := &AccumFlag[T]{value: def, constant: constant, combine: combine}
	f.names = p.enroll(name, f)
	return f
}

// AddOption declares an option that takes one value, converted with the
// built-in converter for T. It panics if T has no built-in converter; use
// AddOptionFunc for custom types.
func AddOption[T any](p *Parser, name []string, def T) *ValueOption[T] {
	convert, ok := defaultConverter[T]()
	if !ok {
		panic("optparse: no built-in converter for " + typeName[T]() + "; use AddOptionFunc")
	}
	return AddOptionFunc(p, name, def, convert)
}

// AddOptionFunc declares an option that takes one value, converted with the
// supplied converter.
func AddOptionFunc[T any](p *Parser, name []string, def T, convert Converter[T]) *ValueOption[T] {
	if convert == nil {
		panic("optparse: AddOptionFunc requires a converter")
	}
	o := &ValueOption[T]{value: def, convert: convert}
	o.names = p.enroll(name, o)
	o.meta = o.defaultMeta()
	return o
}

// AddArgument declares a required positional argument, converted with the
// built-in converter for T. Positionals are matched in declaration order
// and named without dashes.
func AddArgument[T any](p *Parser, name string) *Argument[T] {
	convert, ok := defaultConverter[T]()
	if !ok {
		panic("optparse: no built-in converter for " + typeName[T]() + "; use AddArgumentFunc")
	}
	return AddArgumentFunc(p, name, convert)
}

// AddArgumentFunc declares a required positional argument with a custom
// converter.
func AddArgumentFunc[T any](p *Parser, name string, convert Converter[T]) *Argument[T] {
	if convert == nil {
		panic("optparse: AddArgumentFunc requires a converter")
	}
	a := &Argument[T]{name: name, convert: convert}
	if err := p.reg.enrollPositional(name, a); err != nil {
		panic(err)
	}
	return a
}

// Parse walks the argument vector and dispatches each token to the option
// it names, or to the next positional argument in declaration order.
// argv[0] is taken as the program name for display; parsing starts at
// argv[1]. The first error aborts the parse and is returned; ErrHelp is
// returned when the built-in help flag is matched.
func (p *Parser) Parse(argv []string) error {
	args := argv
	if len(args) > 0 {
		if p.program == "" {
			p.program = args[0]
		}
		args = args[1:]
	}

	r := newTokenReader(args)
	pos := 0
	for {
		tok := r.nextToken()
		if tok.kind == tokenEnd {
			break
		}
		switch tok.kind {
		case tokenShort:
			opt, ok := p.reg.lookupShort(tok.text[0])
			if !ok {
				return &UnknownOptionError{Name: string(optionPrefix) + tok.text}
			}
			if err := opt.parse(r); err != nil {
				return err
			}
		case tokenLong:
			opt, ok := p.reg.lookupLong(tok.text)
			if !ok {
				return &UnknownOptionError{Name: longOptionPrefix + tok.text}
			}
			if err := opt.parse(r); err != nil {
				return err
			}
		case tokenValue:
			if pos >= len(p.reg.positionals) {
				return &UnexpectedArgumentError{Value: tok.text}
			}
			if err := p.reg.positionals[pos].parse(r); err != nil {
				return err
			}
			pos++
		case tokenMarker:
			// Option syntax is now off; subsequent tokens are values.
		}
	}

	// Unsatisfied trailing positionals each parse against the exhausted
	// reader and report their own missing-argument error.
	for ; pos < len(p.reg.positionals); pos++ {
		if err := p.reg.positionals[pos].parse(r); err != nil {
			return err
		}
	}
	return nil
}
