// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

// optionPrefix introduces option syntax. Doubled, it forms the
// end-of-options marker "--".
const optionPrefix = '-'

// longOptionPrefix is the doubled prefix introducing long-option names.
const longOptionPrefix = string(optionPrefix) + string(optionPrefix)

// tokenKind classifies a lexeme produced by the TokenReader.
type tokenKind int

const (
	tokenEnd    tokenKind = iota // argument vector exhausted
	tokenShort                   // single short-option character
	tokenLong                    // long-option name, dashes stripped
	tokenValue                   // free-standing positional value
	tokenMarker                  // the "--" end-of-options marker
)

// token is one classified lexeme. For tokenShort the text is a single
// character; for tokenLong it is the name without dashes; for tokenValue it
// is the whole raw argument.
type token struct {
	kind tokenKind
	text string
}

// cursorState tracks where the reader stands within the current raw token.
// The distinction matters for short-option clusters (-abc) and attached
// values (-n5), where classification and value fetching resume mid-token.
type cursorState int

const (
	cursorConsumed cursorState = iota // current token fully handled, pull the next one
	cursorAtStart                     // current token fetched but not yet interpreted
	cursorMid                         // inside a cluster or ahead of an attached value
)

// TokenReader walks a raw argument vector and produces classified tokens.
// It owns the cursor state shared between token classification and the
// value fetching done by options that take an argument. One TokenReader
// serves exactly one Parse call.
type TokenReader struct {
	args    []string
	next    int    // index of the next raw argument
	current string // raw argument being interpreted
	offset  int    // cursor into current, meaningful in cursorMid
	state   cursorState

	// optionsEnabled is flipped permanently false by the "--" marker;
	// afterwards every token is a value regardless of leading dashes.
	optionsEnabled bool
}

func newTokenReader(args []string) *TokenReader {
	return &TokenReader{args: args, state: cursorConsumed, optionsEnabled: true}
}

// nextToken classifies and returns the next lexeme. Inside a short-option
// cluster it emits one character at a time; otherwise it pulls the next raw
// argument and classifies it whole. A lone "-" does not satisfy the
// short-option shape and falls through to tokenValue.
func (r *TokenReader) nextToken() token {
	if r.state == cursorMid {
		ch := r.current[r.offset]
		r.offset++
		if r.offset == len(r.current) {
			r.state = cursorConsumed
		}
		return token{kind: tokenShort, text: string(ch)}
	}

	if r.state == cursorConsumed {
		if r.next >= len(r.args) {
			return token{kind: tokenEnd}
		}
		r.current = r.args[r.next]
		r.next++
		r.offset = 0
		r.state = cursorAtStart
	}

	if r.optionsEnabled && len(r.current) == 2 &&
		r.current[0] == optionPrefix && r.current[1] == optionPrefix {
		r.optionsEnabled = false
		r.state = cursorConsumed
		return token{kind: tokenMarker}
	}

	if r.optionsEnabled && len(r.current) >= 2 &&
		r.current[0] == optionPrefix && r.current[1] != optionPrefix {
		r.offset = 2
		if r.offset == len(r.current) {
			r.state = cursorConsumed
		} else {
			r.state = cursorMid
		}
		return token{kind: tokenShort, text: string(r.current[1])}
	}

	if r.optionsEnabled && len(r.current) > 2 &&
		r.current[0] == optionPrefix && r.current[1] == optionPrefix {
		r.state = cursorConsumed
		return token{kind: tokenLong, text: r.current[2:]}
	}

	// Positional value. The cursor stays at the token start so that the
	// positional's ReadValue call re-reads the same raw argument.
	return token{kind: tokenValue, text: r.current}
}

// ReadValue fetches the next free-standing value for an option that takes
// an argument. Mid-token it greedily consumes the remainder of the current
// raw argument (the attached-value form -n5). Otherwise it pulls the next
// raw argument verbatim, unless that argument is option-shaped while option
// syntax is still honored, in which case it reports failure rather than
// consuming a flag as a value.
func (r *TokenReader) ReadValue() (string, bool) {
	if r.state == cursorMid {
		v := r.current[r.offset:]
		r.state = cursorConsumed
		return v, true
	}

	if r.state == cursorConsumed {
		if r.next >= len(r.args) {
			return "", false
		}
		r.current = r.args[r.next]
		r.next++
		r.offset = 0
		r.state = cursorAtStart
	}

	if r.optionsEnabled && len(r.current) >= 1 && r.current[0] == optionPrefix {
		return "", false
	}
	r.state = cursorConsumed
	return r.current, true
}
