// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

// registry owns every declared option. The arena slice is the single owner;
// the short- and long-name maps hold indices into it, and positionals keep
// their own declaration-ordered sequence. The registry is populated during
// declaration and read-only once Parse begins.
type registry struct {
	options     []Option
	shorts      map[byte]int
	longs       map[string]int
	positionals []Option
}

func newRegistry() *registry {
	return &registry{
		shorts: make(map[byte]int),
		longs:  make(map[string]int),
	}
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// splitName classifies one declared name as short or long, validating its
// shape. Exactly one of short and long is set on success.
func splitName(name string) (short byte, long string, err error) {
	if len(name) < 2 || name[0] != optionPrefix {
		return 0, "", &InvalidNameError{Name: name, Reason: "must start with - or --"}
	}
	if name[1] != optionPrefix {
		if len(name) != 2 {
			return 0, "", &InvalidNameError{Name: name, Reason: "short names are a single character; use -- for long names"}
		}
		if !isAlnum(name[1]) {
			return 0, "", &InvalidNameError{Name: name, Reason: "short names must be alphanumeric"}
		}
		return name[1], "", nil
	}
	long = name[2:]
	if len(long) < 2 {
		return 0, "", &InvalidNameError{Name: name, Reason: "long names must be at least two characters"}
	}
	if !isAlnum(long[0]) {
		return 0, "", &InvalidNameError{Name: name, Reason: "long names must start with an alphanumeric character"}
	}
	for i := 1; i < len(long); i++ {
		if !isAlnum(long[i]) && long[i] != '-' {
			return 0, "", &InvalidNameError{Name: name, Reason: "long names may contain only alphanumerics and hyphens"}
		}
	}
	if long[len(long)-1] == '-' {
		return 0, "", &InvalidNameError{Name: name, Reason: "long names may not end with a hyphen"}
	}
	return 0, long, nil
}

// enroll registers a named option under all of its declared names. The
// whole name set is validated, against the registry and against itself,
// before any mutation so that a failing declaration leaves no partial
// registration behind.
func (reg *registry) enroll(declared []string, opt Option) (names, error) {
	if len(declared) == 0 {
		return names{}, &InvalidNameError{Reason: "an option needs at least one name"}
	}
	n := names{display: declared[0]}
	seenShort := make(map[byte]bool)
	seenLong := make(map[string]bool)
	for _, name := range declared {
		short, long, err := splitName(name)
		if err != nil {
			return names{}, err
		}
		if long == "" {
			if seenShort[short] {
				return names{}, &DuplicateNameError{Name: name}
			}
			if _, taken := reg.shorts[short]; taken {
				return names{}, &DuplicateNameError{Name: name}
			}
			seenShort[short] = true
			n.shorts = append(n.shorts, short)
			continue
		}
		if seenLong[long] {
			return names{}, &DuplicateNameError{Name: name}
		}
		if _, taken := reg.longs[long]; taken {
			return names{}, &DuplicateNameError{Name: name}
		}
		seenLong[long] = true
		n.longs = append(n.longs, long)
	}

	idx := len(reg.options)
	reg.options = append(reg.options, opt)
	for _, short := range n.shorts {
		reg.shorts[short] = idx
	}
	for _, long := range n.longs {
		reg.longs[long] = idx
	}
	return n, nil
}

// enrollPositional appends a positional argument to the ordered sequence.
func (reg *registry) enrollPositional(name string, opt Option) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "positional arguments need a name"}
	}
	if name[0] == optionPrefix {
		return &InvalidNameError{Name: name, Reason: "positional argument names may not start with -"}
	}
	reg.positionals = append(reg.positionals, opt)
	return nil
}

func (reg *registry) lookupShort(c byte) (Option, bool) {
	idx, ok := reg.shorts[c]
	if !ok {
		return nil, false
	}
	return reg.options[idx], true
}

func (reg *registry) lookupLong(name string) (Option, bool) {
	idx, ok := reg.longs[name]
	if !ok {
		return nil, false
	}
	return reg.options[idx], true
}
