// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optparse

import (
	"fmt"
	"strconv"
	"time"
)

// Converter interprets a raw command-line token as a T. A converter must
// consume the entire token: trailing garbage after a number is a failure,
// not a truncation. The string converter is the identity and never fails.
type Converter[T any] func(string) (T, error)

// defaultConverter returns the built-in converter for T, if one exists.
// The built-ins delegate to strconv, which already rejects partially
// consumed tokens, and to time.ParseDuration for durations.
func defaultConverter[T any]() (Converter[T], bool) {
	var zero T
	var conv any
	switch any(zero).(type) {
	case string:
		conv = Converter[string](func(s string) (string, error) {
			return s, nil
		})
	case bool:
		conv = Converter[bool](strconv.ParseBool)
	case int:
		conv = Converter[int](strconv.Atoi)
	case int8:
		conv = intConverter[int8](8)
	case int16:
		conv = intConverter[int16](16)
	case int32:
		conv = intConverter[int32](32)
	case int64:
		conv = intConverter[int64](64)
	case uint:
		conv = uintConverter[uint](strconv.IntSize)
	case uint8:
		conv = uintConverter[uint8](8)
	case uint16:
		conv = uintConverter[uint16](16)
	case uint32:
		conv = uintConverter[uint32](32)
	case uint64:
		conv = uintConverter[uint64](64)
	case float32:
		conv = Converter[float32](func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		})
	case float64:
		conv = Converter[float64](func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case time.Duration:
		conv = Converter[time.Duration](time.ParseDuration)
	default:
		return nil, false
	}
	return conv.(Converter[T]), true
}

func intConverter[T int8 | int16 | int32 | int64](bits int) Converter[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bits)
		return T(v), err
	}
}

func uintConverter[T uint | uint8 | uint16 | uint32 | uint64](bits int) Converter[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		return T(v), err
	}
}

// typeName reports the Go type of T for error messages.
func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
