// SPDX-License-Identifier: Unlicense OR MIT

// Package numeric implements stepping, parsing and formatting for
// the numeric widgets over any integer or floating point type.
package numeric

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/width"
)

// Number is the set of types numeric widgets accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Inc returns v+step, or hi if that exceeds hi or overflows.
func Inc[T Number](v, step, hi T) T {
	next := v + step
	if next > hi || next < v {
		return hi
	}
	return next
}

// Dec returns v-step, or lo if that falls below lo or overflows.
func Dec[T Number](v, step, lo T) T {
	next := v - step
	if next < lo || next > v {
		return lo
	}
	return next
}

// Max returns the largest value of T.
func Max[T Number]() T {
	var zero T
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(int64(1)<<(t.Bits()-1) - 1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return T(^uint64(0) >> (64 - t.Bits()))
	case reflect.Float32:
		f := float32(math.MaxFloat32)
		return T(f)
	default:
		f := math.MaxFloat64
		return T(f)
	}
}

// Signed reports whether T holds negative values.
func Signed[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// Fold maps full width digits and signs to their ASCII forms.
func Fold(s string) string {
	return width.Narrow.String(s)
}

// Parse parses s as a T. It fails on empty input, syntax errors and
// values out of the range of T.
func Parse[T Number](s string) (T, bool) {
	var zero T
	s = strings.TrimSpace(Fold(s))
	if s == "" {
		return zero, false
	}
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return zero, false
		}
		return T(v), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return zero, false
		}
		return T(v), true
	default:
		v, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return zero, false
		}
		return T(v), true
	}
}

// Format returns the shortest decimal form of v.
func Format[T Number](v T) string {
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(int64(v), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatFloat(float64(v), 'f', -1, t.Bits())
	}
}
