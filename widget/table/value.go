// SPDX-License-Identifier: Unlicense OR MIT

package table

import (
	"cmp"
	"strconv"
	"strings"
	"time"
)

// Kind is the type of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindBool
	KindTime
)

// Value is an ordered value projected from a record. The zero Value
// is invalid and orders before every other value.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
	t    time.Time
}

// TimeFormat is the layout Time values are displayed with.
const TimeFormat = time.DateTime

func Int(v int64) Value { return Value{kind: KindInt, i: v} }

func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

func String(v string) Value { return Value{kind: KindString, s: v} }

func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

func Bool(v bool) Value {
	val := Value{kind: KindBool}
	if v {
		val.i = 1
	}
	return val
}

// Kind returns the type of v.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) numeric() bool {
	return v.kind == KindInt || v.kind == KindUint || v.kind == KindFloat
}

func (v Value) float() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindUint:
		return float64(v.u)
	default:
		return v.f
	}
}

// Compare returns -1, 0 or +1 depending on whether v orders before,
// with or after w. Numbers of different kinds compare by value;
// otherwise values of different kinds order by kind.
func (v Value) Compare(w Value) int {
	if v.kind != w.kind {
		if v.numeric() && w.numeric() {
			return cmp.Compare(v.float(), w.float())
		}
		return cmp.Compare(v.kind, w.kind)
	}
	switch v.kind {
	case KindInt, KindBool:
		return cmp.Compare(v.i, w.i)
	case KindUint:
		return cmp.Compare(v.u, w.u)
	case KindFloat:
		return cmp.Compare(v.f, w.f)
	case KindString:
		return strings.Compare(v.s, w.s)
	case KindTime:
		return v.t.Compare(w.t)
	default:
		return 0
	}
}

// String returns the text a cell displays for v.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	case KindTime:
		return v.t.Format(TimeFormat)
	default:
		return ""
	}
}
