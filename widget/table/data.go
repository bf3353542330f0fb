// SPDX-License-Identifier: Unlicense OR MIT

package table

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrInvalidField is wrapped by the errors of projections asked for a
// field the record does not have.
var ErrInvalidField = errors.New("table: invalid field")

// FieldError reports an invalid field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("table: invalid field %q", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// Data projects the fields of records of type R. Applications
// usually implement it with a switch on the field name, returning a
// *FieldError for unknown names.
type Data[R any] interface {
	Project(record R, field string) (Value, error)
}

// DataFunc adapts a function to Data.
type DataFunc[R any] func(record R, field string) (Value, error)

func (f DataFunc[R]) Project(record R, field string) (Value, error) {
	return f(record, field)
}

// Sort returns the indices of records in display order for field and
// o. Sorting is stable over the record order; records whose
// projection fails order first when ascending.
func Sort[R any](records []R, data Data[R], field string, o Order) []int {
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	if o == Unordered || data == nil {
		return idx
	}
	type key struct {
		v  Value
		ok bool
	}
	keys := make([]key, len(records))
	for i, r := range records {
		v, err := data.Project(r, field)
		keys[i] = key{v: v, ok: err == nil}
	}
	compare := func(a, b int) int {
		ka, kb := keys[a], keys[b]
		switch {
		case !ka.ok && !kb.ok:
			return 0
		case !ka.ok:
			return -1
		case !kb.ok:
			return 1
		}
		return ka.v.Compare(kb.v)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		if o == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return idx
}
