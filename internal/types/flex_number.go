package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexNumber is an optional number that can be unmarshaled from either a JSON
// number or a JSON string holding a number. HTML form clients send both.
// null and "" leave the value unset but mark the field as present.
type FlexNumber[T int | int64 | uint64 | float64] struct {
	value   T
	set     bool
	present bool
}

// FlexInt is an optional integer field
type FlexInt = FlexNumber[int]

// FlexID is an optional identifier field
type FlexID = FlexNumber[uint64]

// FlexFloat is an optional floating point field
type FlexFloat = FlexNumber[float64]

// NewFlexNumber returns a set value
func NewFlexNumber[T int | int64 | uint64 | float64](v T) FlexNumber[T] {
	return FlexNumber[T]{value: v, set: true, present: true}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexNumber[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = FlexNumber[T]{present: true}
		return nil
	}

	raw := data
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = FlexNumber[T]{present: true}
			return nil
		}
		raw = []byte(s)
	}

	var n T
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("expected a number, got %s", string(data))
	}
	*f = FlexNumber[T]{value: n, set: true, present: true}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexNumber[T]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Get returns the value and whether it was supplied
func (f FlexNumber[T]) Get() (T, bool) {
	return f.value, f.set
}

// IsSet reports whether a value was supplied
func (f FlexNumber[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was supplied as null or ""
func (f FlexNumber[T]) IsNull() bool {
	return f.present && !f.set
}

// Ptr returns a pointer to the value, or nil when unset
func (f FlexNumber[T]) Ptr() *T {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}
