package types

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that remembers whether it was supplied at all,
// so partial updates can tell an absent field from an explicit null.
type Optional[T any] struct {
	value   *T
	present bool
}

// Some returns a present, non-null value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: &v, present: true}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if string(bytes.TrimSpace(data)) == "null" {
		o.value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

// Present reports whether the field appeared in the payload
func (o Optional[T]) Present() bool {
	return o.present
}

// Ptr returns the supplied value, or nil when absent or null
func (o Optional[T]) Ptr() *T {
	return o.value
}
