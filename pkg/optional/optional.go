// Package optional distinguishes "field absent" from "field present" in JSON patch bodies.
//
// A PATCH that omits "end_date" leaves the stored value alone, while one that
// sends "end_date": "" or "end_date": null clears it. Plain pointers collapse
// those cases, so patch requests use Value instead.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value records whether a field appeared in the decoded body and its value.
// Null is reported as present with Null set and V left at its zero value.
type Value[T any] struct {
	Set  bool
	Null bool
	V    T
}

// Of returns a present value.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, V: v}
}

// NullOf returns a present, explicitly null value.
func NullOf[T any]() Value[T] {
	return Value[T]{Set: true, Null: true}
}

// UnmarshalJSON is only called when the key is present, which is what sets Set.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.V = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.V)
}

// MarshalJSON writes null for absent or null values.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.V)
}

// Get returns the value and whether it carries a non-null payload.
func (o Value[T]) Get() (T, bool) {
	return o.V, o.Set && !o.Null
}

// Ptr returns nil for absent or null values and a pointer to V otherwise.
func (o Value[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.V
	return &v
}
