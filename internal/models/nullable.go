package models

import (
	"bytes"
	"encoding/json"
)

// Nullable is a patch field for a nullable column. It tells the three
// states of a JSON member apart: absent (Set is false), null (Set and not
// Valid), and a value.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	V     T
}

// NullableFrom sets the field from a pointer; nil becomes an explicit null.
func NullableFrom[T any](p *T) Nullable[T] {
	if p == nil {
		return Nullable[T]{Set: true}
	}
	return Nullable[T]{Set: true, Valid: true, V: *p}
}

// NullableOf sets the field to v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, V: v}
}

// UnmarshalJSON is only called for members present in the body, so it
// always marks the field as set.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	var zero T
	n.Set, n.Valid, n.V = true, false, zero
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(b, &n.V); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns a copy of the value, or nil for null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}

// SQLValue is the bind parameter for the column: nil for null.
func (n Nullable[T]) SQLValue() any {
	if !n.Valid {
		return nil
	}
	return n.V
}
