// Package nullable distinguishes "absent" from "explicit null" in partial
// update payloads.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state patch value:
//   - Set == false: the key was absent, leave the column untouched
//   - Set == true, Value == nil: the key was null, clear the column
//   - Set == true, Value != nil: write the value
type Field[T any] struct {
	Set   bool
	Value *T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null returns a Field that clears the column.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// From converts an optional pointer into a set Field; nil becomes Null.
func From[T any](v *T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func (f Field[T]) IsNull() bool {
	return f.Set && f.Value == nil
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}
