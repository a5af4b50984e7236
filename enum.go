package fsrs

import (
	"encoding/json"
	"fmt"
)

// enum is the name codec behind Rating, State and Mode. names is indexed by
// value; an empty name marks a value that is not part of the enum.
type enum[T ~int] struct {
	kind   string
	err    error
	names  []string
	values map[string]T
}

func newEnum[T ~int](kind string, err error, names ...string) *enum[T] {
	values := make(map[string]T, len(names))
	for v, name := range names {
		if name != "" {
			values[name] = T(v)
		}
	}
	return &enum[T]{kind: kind, err: err, names: names, values: values}
}

func (e *enum[T]) name(v T) (string, bool) {
	i := int(v)
	if i < 0 || i >= len(e.names) || e.names[i] == "" {
		return "", false
	}
	return e.names[i], true
}

// format returns the name of v, or "Kind(n)" for values outside the enum.
func (e *enum[T]) format(v T) string {
	if name, ok := e.name(v); ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", e.kind, int(v))
}

func (e *enum[T]) marshalText(v T) ([]byte, error) {
	name, ok := e.name(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s(%d)", e.err, e.kind, int(v))
	}
	return []byte(name), nil
}

func (e *enum[T]) unmarshalText(text []byte) (T, error) {
	v, ok := e.values[string(text)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", e.err, text)
	}
	return v, nil
}

// marshalJSON encodes v as a JSON string.
func (e *enum[T]) marshalJSON(v T) ([]byte, error) {
	text, err := e.marshalText(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// unmarshalJSON accepts only a JSON string naming a member; null and numbers
// are rejected.
func (e *enum[T]) unmarshalJSON(data []byte) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, fmt.Errorf("%w: %s", e.err, data)
	}
	return e.unmarshalText([]byte(s))
}
