package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pair is a single key/value entry of an OrderedMap
type Pair[V any] struct {
	Key   string
	Value V
}

// OrderedMap is a JSON object that keeps its keys in insertion order
type OrderedMap[V any] []Pair[V]

// Tree is a nested mapping whose values are either further Trees or leaves
// (strings, string lists)
type Tree = OrderedMap[any]

// Get returns the value stored under key
func (m OrderedMap[V]) Get(key string) (V, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	var zero V
	return zero, false
}

// Keys returns the keys in order
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, p := range m {
		keys = append(keys, p.Key)
	}
	return keys
}

// MarshalJSON writes the object with keys in insertion order
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeRaw(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := encodeRaw(p.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", p.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the key order of the input
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	out := OrderedMap[V]{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var value V
		if dyn, ok := any(&value).(*any); ok {
			v, err := decodeDynamic(dec)
			if err != nil {
				return fmt.Errorf("failed to decode %q: %w", key, err)
			}
			*dyn = v
		} else if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode %q: %w", key, err)
		}

		out = append(out, Pair[V]{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}

// decodeDynamic decodes an untyped value so that objects come back as Trees
// and string arrays as []string
func decodeDynamic(dec *json.Decoder) (any, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty value")
	}

	switch trimmed[0] {
	case '{':
		var tree Tree
		if err := json.Unmarshal(trimmed, &tree); err != nil {
			return nil, err
		}
		return tree, nil
	case '[':
		var strs []string
		if err := json.Unmarshal(trimmed, &strs); err == nil {
			return strs, nil
		}
		var items []any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	default:
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// encodeRaw marshals v without HTML escaping
func encodeRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// CountLeaves counts every non-mapping value reachable from tree, at any
// depth. Nested OrderedMaps of any value type are descended into.
func CountLeaves(tree Tree) int {
	return tree.countLeaves()
}

type leafCounter interface {
	countLeaves() int
}

func (m OrderedMap[V]) countLeaves() int {
	count := 0
	for _, p := range m {
		if sub, ok := any(p.Value).(leafCounter); ok {
			count += sub.countLeaves()
			continue
		}
		count++
	}
	return count
}
