package model

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// OrderedMap is a read-only string keyed map that remembers the order in
// which keys appeared in the decoded JSON object.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap builds an OrderedMap from entries. Later duplicates
// overwrite the value but keep the first position.
func NewOrderedMap[V any](entries ...Entry[V]) OrderedMap[V] {
	m := OrderedMap[V]{values: make(map[string]V, len(entries))}
	for _, e := range entries {
		m.set(e.Key, e.Value)
	}
	return m
}

// Entry is a single key/value pair of an OrderedMap.
type Entry[V any] struct {
	Key   string
	Value V
}

func (m *OrderedMap[V]) set(key string, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Len returns the number of keys.
func (m OrderedMap[V]) Len() int { return len(m.keys) }

// Get returns the value stored for key.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns a copy of the keys in document order.
func (m OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Entries returns the pairs in document order.
func (m OrderedMap[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Entry[V]{Key: k, Value: m.values[k]})
	}
	return out
}

// UnmarshalJSON decodes a JSON object keeping its key order. null leaves the
// map empty.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("model: invalid JSON object")
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*m = OrderedMap[V]{}
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("model: expected JSON object, got %s", res.Type)
	}

	out := OrderedMap[V]{values: make(map[string]V)}
	var decodeErr error
	res.ForEach(func(key, value gjson.Result) bool {
		var v V
		if err := json.Unmarshal([]byte(value.Raw), &v); err != nil {
			decodeErr = fmt.Errorf("model: decode %q: %w", key.String(), err)
			return false
		}
		out.set(key.String(), v)
		return true
	})
	if decodeErr != nil {
		return decodeErr
	}

	*m = out
	return nil
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, k := range m.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("model: encode %q: %w", k, err)
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}
