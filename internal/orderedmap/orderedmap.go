// Package orderedmap is an insertion-ordered map used for attribute
// collection: HTML attributes keep their source order, and a duplicate name
// keeps the first value seen ("first wins").
package orderedmap

import "errors"

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys: make(map[K]V),
	}
}

// Set stores key/value once; setting an existing key reports
// ErrDuplicateEntry and leaves the stored value untouched.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.keys[key]; exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Range visits entries in insertion order until fn returns false.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	for _, k := range m.entries {
		if !fn(k, m.keys[k]) {
			break
		}
	}
}
