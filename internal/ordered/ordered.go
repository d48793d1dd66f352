// Package ordered provides an insertion-ordered string-keyed map.
//
// Bootsync's two central data structures — the desired configuration and the
// observed boot-entry state — are both label-keyed maps whose iteration order
// is semantically meaningful: declaration order in the config file decides the
// final boot order, and report order decides how observed entries are matched.
// Go's built-in map randomizes iteration, so both are backed by this container
// (a key slice plus a lookup map).
package ordered

// Map is a string-keyed map that iterates in insertion order.
// Setting an existing key overwrites its value but keeps its original
// position. The zero value is not usable; use New.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{
		values: make(map[string]V),
	}
}

// Set stores the value under key. A key seen for the first time is appended
// at the end; an existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.keys)
}
