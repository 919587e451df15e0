// Package gomap provides a container.Table implementation
// backed by Go's native map for benchmark reference.
package gomap

import "github.com/graph-guard/hashset/pkg/hashset"

// KeyInterface is a hashset key with a string representation
// that is unique for its content.
type KeyInterface[K any] interface {
	hashset.Key[K]
	String() string
}

type pair[K, V any] struct {
	Key   K
	Value V
}

// Map clones keys and values on insertion like hashset.Set.
type Map[K KeyInterface[K], V hashset.Value[V]] struct {
	m map[string]pair[K, V]
}

func New[K KeyInterface[K], V hashset.Value[V]](capacity int) *Map[K, V] {
	return &Map[K, V]{m: make(map[string]pair[K, V], capacity)}
}

func (m *Map[K, V]) Add(key K, value V) error {
	s := key.String()
	if p, ok := m.m[s]; ok {
		p.Value = value.Clone()
		m.m[s] = p
		return nil
	}
	m.m[s] = pair[K, V]{Key: key.Clone(), Value: value.Clone()}
	return nil
}

func (m *Map[K, V]) Remove(key K) bool {
	s := key.String()
	if _, ok := m.m[s]; ok {
		delete(m.m, s)
		return true
	}
	return false
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.m[key.String()]
	return ok
}

func (m *Map[K, V]) Lookup(key K) (v V, ok bool) {
	p, ok := m.m[key.String()]
	return p.Value, ok
}

func (m *Map[K, V]) Len() int { return len(m.m) }

func (m *Map[K, V]) Reset() { m.m = make(map[string]pair[K, V]) }

func (m *Map[K, V]) Visit(fn func(K, V) (stop bool)) {
	for _, p := range m.m {
		if fn(p.Key, p.Value) {
			break
		}
	}
}
