// Package hashset provides a fixed-capacity hash table over user-defined
// key and value types. Keys and values are cloned on insertion so the table
// never aliases memory owned by the caller. Collisions are resolved by
// chaining entries within a slot. The capacity is chosen once at
// construction and never changes, a prime capacity is recommended
// for polynomial-style key hashes.
//
// A Set is not safe for concurrent use.
package hashset

import (
	"errors"
	"reflect"

	"github.com/yourbasic/bit"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNilKey          = errors.New("nil key")
	ErrNilValue        = errors.New("nil value")
	ErrStaleRef        = errors.New("stale reference")
)

// Key is the capability every key type must provide.
// Hash must be deterministic and derived from the key's content only.
// Equal must be an equivalence relation over content.
// Clone must return an independently owned copy with equal content.
type Key[K any] interface {
	Hash() uint32
	Equal(other K) bool
	Clone() K
}

// Value is the capability every value type must provide.
type Value[V any] interface {
	Clone() V
}

// Set is a hash table with a fixed number of slots.
type Set[K Key[K], V Value[V]] struct {
	size  int
	gen   uint64
	slots []chain[K, V]
	used  *bit.Set // Indexes of non-empty slots
}

// New creates a new set with the given number of slots.
func New[K Key[K], V Value[V]](capacity int) (*Set[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Set[K, V]{
		slots: make([]chain[K, V], capacity),
		used:  bit.New(),
	}, nil
}

// MustNew is like New but panics if capacity isn't positive.
func MustNew[K Key[K], V Value[V]](capacity int) *Set[K, V] {
	s, err := New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return s
}

// Add associates a clone of value with key. If an equal key is already
// stored its value is replaced, otherwise a new entry owning clones
// of both key and value is appended to the key's slot.
func (s *Set[K, V]) Add(key K, value V) error {
	if isNil(key) {
		return ErrNilKey
	}
	if isNil(value) {
		return ErrNilValue
	}
	i := s.slot(key)
	if e := s.slots[i].find(key); e != nil {
		e.value = value.Clone()
		s.gen++
		return nil
	}
	s.slots[i].append(&entry[K, V]{
		key:   key.Clone(),
		value: value.Clone(),
	})
	s.used.Add(i)
	s.size++
	s.gen++
	return nil
}

// Remove deletes the entry associated with key.
// Noop if the key doesn't exist.
func (s *Set[K, V]) Remove(key K) (removed bool) {
	if isNil(key) {
		return false
	}
	i := s.slot(key)
	if s.slots[i].remove(key) == nil {
		return false
	}
	if s.slots[i].len == 0 {
		s.used.Delete(i)
	}
	s.size--
	s.gen++
	return true
}

// Contains returns true if an entry with an equal key exists.
func (s *Set[K, V]) Contains(key K) bool {
	return s.lookup(key) != nil
}

// Lookup returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
//
// The returned value is owned by the set, not a copy. With pointer value
// types it may be mutated in place but it must not be used after
// the key is removed or the set is reset.
func (s *Set[K, V]) Lookup(key K) (value V, ok bool) {
	if e := s.lookup(key); e != nil {
		return e.value, true
	}
	return value, false
}

// LookupFn calls fn providing a pointer to the stored value and
// returns true if key exists, otherwise returns false without calling fn.
// The pointer must not escape fn.
func (s *Set[K, V]) LookupFn(key K, fn func(*V)) (ok bool) {
	if e := s.lookup(key); e != nil {
		fn(&e.value)
		return true
	}
	return false
}

// Len returns the number of stored entries.
func (s *Set[K, V]) Len() int { return s.size }

// Capacity returns the number of slots.
func (s *Set[K, V]) Capacity() int { return len(s.slots) }

// Reset releases all entries. The capacity remains unchanged.
func (s *Set[K, V]) Reset() {
	s.used.Visit(func(i int) (skip bool) {
		s.slots[i] = chain[K, V]{}
		return false
	})
	s.used = bit.New()
	s.size = 0
	s.gen++
}

func (s *Set[K, V]) slot(key K) int {
	return int(uint64(key.Hash()) % uint64(len(s.slots)))
}

func (s *Set[K, V]) lookup(key K) *entry[K, V] {
	if isNil(key) {
		return nil
	}
	return s.slots[s.slot(key)].find(key)
}

// isNil reports whether t holds a nil pointer, map, function, channel
// or interface. Nil slices are valid empty content.
func isNil[T any](t T) bool {
	v := reflect.ValueOf(any(t))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map,
		reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
