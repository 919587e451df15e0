package hashset

import "iter"

// Iterator is a cursor over all entries of a set.
// Entries are produced in ascending slot order and within a slot
// in insertion order. The set must not be modified while an
// iterator is in use.
type Iterator[K Key[K], V Value[V]] struct {
	s    *Set[K, V]
	slot int
	e    *entry[K, V]
	done bool
}

// Iterator returns a new iterator positioned before the first entry.
// Next must be called before reading the first pair.
func (s *Set[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{s: s, slot: -1}
}

// Next advances the iterator and returns true if it points to an entry,
// false once all entries were visited.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}
	if it.e != nil && it.e.next != nil {
		it.e = it.e.next
		return true
	}
	i := it.s.nextSlot(it.slot)
	if i < 0 {
		it.slot, it.e, it.done = len(it.s.slots), nil, true
		return false
	}
	it.slot, it.e = i, it.s.slots[i].head
	return true
}

// Pair returns the key and value the iterator points to.
// Returns zero values if Next wasn't called or returned false.
func (it *Iterator[K, V]) Pair() (key K, value V) {
	if it.e == nil {
		return key, value
	}
	return it.e.key, it.e.value
}

// Done returns true once the iterator is exhausted.
func (it *Iterator[K, V]) Done() bool { return it.done }

// All returns a sequence over all stored key-value pairs.
func (s *Set[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := s.Iterator(); it.Next(); {
			if !yield(it.Pair()) {
				return
			}
		}
	}
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (s *Set[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for i := s.nextSlot(-1); i > -1; i = s.nextSlot(i) {
		for e := s.slots[i].head; e != nil; e = e.next {
			if fn(e.key, e.value) {
				return
			}
		}
	}
}

// VisitAll calls fn for every stored key-value pair.
func (s *Set[K, V]) VisitAll(fn func(key K, value V)) {
	s.Visit(func(key K, value V) bool {
		fn(key, value)
		return false
	})
}

// nextSlot returns the index of the first non-empty slot after i
// or -1 if there's none.
func (s *Set[K, V]) nextSlot(i int) int {
	if i < 0 {
		if s.used.Contains(0) {
			return 0
		}
		i = 0
	}
	return s.used.Next(i)
}
