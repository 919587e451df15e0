package hashset

// Ref is a borrowed reference to an entry of a set.
// It becomes stale once the set is structurally modified
// (an entry is added, replaced or removed, or the set is reset).
type Ref[K Key[K], V Value[V]] struct {
	s   *Set[K, V]
	e   *entry[K, V]
	gen uint64
}

// Ref returns a reference to the entry associated with key
// and true if the key exists, otherwise returns false.
func (s *Set[K, V]) Ref(key K) (Ref[K, V], bool) {
	e := s.lookup(key)
	if e == nil {
		return Ref[K, V]{}, false
	}
	return Ref[K, V]{s: s, e: e, gen: s.gen}, true
}

// Valid returns false if the referenced set was modified since
// the reference was acquired.
func (r Ref[K, V]) Valid() bool {
	return r.s != nil && r.s.gen == r.gen
}

// Key returns the stored key.
// Returns ErrStaleRef if the reference is no longer valid.
func (r Ref[K, V]) Key() (key K, err error) {
	if !r.Valid() {
		return key, ErrStaleRef
	}
	return r.e.key, nil
}

// Value returns the stored value.
// Returns ErrStaleRef if the reference is no longer valid.
func (r Ref[K, V]) Value() (value V, err error) {
	if !r.Valid() {
		return value, ErrStaleRef
	}
	return r.e.value, nil
}

// Update calls fn providing a pointer to the stored value.
// Returns ErrStaleRef without calling fn if the reference
// is no longer valid.
func (r Ref[K, V]) Update(fn func(*V)) error {
	if !r.Valid() {
		return ErrStaleRef
	}
	fn(&r.e.value)
	return nil
}
