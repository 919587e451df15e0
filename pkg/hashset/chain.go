package hashset

// entry is a key-value pair owned by the set.
type entry[K Key[K], V Value[V]] struct {
	key   K
	value V
	next  *entry[K, V]
}

// chain is a singly linked list of entries sharing a slot.
// Entries are kept in insertion order.
type chain[K Key[K], V Value[V]] struct {
	head, tail *entry[K, V]
	len        int
}

// find returns the entry with a key equal to key or nil if there's none.
func (c *chain[K, V]) find(key K) *entry[K, V] {
	for e := c.head; e != nil; e = e.next {
		if e.key.Equal(key) {
			return e
		}
	}
	return nil
}

func (c *chain[K, V]) append(e *entry[K, V]) {
	if c.tail == nil {
		c.head, c.tail = e, e
	} else {
		c.tail.next, c.tail = e, e
	}
	c.len++
}

// remove unlinks and returns the entry with a key equal to key.
// Returns nil if there's no such entry.
func (c *chain[K, V]) remove(key K) *entry[K, V] {
	var prev *entry[K, V]
	for e := c.head; e != nil; prev, e = e, e.next {
		if !e.key.Equal(key) {
			continue
		}
		if prev == nil {
			// No parent
			c.head = e.next
		} else {
			prev.next = e.next
		}
		if c.tail == e {
			c.tail = prev
		}
		e.next = nil
		c.len--
		return e
	}
	return nil
}
