// Package strkey provides an immutable string hashset key
// hashed with XXH3.
package strkey

import "github.com/zeebo/xxh3"

// Key is an immutable string key.
type Key string

// Hash returns the lower 31 bits of the XXH3 hash of k.
func (k Key) Hash() uint32 {
	return uint32(xxh3.HashString(string(k))) & 0x7fffffff
}

func (k Key) Equal(o Key) bool { return k == o }

// Clone returns k. Strings are immutable so no copy is needed.
func (k Key) Clone() Key { return k }

func (k Key) String() string { return string(k) }
