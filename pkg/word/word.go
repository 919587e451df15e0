// Package word provides Word, a growable byte string
// usable as a hashset key.
package word

import (
	"bytes"

	"github.com/graph-guard/hashset/pkg/math"
)

// HashFactor is the prime base of the polynomial hash.
const HashFactor = 1021

// minExtent is the minimum number of bytes added when a Word grows.
const minExtent = 16

// Word is a growable sequence of bytes.
// The zero value is an empty word ready to use.
type Word struct{ b []byte }

// New creates a new word with the content of s.
func New(s string) *Word {
	w := &Word{b: make([]byte, len(s))}
	copy(w.b, s)
	return w
}

// FromBytes creates a new word with a copy of b.
func FromBytes(b []byte) *Word {
	w := &Word{b: make([]byte, len(b))}
	copy(w.b, b)
	return w
}

// Append adds c to the end of the word.
// When the buffer is full it grows by an eighth of its capacity
// but at least by 16 bytes.
func (w *Word) Append(c byte) *Word {
	if len(w.b) == cap(w.b) {
		w.grow(1)
	}
	w.b = append(w.b, c)
	return w
}

// AppendString adds s to the end of the word.
func (w *Word) AppendString(s string) *Word {
	if free := cap(w.b) - len(w.b); free < len(s) {
		w.grow(len(s) - free)
	}
	w.b = append(w.b, s...)
	return w
}

func (w *Word) grow(atLeast int) {
	extent := math.Max(math.Max(minExtent, cap(w.b)/8), atLeast)
	b := make([]byte, len(w.b), cap(w.b)+extent)
	copy(b, w.b)
	w.b = b
}

// Reset empties the word keeping the allocated buffer.
func (w *Word) Reset() { w.b = w.b[:0] }

// Len returns the number of bytes in the word.
func (w *Word) Len() int { return len(w.b) }

// Cap returns the capacity of the underlying buffer.
func (w *Word) Cap() int { return cap(w.b) }

// Bytes returns a read-only view of the content.
// The view is only valid until the next modification of w.
func (w *Word) Bytes() []byte { return w.b[:len(w.b):len(w.b)] }

func (w *Word) String() string { return string(w.b) }

// Hash calculates the polynomial (...(b0*x + b1)*x + ...)*x + bn
// where x = HashFactor and clears the sign bit of the result.
func (w *Word) Hash() uint32 {
	var h uint32
	for _, c := range w.b {
		h = h*HashFactor + uint32(c)
	}
	return h & 0x7fffffff
}

// Equal returns true if both words contain the same bytes.
func (w *Word) Equal(o *Word) bool { return bytes.Equal(w.b, o.b) }

// Clone returns a deep copy of w.
func (w *Word) Clone() *Word { return FromBytes(w.b) }
