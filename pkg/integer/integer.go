// Package integer provides Integer, a mutable counter
// usable as a hashset value.
package integer

import "strconv"

// Integer is a mutable integer. The zero value is zero.
type Integer struct{ N int }

// New creates a new Integer holding n.
func New(n int) *Integer { return &Integer{N: n} }

// Clone returns a copy of i.
func (i *Integer) Clone() *Integer { return &Integer{N: i.N} }

// Inc increments i by one.
func (i *Integer) Inc() { i.N++ }

// Add adds d to i.
func (i *Integer) Add(d int) { i.N += d }

func (i *Integer) String() string { return strconv.Itoa(i.N) }
