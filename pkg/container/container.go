// Package container defines the interface shared by
// table implementations for conformance tests and benchmarks.
package container

// Table is implemented by *hashset.Set and *gomap.Map.
type Table[K, V any] interface {
	Add(K, V) error
	Remove(K) bool
	Contains(K) bool
	Lookup(K) (v V, ok bool)
	Len() int
	Reset()
	Visit(func(K, V) (stop bool))
}
