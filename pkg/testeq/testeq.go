// Package testeq provides test helpers comparing
// the contents of hashset.Set instances.
package testeq

import (
	"sort"

	"github.com/graph-guard/hashset/pkg/hashset"
	"golang.org/x/exp/constraints"
)

// Writer is implemented by *testing.T and *testing.B.
type Writer interface {
	Helper()
	Errorf(fmt string, v ...any)
}

// Contents collects all entries of s produced by a full iteration
// converting keys and values with key and value. Keys visited more
// than once are returned in duplicates.
func Contents[
	K hashset.Key[K],
	V hashset.Value[V],
	CK constraints.Ordered,
	CV any,
](
	s *hashset.Set[K, V],
	key func(K) CK,
	value func(V) CV,
) (contents map[CK]CV, duplicates []CK) {
	contents = make(map[CK]CV, s.Len())
	for it := s.Iterator(); it.Next(); {
		k, v := it.Pair()
		ck := key(k)
		if _, ok := contents[ck]; ok {
			duplicates = append(duplicates, ck)
		}
		contents[ck] = value(v)
	}
	return contents, duplicates
}

// Set checks that a full iteration over s produces exactly expected
// and that the length reported by s matches.
func Set[
	K hashset.Key[K],
	V hashset.Value[V],
	CK constraints.Ordered,
	CV comparable,
](
	writer Writer,
	expected map[CK]CV,
	s *hashset.Set[K, V],
	key func(K) CK,
	value func(V) CV,
) (ok bool) {
	writer.Helper()
	ok = true
	actual, duplicates := Contents(s, key, value)
	for _, d := range duplicates {
		writer.Errorf("duplicate entry %v", d)
		ok = false
	}
	if s.Len() != len(expected) {
		writer.Errorf("expected length %d, got %d", len(expected), s.Len())
		ok = false
	}
	return Maps(writer, "entry", expected, actual) && ok
}

// Maps compares expected and actual reporting mismatching,
// missing and unexpected keys in ascending key order.
func Maps[K constraints.Ordered, V comparable](
	writer Writer,
	title string,
	expected, actual map[K]V,
) (ok bool) {
	writer.Helper()
	ok = true

	for _, k := range sortedKeys(expected) {
		ev := expected[k]
		av, found := actual[k]
		if !found {
			writer.Errorf("missing %s %v (%v)", title, k, ev)
			ok = false
		} else if av != ev {
			writer.Errorf(
				"mismatching %s %v: expected %v, got %v",
				title, k, ev, av,
			)
			ok = false
		}
	}

	for _, k := range sortedKeys(actual) {
		if _, found := expected[k]; !found {
			writer.Errorf("unexpected %s %v (%v)", title, k, actual[k])
			ok = false
		}
	}

	return ok
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
