package hashset

import "github.com/graph-guard/hashset/pkg/math"

// Stats describes the occupancy of a set.
type Stats struct {
	Len          int
	Capacity     int
	UsedSlots    int
	LongestChain int

	// LoadFactor is Len divided by Capacity.
	LoadFactor float64
}

// Stats computes the current occupancy statistics.
// Only non-empty slots are inspected.
func (s *Set[K, V]) Stats() Stats {
	st := Stats{
		Len:        s.size,
		Capacity:   len(s.slots),
		UsedSlots:  s.used.Size(),
		LoadFactor: float64(s.size) / float64(len(s.slots)),
	}
	s.used.Visit(func(i int) (skip bool) {
		st.LongestChain = math.Max(st.LongestChain, s.slots[i].len)
		return false
	})
	return st
}
