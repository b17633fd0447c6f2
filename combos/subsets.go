package combos

import (
	"github.com/bcspragu/subsums"
)

// Subsets enumerates all 2^n subsets of a sequence. Subsets come out by size,
// smallest first, and within a size by lexicographic order of their indices:
// the empty subset, then each single element in input order, then each pair,
// and so on up to the whole sequence.
type Subsets struct {
	elems []int
	r     int
	comb  *Combinations
	cur   subsums.Subset
}

// NewSubsets returns an iterator over the subsets of elems. elems is not
// copied and must not change while iterating.
func NewSubsets(elems []int) *Subsets {
	return &Subsets{elems: elems}
}

// Next advances to the next subset.
func (s *Subsets) Next() bool {
	for s.r <= len(s.elems) {
		if s.comb == nil {
			s.comb = NewCombinations(len(s.elems), s.r)
		}
		if s.comb.Next() {
			s.cur = s.materialize(s.comb.Indices())
			return true
		}
		s.comb = nil
		s.r++
	}
	return false
}

// Subset returns the current subset. It is freshly allocated on each call to
// Next and safe to keep.
func (s *Subsets) Subset() subsums.Subset {
	return s.cur
}

func (s *Subsets) materialize(idx []int) subsums.Subset {
	out := subsums.Subset{
		Indices: make([]int, len(idx)),
		Values:  make([]int, len(idx)),
	}
	for i, j := range idx {
		out.Indices[i] = j
		out.Values[i] = s.elems[j]
	}
	return out
}

// AllSubsets returns every subset of elems, in the order NewSubsets visits
// them.
func AllSubsets(elems []int) []subsums.Subset {
	var out []subsums.Subset
	it := NewSubsets(elems)
	for it.Next() {
		out = append(out, it.Subset())
	}
	return out
}

// CountSubsets is 2^n, the number of subsets of an n-element sequence, or
// false if it doesn't fit in a uint64. n must not be negative.
func CountSubsets(n int) (uint64, bool) {
	if n >= 64 {
		return 0, false
	}
	return uint64(1) << uint(n), true
}
