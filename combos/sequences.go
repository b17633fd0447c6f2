package combos

import (
	"github.com/bcspragu/subsums"
	"github.com/pkg/errors"
)

// Sequences enumerates the m^k sequences of length k whose elements are drawn,
// with repetition, from an alphabet of m integers. They come out in odometer
// order: the last position changes fastest and the first slowest, the same as
// k nested loops.
type Sequences struct {
	alphabet []int
	k        int
	// pos[i] is the alphabet index chosen for position i.
	pos     []int
	started bool
	done    bool
}

// NewSequences returns an iterator over the length-k sequences drawn from
// alphabet. It fails with subsums.ErrInvalidArgument if k is negative.
func NewSequences(k int, alphabet []int) (*Sequences, error) {
	if k < 0 {
		return nil, errors.Wrapf(subsums.ErrInvalidArgument, "sequence length %d is negative", k)
	}
	return &Sequences{
		alphabet: alphabet,
		k:        k,
		pos:      make([]int, k),
	}, nil
}

// Next advances to the next sequence.
func (s *Sequences) Next() bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		// With nothing to choose from, only the empty sequence exists.
		if s.k > 0 && len(s.alphabet) == 0 {
			s.done = true
			return false
		}
		return true
	}

	m := len(s.alphabet)
	for i := s.k - 1; i >= 0; i-- {
		s.pos[i]++
		if s.pos[i] < m {
			return true
		}
		s.pos[i] = 0
	}
	s.done = true
	return false
}

// valid reports whether the last call to Next returned true.
func (s *Sequences) valid() bool {
	return s.started && !s.done
}

// Tuple returns a copy of the current sequence. It is only meaningful after
// Next returns true, otherwise it returns nil.
func (s *Sequences) Tuple() []int {
	if !s.valid() {
		return nil
	}
	out := make([]int, s.k)
	for i, p := range s.pos {
		out[i] = s.alphabet[p]
	}
	return out
}

// Sum adds up the current sequence without allocating. Like Tuple, it is only
// meaningful after Next returns true, otherwise it returns zero.
func (s *Sequences) Sum() int {
	if !s.valid() {
		return 0
	}
	total := 0
	for _, p := range s.pos {
		total += s.alphabet[p]
	}
	return total
}

// AllSequences returns every length-k sequence drawn from alphabet, in odometer
// order.
func AllSequences(k int, alphabet []int) ([][]int, error) {
	it, err := NewSequences(k, alphabet)
	if err != nil {
		return nil, err
	}
	var out [][]int
	for it.Next() {
		out = append(out, it.Tuple())
	}
	return out, nil
}

// CountSequences is m^k, or false if it doesn't fit in a uint64. k must not
// be negative.
func CountSequences(m, k int) (uint64, bool) {
	total := uint64(1)
	for i := 0; i < k; i++ {
		if m == 0 {
			return 0, true
		}
		next := total * uint64(m)
		if next/uint64(m) != total {
			return 0, false
		}
		total = next
	}
	return total, true
}
