// Package subsums groups the subsets of an integer sequence by their sum, and
// collects the sums of fixed-length sequences drawn from an alphabet.
package subsums

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidArgument is returned when a sequence length is negative.
	ErrInvalidArgument = errors.New("subsums: invalid argument")
)

// Subset is a selection of elements from an input sequence. Two subsets with
// the same Values but different Indices are different subsets.
type Subset struct {
	// Indices are the strictly increasing positions of the selected elements
	// in the input sequence.
	Indices []int
	// Values are the selected elements, in the order they appear in the input.
	Values []int
}

// Sum returns the sum of the subset's values. The empty subset sums to zero.
func (s Subset) Sum() int {
	return Sum(s.Values)
}

func (s Subset) MarshalJSON() ([]byte, error) {
	if s.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Values)
}

// Sum adds up vals.
func Sum(vals []int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}

// Group is every subset that shares a single sum.
type Group struct {
	Sum     int      `json:"sum"`
	Subsets []Subset `json:"subsets"`
}

// SumGroup maps sums to the subsets that produce them. Keys are kept in the
// order they were first added, not in numeric order.
type SumGroup struct {
	groups []Group
	index  map[int]int
	count  int
}

func NewSumGroup() *SumGroup {
	return &SumGroup{index: make(map[int]int)}
}

// Add appends s to the group for sum, creating the group if this is the first
// time sum has been seen.
func (g *SumGroup) Add(sum int, s Subset) {
	idx, ok := g.index[sum]
	if !ok {
		idx = len(g.groups)
		g.index[sum] = idx
		g.groups = append(g.groups, Group{Sum: sum})
	}
	g.groups[idx].Subsets = append(g.groups[idx].Subsets, s)
	g.count++
}

// Get returns the subsets that add up to sum.
func (g *SumGroup) Get(sum int) ([]Subset, bool) {
	idx, ok := g.index[sum]
	if !ok {
		return nil, false
	}
	return g.groups[idx].Subsets, true
}

// Sums returns the keys in insertion order.
func (g *SumGroup) Sums() []int {
	out := make([]int, len(g.groups))
	for i, grp := range g.groups {
		out[i] = grp.Sum
	}
	return out
}

// Groups returns the groups in insertion order. The returned subsets should
// not be modified.
func (g *SumGroup) Groups() []Group {
	out := make([]Group, len(g.groups))
	copy(out, g.groups)
	return out
}

// Len is the number of distinct sums.
func (g *SumGroup) Len() int {
	return len(g.groups)
}

// Count is the total number of subsets across every group.
func (g *SumGroup) Count() int {
	return g.count
}

// Flatten concatenates every group's subsets, walking keys in insertion
// order.
func (g *SumGroup) Flatten() []Subset {
	out := make([]Subset, 0, g.count)
	for _, grp := range g.groups {
		out = append(out, grp.Subsets...)
	}
	return out
}

// String renders the group like {0: [[]], 1: [[1]], 3: [[1, 2]]}.
func (g *SumGroup) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, grp := range g.groups {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(grp.Sum))
		buf.WriteString(": [")
		for j, s := range grp.Subsets {
			if j > 0 {
				buf.WriteString(", ")
			}
			writeList(&buf, s.Values)
		}
		buf.WriteString("]")
	}
	buf.WriteString("}")
	return buf.String()
}

// MarshalJSON encodes the group as a list of {sum, subsets} objects, since a
// JSON object wouldn't keep the insertion order.
func (g *SumGroup) MarshalJSON() ([]byte, error) {
	groups := g.groups
	if groups == nil {
		groups = []Group{}
	}
	return json.Marshal(groups)
}

// SumSet is a set of distinct sums.
type SumSet map[int]struct{}

func NewSumSet() SumSet {
	return make(SumSet)
}

func (s SumSet) Insert(sums ...int) {
	for _, v := range sums {
		s[v] = struct{}{}
	}
}

func (s SumSet) Has(sum int) bool {
	_, ok := s[sum]
	return ok
}

func (s SumSet) Len() int {
	return len(s)
}

// Sorted returns the sums in strictly ascending order.
func (s SumSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// String renders the set like {3, 4, 5, 6}, ascending so that output is
// stable.
func (s SumSet) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, v := range s.Sorted() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(v))
	}
	buf.WriteString("}")
	return buf.String()
}

func (s SumSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// FormatList renders vals like [1, 2, 3].
func FormatList(vals []int) string {
	var buf bytes.Buffer
	writeList(&buf, vals)
	return buf.String()
}

func writeList(buf *bytes.Buffer, vals []int) {
	buf.WriteString("[")
	for i, v := range vals {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(v))
	}
	buf.WriteString("]")
}
