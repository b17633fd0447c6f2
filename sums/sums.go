// Package sums reduces the output of the combos enumerators: it groups subsets
// by their sum, and collects the distinct sums of fixed-length sequences.
package sums

import (
	"github.com/bcspragu/subsums"
	"github.com/bcspragu/subsums/combos"
)

// GroupSubsetsBySum groups every subset of elems by its sum. Sums appear in
// the order the enumerator first produces them, not numeric order, and within
// a sum subsets keep enumeration order. A later subset joins the group of an
// earlier sum, so flattening the result is not the enumerator's output. Equal
// elements at different positions produce separate subsets.
func GroupSubsetsBySum(elems []int) *subsums.SumGroup {
	g := subsums.NewSumGroup()
	it := combos.NewSubsets(elems)
	for it.Next() {
		s := it.Subset()
		g.Add(s.Sum(), s)
	}
	return g
}

// SumsOfLength returns the distinct sums of every length-k sequence drawn, with
// repetition, from alphabet. It fails with subsums.ErrInvalidArgument if k is
// negative.
func SumsOfLength(k int, alphabet []int) (subsums.SumSet, error) {
	it, err := combos.NewSequences(k, alphabet)
	if err != nil {
		return nil, err
	}
	set := subsums.NewSumSet()
	for it.Next() {
		set.Insert(it.Sum())
	}
	return set, nil
}

// SortedSumsOfLength is SumsOfLength, in ascending order.
func SortedSumsOfLength(k int, alphabet []int) ([]int, error) {
	set, err := SumsOfLength(k, alphabet)
	if err != nil {
		return nil, err
	}
	return set.Sorted(), nil
}
