// Package combos enumerates index combinations, subsets and fixed-length
// sequences without recursion. Every enumerator is a lazy iterator, so a
// caller can stream through an exponential search space without holding all
// of it in memory.
package combos

// Combinations walks the unique subsets of size k of the integers 0..n-1, in
// lexicographic order.
//
// There are n! / (k! * (n-k)!) values.
//
// Usage:
//    c := NewCombinations(5, 3)
//    for c.Next() {
//      idx := c.Indices()
//      ...
//    }
//
// Example: NewCombinations(5, 3) ->
//   [0,1,2], [0,1,3], [0,1,4], [0,2,3], [0,2,4],
//   [0,3,4], [1,2,3], [1,2,4], [1,3,4], [2,3,4]
type Combinations struct {
	n, k int
	// a[0] holds a dummy value, the combination lives in a[1:].
	a       []int
	started bool
	done    bool
}

// NewCombinations returns an iterator over the k-element combinations of
// 0..n-1. If k is negative or larger than n, there are no combinations.
func NewCombinations(n, k int) *Combinations {
	c := &Combinations{n: n, k: k}
	if k < 0 || k > n {
		c.done = true
		return c
	}
	c.a = make([]int, k+1)
	for i := range c.a {
		c.a[i] = i - 1
	}
	return c
}

// Next advances to the next combination, reporting false once they've all
// been visited.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		return true
	}

	n, k, a := c.n, c.k, c.a
	var j int

	// Look right to left to find the first digit that can be incremented.
	for j = k; j > 0 && a[j] == n-k+j-1; j-- {
	}

	if j == 0 {
		c.done = true
		return false
	}

	a[j]++

	// Reset all the values after a[j] to be a[j]+1, a[j]+2, a[j]+3, etc.
	for i := j + 1; i <= k; i++ {
		a[i] = a[i-1] + 1
	}
	return true
}

// Indices returns the current combination. The slice is reused by the next
// call to Next, callers that keep it must copy it.
func (c *Combinations) Indices() []int {
	return c.a[1:]
}
