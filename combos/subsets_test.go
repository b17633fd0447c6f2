package combos

import (
	"testing"

	"github.com/bcspragu/subsums"
	"github.com/google/go-cmp/cmp"
)

func TestAllSubsets(t *testing.T) {
	tests := []struct {
		desc string
		in   []int
		want []subsums.Subset
	}{
		{
			desc: "empty input",
			in:   []int{},
			want: []subsums.Subset{
				{Indices: []int{}, Values: []int{}},
			},
		},
		{
			desc: "two elements",
			in:   []int{1, 2},
			want: []subsums.Subset{
				{Indices: []int{}, Values: []int{}},
				{Indices: []int{0}, Values: []int{1}},
				{Indices: []int{1}, Values: []int{2}},
				{Indices: []int{0, 1}, Values: []int{1, 2}},
			},
		},
		{
			desc: "duplicates are kept apart",
			in:   []int{2, 2},
			want: []subsums.Subset{
				{Indices: []int{}, Values: []int{}},
				{Indices: []int{0}, Values: []int{2}},
				{Indices: []int{1}, Values: []int{2}},
				{Indices: []int{0, 1}, Values: []int{2, 2}},
			},
		},
		{
			desc: "input order is preserved",
			in:   []int{3, -1, 2},
			want: []subsums.Subset{
				{Indices: []int{}, Values: []int{}},
				{Indices: []int{0}, Values: []int{3}},
				{Indices: []int{1}, Values: []int{-1}},
				{Indices: []int{2}, Values: []int{2}},
				{Indices: []int{0, 1}, Values: []int{3, -1}},
				{Indices: []int{0, 2}, Values: []int{3, 2}},
				{Indices: []int{1, 2}, Values: []int{-1, 2}},
				{Indices: []int{0, 1, 2}, Values: []int{3, -1, 2}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := AllSubsets(test.in)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected subsets (-want +got)\n%s", diff)
			}
		})
	}
}

func TestSubsetsCount(t *testing.T) {
	for n := 0; n <= 10; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = i % 3
		}

		seen := make(map[string]bool)
		var count uint64
		it := NewSubsets(in)
		for it.Next() {
			s := it.Subset()
			key := subsums.FormatList(s.Indices)
			if seen[key] {
				t.Fatalf("n=%d: index set %s produced twice", n, key)
			}
			seen[key] = true
			for i := 1; i < len(s.Indices); i++ {
				if s.Indices[i] <= s.Indices[i-1] {
					t.Fatalf("n=%d: indices %v are not strictly increasing", n, s.Indices)
				}
			}
			count++
		}

		if want, _ := CountSubsets(n); count != want {
			t.Errorf("n=%d: got %d subsets, want %d", n, count, want)
		}
	}
}

func TestSubsetsAreIndependent(t *testing.T) {
	it := NewSubsets([]int{1, 2, 3})
	var kept []subsums.Subset
	for it.Next() {
		kept = append(kept, it.Subset())
	}
	// The last subset is the whole input, and earlier ones must not have been
	// overwritten by it.
	if diff := cmp.Diff([]int{1}, kept[1].Values); diff != "" {
		t.Errorf("unexpected first singleton (-want +got)\n%s", diff)
	}
}

func TestCountSubsets(t *testing.T) {
	tests := []struct {
		desc   string
		n      int
		want   uint64
		wantOK bool
	}{
		{desc: "empty", n: 0, want: 1, wantOK: true},
		{desc: "small", n: 10, want: 1024, wantOK: true},
		{desc: "largest that fits", n: 63, want: 1 << 63, wantOK: true},
		{desc: "overflow", n: 64, want: 0, wantOK: false},
		{desc: "way past overflow", n: 200, want: 0, wantOK: false},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got, ok := CountSubsets(test.n)
			if got != test.want || ok != test.wantOK {
				t.Errorf("CountSubsets(%d) = (%d, %t), want (%d, %t)", test.n, got, ok, test.want, test.wantOK)
			}
		})
	}
}
