package subsums

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func subset(idx []int, vals ...int) Subset {
	if vals == nil {
		vals = []int{}
	}
	return Subset{Indices: idx, Values: vals}
}

func TestSumGroup(t *testing.T) {
	g := NewSumGroup()
	g.Add(3, subset([]int{0}, 3))
	g.Add(0, subset([]int{}))
	g.Add(3, subset([]int{1, 2}, 1, 2))

	if diff := cmp.Diff([]int{3, 0}, g.Sums()); diff != "" {
		t.Errorf("unexpected sums (-want +got)\n%s", diff)
	}
	if got, want := g.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := g.Count(), 3; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}

	got, ok := g.Get(3)
	if !ok {
		t.Fatal("sum 3 was not found")
	}
	want := []Subset{subset([]int{0}, 3), subset([]int{1, 2}, 1, 2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected subsets for 3 (-want +got)\n%s", diff)
	}

	if _, ok := g.Get(7); ok {
		t.Error("sum 7 should not be present")
	}

	wantFlat := []Subset{subset([]int{0}, 3), subset([]int{1, 2}, 1, 2), subset([]int{})}
	if diff := cmp.Diff(wantFlat, g.Flatten()); diff != "" {
		t.Errorf("unexpected flattened subsets (-want +got)\n%s", diff)
	}
}

func TestSumGroupString(t *testing.T) {
	g := NewSumGroup()
	g.Add(0, subset([]int{}))
	g.Add(2, subset([]int{0}, 2))
	g.Add(2, subset([]int{1}, 2))
	g.Add(4, subset([]int{0, 1}, 2, 2))

	want := "{0: [[]], 2: [[2], [2]], 4: [[2, 2]]}"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := NewSumGroup().String(), "{}"; got != want {
		t.Errorf("empty String() = %q, want %q", got, want)
	}
}

func TestSumGroupMarshalJSON(t *testing.T) {
	g := NewSumGroup()
	g.Add(5, subset([]int{0}, 5))
	g.Add(0, subset([]int{}))

	dat, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	want := `[{"sum":5,"subsets":[[5]]},{"sum":0,"subsets":[[]]}]`
	if got := string(dat); got != want {
		t.Errorf("unexpected JSON\n got: %s\nwant: %s", got, want)
	}

	dat, err = json.Marshal(NewSumGroup())
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if got, want := string(dat), "[]"; got != want {
		t.Errorf("empty group JSON = %s, want %s", got, want)
	}
}

func TestSumSet(t *testing.T) {
	s := NewSumSet()
	s.Insert(5, 3, 5, -1, 4)

	if diff := cmp.Diff([]int{-1, 3, 4, 5}, s.Sorted()); diff != "" {
		t.Errorf("unexpected sorted sums (-want +got)\n%s", diff)
	}
	if !s.Has(-1) || s.Has(0) {
		t.Errorf("Has gave wrong membership for %v", s)
	}
	if got, want := s.String(), "{-1, 3, 4, 5}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NewSumSet().String(), "{}"; got != want {
		t.Errorf("empty String() = %q, want %q", got, want)
	}

	dat, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if got, want := string(dat), "[-1,3,4,5]"; got != want {
		t.Errorf("JSON = %s, want %s", got, want)
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		desc string
		in   []int
		want string
	}{
		{desc: "nil", in: nil, want: "[]"},
		{desc: "one", in: []int{7}, want: "[7]"},
		{desc: "several", in: []int{2, -3, 4}, want: "[2, -3, 4]"},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := FormatList(test.in); got != test.want {
				t.Errorf("FormatList(%v) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}
