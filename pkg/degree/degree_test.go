package degree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tiegraph/pkg/edgelist"
)

var r = edgelist.R

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		rels []edgelist.Relation
		want Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []edgelist.Relation{r("A", "B", 1)}, Distribution{"A": 1, "B": 1}},
		{"self loop counts twice", []edgelist.Relation{r("A", "A", 1)}, Distribution{"A": 2}},
		{"parallel edges", []edgelist.Relation{r("A", "B", 1), r("A", "B", 9)}, Distribution{"A": 2, "B": 2}},
		{
			name: "in and out merged",
			rels: []edgelist.Relation{r("A", "B", 1), r("B", "A", 1), r("C", "B", 1)},
			want: Distribution{"A": 2, "B": 3, "C": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Compute(tt.rels)); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTotalIsTwiceEdgeCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		rels := make([]edgelist.Relation, rnd.Intn(60))
		for i := range rels {
			rels[i] = r(fmt.Sprintf("n%d", rnd.Intn(10)), fmt.Sprintf("n%d", rnd.Intn(10)), 1)
		}
		if got, want := Compute(rels).Total(), 2*len(rels); got != want {
			t.Errorf("trial %d: Total() = %d, want %d", trial, got, want)
		}
	}
}

func TestMax(t *testing.T) {
	if _, ok := (Distribution{}).Max(); ok {
		t.Error("Max() on empty distribution should report false")
	}

	d := Distribution{"Cora": 3, "Ada": 3, "Eva": 1}
	got, ok := d.Max()
	if !ok {
		t.Fatal("Max() reported false")
	}
	if diff := cmp.Diff(Entry{Label: "Ada", Degree: 3}, got); diff != "" {
		t.Errorf("Max() mismatch (-want +got):\n%s", diff)
	}
}

func TestRanked(t *testing.T) {
	d := Distribution{"Eva": 5, "Ada": 2, "Cora": 2, "Zoe": 7, "Bea": 1}
	want := []Entry{
		{"Zoe", 7},
		{"Eva", 5},
		{"Ada", 2},
		{"Cora", 2},
		{"Bea", 1},
	}
	if diff := cmp.Diff(want, d.Ranked()); diff != "" {
		t.Errorf("Ranked() mismatch (-want +got):\n%s", diff)
	}
}

func TestHistogram(t *testing.T) {
	d := Compute([]edgelist.Relation{r("A", "B", 1), r("C", "B", 1), r("B", "D", 1)})
	want := map[int]int{1: 3, 3: 1}
	if diff := cmp.Diff(want, d.Histogram()); diff != "" {
		t.Errorf("Histogram() mismatch (-want +got):\n%s", diff)
	}
}

func TestMean(t *testing.T) {
	if got := (Distribution{}).Mean(); got != 0 {
		t.Errorf("Mean() = %v, want 0", got)
	}
	d := Distribution{"A": 1, "B": 3}
	if got := d.Mean(); got != 2 {
		t.Errorf("Mean() = %v, want 2", got)
	}
}
