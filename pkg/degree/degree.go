// Package degree counts how many relationships touch each entity of an edge
// list.
//
// The count merges in-degree and out-degree: every relation adds one to its
// source label and one to its target label, so a self-loop adds two and each
// parallel relation contributes separately. The counter works on the raw
// edge list and does not need a built graph.
package degree

import (
	"cmp"
	"maps"
	"slices"

	"github.com/matzehuels/tiegraph/pkg/edgelist"
)

// Distribution maps each label to the number of edge endpoints referencing it.
type Distribution map[string]int

// Entry is one label of a Distribution with its degree.
type Entry struct {
	Label  string `json:"label"`
	Degree int    `json:"degree"`
}

// Compute counts the endpoints of rels per label.
// It always succeeds; an empty list yields an empty Distribution.
func Compute(rels []edgelist.Relation) Distribution {
	d := make(Distribution)
	for _, r := range rels {
		d[r.Source]++
		d[r.Target]++
	}
	return d
}

// Total returns the sum of all degrees, which is twice the number of
// relations the Distribution was computed from.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Max returns the label with the highest degree. Ties go to the label that
// sorts first. The boolean is false for an empty Distribution.
func (d Distribution) Max() (Entry, bool) {
	var best Entry
	found := false
	for label, n := range d {
		if !found || n > best.Degree || (n == best.Degree && label < best.Label) {
			best = Entry{Label: label, Degree: n}
			found = true
		}
	}
	return best, found
}

// Ranked returns all entries ordered by degree, highest first, with ties
// ordered by label.
func (d Distribution) Ranked() []Entry {
	entries := make([]Entry, 0, len(d))
	for _, label := range slices.Sorted(maps.Keys(d)) {
		entries = append(entries, Entry{Label: label, Degree: d[label]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Degree, a.Degree)
	})
	return entries
}

// Histogram returns how many labels hold each degree value.
func (d Distribution) Histogram() map[int]int {
	h := make(map[int]int)
	for _, n := range d {
		h[n]++
	}
	return h
}

// Mean returns the average degree, or 0 for an empty Distribution.
func (d Distribution) Mean() float64 {
	if len(d) == 0 {
		return 0
	}
	return float64(d.Total()) / float64(len(d))
}
