// Package dataset provides built-in edge lists for demos and tests.
//
// Fixtures are ordinary inputs: every lookup returns a fresh copy, so callers
// may modify the result without affecting other users.
package dataset

import (
	"slices"

	"github.com/matzehuels/tiegraph/pkg/edgelist"
	errs "github.com/matzehuels/tiegraph/pkg/errors"
)

// DiningName is the fixture name of [Dining].
const DiningName = "dining"

var r = edgelist.R

// dining records the first choice of dining-table partner of each girl in a
// dormitory. An edge points from a girl to the partner she chose.
var dining = []edgelist.Relation{
	r("Ada", "Cora", 1),
	r("Cora", "Ada", 1),
	r("Louise", "Marion", 1),
	r("Jean", "Helen", 1),
	r("Helen", "Jean", 1),
	r("Martha", "Anna", 1),
	r("Alice", "Eva", 1),
	r("Robin", "Eva", 1),
	r("Marion", "Martha", 1),
	r("Maxine", "Adele", 1),
	r("Lena", "Marion", 1),
	r("Hazel", "Hilda", 1),
	r("Hilda", "Betty", 1),
	r("Frances", "Eva", 1),
	r("Eva", "Maxine", 1),
	r("Ruth", "Jane", 1),
	r("Edna", "Mary", 1),
	r("Adele", "Frances", 1),
	r("Jane", "Adele", 1),
	r("Anna", "Maxine", 1),
	r("Mary", "Edna", 1),
	r("Betty", "Edna", 1),
	r("Ella", "Ellen", 1),
	r("Ellen", "Anna", 1),
	r("Laura", "Eva", 1),
	r("Irene", "Hilda", 1),
}

// Dining returns the dining-table partners network: 26 directed choices
// among 26 girls.
func Dining() []edgelist.Relation { return slices.Clone(dining) }

var fixtures = map[string]func() []edgelist.Relation{
	DiningName: Dining,
}

// Names returns the names of all built-in fixtures in sorted order.
func Names() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns a copy of the named fixture.
// Returns a DATASET_NOT_FOUND error for unknown names.
func Lookup(name string) ([]edgelist.Relation, error) {
	f, ok := fixtures[name]
	if !ok {
		return nil, errs.New(errs.ErrCodeDatasetNotFound, "unknown dataset %q (available: %v)", name, Names())
	}
	return f(), nil
}
