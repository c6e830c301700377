package edgelist

// DefaultWeight is assigned to relations whose file entry omits a weight.
const DefaultWeight = 1

// Relation is a directed, weighted relationship between two labeled entities.
// Weight is carried through graph construction but never interpreted by
// traversal.
type Relation struct {
	Source string
	Target string
	Weight int
}

// R is shorthand for constructing a Relation, mostly useful in fixtures and
// tests.
func R(source, target string, weight int) Relation {
	return Relation{Source: source, Target: target, Weight: weight}
}

// Labels returns the distinct labels referenced by rels, in first-seen order.
// For each relation the source is seen before the target. This is the order
// in which the graph builder assigns node identities.
func Labels(rels []Relation) []string {
	seen := make(map[string]struct{}, len(rels))
	var labels []string
	add := func(l string) {
		if _, ok := seen[l]; ok {
			return
		}
		seen[l] = struct{}{}
		labels = append(labels, l)
	}
	for _, r := range rels {
		add(r.Source)
		add(r.Target)
	}
	return labels
}
