package path

import (
	"strings"

	"github.com/matzehuels/tiegraph/pkg/graph"
)

// Path is an ordered sequence of node identities from a source to a target,
// both inclusive.
type Path []graph.NodeID

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Labels maps every node of the path to its label in g.
func (p Path) Labels(g *graph.Graph) []string {
	labels := make([]string, len(p))
	for i, id := range p {
		labels[i] = g.Label(id)
	}
	return labels
}

// Format joins the labels of the path with arrows, e.g. "Eva → Maxine".
func (p Path) Format(g *graph.Graph) string {
	return strings.Join(p.Labels(g), " → ")
}

// ShortestPath returns a minimum-hop directed path from source to target.
//
// The boolean is false when target is not reachable from source, or when
// either identity is not part of g. A search from a node to itself returns
// the single-element path [source].
func ShortestPath(g *graph.Graph, source, target graph.NodeID) (Path, bool) {
	if !g.Has(source) || !g.Has(target) {
		return nil, false
	}
	s := newSearch(g, source)
	if !s.run(target) {
		return nil, false
	}
	return s.trace(target), true
}

// unvisited marks a node with no recorded distance.
const unvisited = -1

// search holds the mutable state of one breadth-first search.
// Node identities are dense, so per-node state lives in slices.
type search struct {
	graph  *graph.Graph
	source graph.NodeID
	queue  []graph.NodeID
	dist   []int
	prev   []graph.NodeID
}

func newSearch(g *graph.Graph, source graph.NodeID) *search {
	n := g.NodeCount()
	s := &search{
		graph:  g,
		source: source,
		queue:  make([]graph.NodeID, 0, n),
		dist:   make([]int, n),
		prev:   make([]graph.NodeID, n),
	}
	for i := range s.dist {
		s.dist[i] = unvisited
	}
	s.dist[source] = 0
	s.queue = append(s.queue, source)
	return s
}

// run expands the frontier in FIFO order until target is dequeued or the
// queue is exhausted. It reports whether target was reached.
func (s *search) run(target graph.NodeID) bool {
	for len(s.queue) > 0 {
		node := s.queue[0]
		s.queue = s.queue[1:]

		if node == target {
			return true
		}
		for _, next := range s.graph.Neighbors(node) {
			if s.dist[next] != unvisited {
				continue
			}
			s.dist[next] = s.dist[node] + 1
			s.prev[next] = node
			s.queue = append(s.queue, next)
		}
	}
	return false
}

// trace rebuilds the path to target from the predecessor links.
func (s *search) trace(target graph.NodeID) Path {
	p := make(Path, s.dist[target]+1)
	node := target
	for i := len(p) - 1; i > 0; i-- {
		p[i] = node
		node = s.prev[node]
	}
	p[0] = s.source
	return p
}
