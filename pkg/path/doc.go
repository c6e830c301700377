// Package path finds minimum-hop directed paths in a [graph.Graph].
//
// # Algorithm
//
// [ShortestPath] runs a breadth-first search from the source node, following
// edges only in their declared direction. Nodes move through three states
// during a search:
//
//	unvisited → queued (distance and predecessor recorded) → settled (dequeued)
//
// The search stops as soon as the target is settled, then rebuilds the path
// by walking predecessors back from the target and reversing the result.
// When the frontier runs empty first, no directed walk exists and the result
// is absent.
//
// # Tie-breaking
//
// Among several paths with the same hop count, the one returned follows the
// adjacency order of the graph: the edge declared first is explored first.
// This is deterministic but is not a ranking beyond hop count.
//
// # Weights
//
// Edge weights are ignored. The result minimizes the number of edges, not
// their total weight.
//
// [graph.Graph]: github.com/matzehuels/tiegraph/pkg/graph.Graph
package path
