// Package graph builds an immutable directed multigraph from an edge list.
//
// # Overview
//
// tiegraph analyzes networks of relationships ("ties") between labeled
// entities. This package turns the raw list of ties into a compact graph
// whose nodes are addressed by dense integer identities ([NodeID]) instead
// of labels. Traversal algorithms such as [path.ShortestPath] work on these
// identities.
//
// # Building
//
// [Build] consumes an ordered list of [edgelist.Relation] values:
//
//	g := graph.Build([]edgelist.Relation{
//	    {Source: "Ada", Target: "Cora", Weight: 1},
//	    {Source: "Cora", Target: "Ada", Weight: 1},
//	})
//
// Every label receives the next sequential NodeID the first time it is seen
// (source before target) and keeps it for the lifetime of the graph. Every
// relation becomes one directed [Edge]; parallel edges and self-loops are
// kept as-is. Build never fails, and an empty list produces an empty graph.
//
// # Querying
//
// Use [Graph.Resolve] to turn a label into its NodeID. The boolean result is
// false for labels that never appeared in the edge list, and callers must
// check it. [Graph.Neighbors] returns the outgoing adjacency of a node in
// edge declaration order, which determines how breadth-first traversals
// break ties.
//
// # Weights
//
// Edge weights are stored on [Edge] but are never consulted by the
// traversal packages. They are available for presentation only.
//
// # Concurrency
//
// A Graph has no exported mutators. Once Build returns, any number of
// goroutines may query it concurrently without synchronization.
//
// [path.ShortestPath]: github.com/matzehuels/tiegraph/pkg/path.ShortestPath
// [edgelist.Relation]: github.com/matzehuels/tiegraph/pkg/edgelist.Relation
package graph
