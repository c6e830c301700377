package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/tiegraph/pkg/edgelist"
)

// NodeID is the integer identity of an entity within a Graph.
// Identities are assigned sequentially from zero in first-seen order and are
// never reused or renumbered.
type NodeID int

// Node is an entity of the graph together with its label.
type Node struct {
	ID    NodeID
	Label string
}

// Edge is a directed, weighted connection between two nodes.
// Weight is carried from the edge list and not interpreted by traversal.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight int
}

// Graph is an immutable directed multigraph built from an edge list.
//
// The zero value is an empty graph. Use Build to construct a populated one.
// Graph is safe for concurrent reads.
type Graph struct {
	reg      *registry
	nodes    []Node
	edges    []Edge
	outgoing [][]NodeID // NodeID -> target IDs in edge insertion order
}

// Build constructs a Graph from rels.
//
// For each relation the source and then the target label are resolved to a
// NodeID, assigning a new one on first sight. A directed edge is appended
// for every relation and the target is appended to the source's adjacency.
// Parallel edges and self-loops are preserved; weights are not validated.
// Build always succeeds.
func Build(rels []edgelist.Relation) *Graph {
	g := &Graph{
		reg:   newRegistry(len(rels)),
		edges: make([]Edge, 0, len(rels)),
	}
	for _, r := range rels {
		from := g.intern(r.Source)
		to := g.intern(r.Target)
		g.edges = append(g.edges, Edge{From: from, To: to, Weight: r.Weight})
		g.outgoing[from] = append(g.outgoing[from], to)
	}
	return g
}

func (g *Graph) intern(label string) NodeID {
	id, added := g.reg.intern(label)
	if added {
		g.nodes = append(g.nodes, Node{ID: id, Label: label})
		g.outgoing = append(g.outgoing, nil)
	}
	return id
}

// Resolve returns the NodeID assigned to label.
// The boolean is false when the label never appeared in the edge list.
func (g *Graph) Resolve(label string) (NodeID, bool) {
	if g.reg == nil {
		return 0, false
	}
	return g.reg.resolve(label)
}

// Has reports whether id identifies a node of the graph.
func (g *Graph) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node with the given identity and true, or the zero Node
// and false if id is not part of the graph.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if !g.Has(id) {
		return Node{}, false
	}
	return g.nodes[id], true
}

// Label returns the label of id, or an empty string if id is unknown.
func (g *Graph) Label(id NodeID) string {
	if !g.Has(id) {
		return ""
	}
	return g.nodes[id].Label
}

// Nodes returns a copy of all nodes ordered by NodeID.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of distinct labels in the edge list.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the targets of id's outgoing edges in insertion order.
// A target appears once per parallel edge. Returns nil if id has no outgoing
// edges or is unknown. The returned slice is a read-only view.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	if !g.Has(id) {
		return nil
	}
	return g.outgoing[id]
}

// OutDegree returns the number of outgoing edges from id.
func (g *Graph) OutDegree(id NodeID) int { return len(g.Neighbors(id)) }

// String renders the graph as a node list followed by an edge list, e.g.
//
//	Graph { nodes: [0: Ada, 1: Cora], edges: [0 -> 1 (1), 1 -> 0 (1)] }
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("Graph { nodes: [")
	for i, n := range g.nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %s", n.ID, n.Label)
	}
	b.WriteString("], edges: [")
	for i, e := range g.edges {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d -> %d (%d)", e.From, e.To, e.Weight)
	}
	b.WriteString("] }")
	return b.String()
}
