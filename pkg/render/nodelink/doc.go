// Package nodelink renders tie graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// every label appears as a rounded box and every edge as an arrow. A shortest
// path can be highlighted on top of the full graph.
//
// # Usage
//
// Convert a Graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Highlight: p})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PNG output, use [RenderPNG]:
//
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0) // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Highlight: a path whose nodes and edges are drawn in color
//   - Weights: when true, edges carry their weight as a label
//
// # DOT Format
//
// The generated DOT uses left-to-right layout (rankdir=LR). Nodes are named
// n0, n1, ... after their NodeID and carry the entity label, so arbitrary
// labels never clash with DOT syntax. Parallel edges are kept.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PNG conversion requires librsvg (rsvg-convert).
package nodelink
