// Package pkg provides the libraries behind tiegraph.
//
// # Overview
//
// tiegraph takes a list of labeled, weighted, directed relationships between
// entities and answers two questions: how many relationships touch each
// entity, and what is the fewest-hop directed path between two of them.
//
// The pkg directory is organized into three areas:
//
//  1. Core: [edgelist], [graph], [degree], [path]
//  2. Orchestration: [analysis], [dataset], [config]
//  3. Surfaces and support: [server], [render/nodelink], [observability],
//     [httputil], [errors], [buildinfo]
//
// # Architecture
//
//	edge list file, URL or fixture
//	         ↓
//	    [edgelist] / [dataset] ([]edgelist.Relation)
//	         ↓
//	    [analysis] ──→ [graph].Build   (concurrently)
//	               └─→ [degree].Compute
//	         ↓
//	    [path].ShortestPath over the built Graph
//	         ↓
//	    CLI report, HTTP JSON, DOT/SVG/PNG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tiegraph/pkg/dataset"
//	    "github.com/matzehuels/tiegraph/pkg/degree"
//	    "github.com/matzehuels/tiegraph/pkg/graph"
//	    "github.com/matzehuels/tiegraph/pkg/path"
//	)
//
//	rels := dataset.Dining()
//	g := graph.Build(rels)
//	d := degree.Compute(rels)
//
//	src, _ := g.Resolve("Eva")
//	dst, _ := g.Resolve("Maxine")
//	if p, ok := path.ShortestPath(g, src, dst); ok {
//	    fmt.Println(p.Format(g)) // Eva → Maxine
//	}
//	fmt.Println(d["Eva"]) // 5
//
// The Graph is immutable once built and safe for concurrent readers.
//
// [edgelist]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/edgelist
// [graph]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/graph
// [degree]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/degree
// [path]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/path
// [analysis]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/analysis
// [dataset]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/dataset
// [config]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/server
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/render/nodelink
// [observability]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/observability
// [httputil]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tiegraph/pkg/buildinfo
package pkg
