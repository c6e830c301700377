// Package analysis runs the tiegraph core over an edge list.
//
// # Overview
//
// An analysis builds the [graph.Graph] and computes the [degree.Distribution]
// of the same edge list. The two computations have no data dependency on each
// other and run concurrently; both only read the input slice.
//
//	res, err := analysis.Analyze(ctx, rels)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Graph.NodeCount(), res.Degrees.Total())
//
// # Queries
//
// [Result.ShortestPath] answers label-based path queries. Labels are resolved
// on the graph first; a label that never appeared in the edge list yields an
// error with code LABEL_NOT_FOUND. An unreachable target is not an error: the
// returned [PathResult] has Found set to false.
//
// # Sources
//
// [Load] accepts the name of a built-in fixture (see package dataset), a
// path to a JSON, TOML or YAML edge list file, or an http(s) URL of one.
// Remote documents are fetched with retries on transient failures.
//
// # Observability
//
// Analyses and queries report to the hooks registered in package
// observability. A [Runner] additionally logs progress with a
// charmbracelet/log logger.
//
// [graph.Graph]: github.com/matzehuels/tiegraph/pkg/graph.Graph
// [degree.Distribution]: github.com/matzehuels/tiegraph/pkg/degree.Distribution
package analysis
