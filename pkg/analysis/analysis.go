package analysis

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tiegraph/pkg/dataset"
	"github.com/matzehuels/tiegraph/pkg/degree"
	"github.com/matzehuels/tiegraph/pkg/edgelist"
	errs "github.com/matzehuels/tiegraph/pkg/errors"
	"github.com/matzehuels/tiegraph/pkg/graph"
	"github.com/matzehuels/tiegraph/pkg/httputil"
	"github.com/matzehuels/tiegraph/pkg/observability"
	"github.com/matzehuels/tiegraph/pkg/path"
)

// Result holds the products of one analysis. Both are read-only.
type Result struct {
	Graph   *graph.Graph
	Degrees degree.Distribution
	Stats   Stats
}

// Stats records the size of the analyzed edge list and how long it took.
type Stats struct {
	Relations int
	NodeCount int
	EdgeCount int
	Duration  time.Duration
}

// PathResult is the outcome of a label-based shortest path query.
type PathResult struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Found bool     `json:"found"`
	Hops  int      `json:"hops"` // -1 when not found
	Path  []string `json:"path"` // labels from From to To; empty when not found

	IDs path.Path `json:"-"`
}

// Analyze builds the graph and the degree distribution of rels concurrently.
// The only error is the context's, when ctx is done before both finish.
func Analyze(ctx context.Context, rels []edgelist.Relation) (*Result, error) {
	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, len(rels))
	start := time.Now()

	res := &Result{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		res.Graph = graph.Build(rels)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		res.Degrees = degree.Compute(rels)
		return nil
	})
	if err := g.Wait(); err != nil {
		hooks.OnAnalyzeComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	res.Stats = Stats{
		Relations: len(rels),
		NodeCount: res.Graph.NodeCount(),
		EdgeCount: res.Graph.EdgeCount(),
		Duration:  time.Since(start),
	}
	hooks.OnAnalyzeComplete(ctx, res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.Duration, nil)
	return res, nil
}

// Resolve returns the NodeID of label, or a LABEL_NOT_FOUND error.
func (r *Result) Resolve(ctx context.Context, label string) (graph.NodeID, error) {
	id, ok := r.Graph.Resolve(label)
	if !ok {
		observability.Query().OnLabelMiss(ctx, label)
		return 0, errs.New(errs.ErrCodeLabelNotFound, "label %q does not appear in the edge list", label)
	}
	return id, nil
}

// ShortestPath resolves both labels and returns the minimum-hop directed
// path between them. Unknown labels are errors; an unreachable target is
// reported through PathResult.Found.
func (r *Result) ShortestPath(ctx context.Context, from, to string) (*PathResult, error) {
	src, err := r.Resolve(ctx, from)
	if err != nil {
		return nil, err
	}
	dst, err := r.Resolve(ctx, to)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p, found := path.ShortestPath(r.Graph, src, dst)
	out := &PathResult{From: from, To: to, Found: found, Hops: -1, Path: []string{}}
	if found {
		out.Hops = p.Hops()
		out.Path = p.Labels(r.Graph)
		out.IDs = p
	}
	observability.Query().OnPathQuery(ctx, found, out.Hops, time.Since(start))
	return out, nil
}

// Load returns the edge list named by source: an http(s) URL, a path to a
// .json, .toml, .yaml or .yml file, or a built-in fixture name.
func Load(ctx context.Context, source string) ([]edgelist.Relation, error) {
	switch {
	case source == "":
		return nil, errs.New(errs.ErrCodeInvalidInput, "no edge list source given")
	case isURL(source):
		return loadURL(ctx, source)
	case isFile(source):
		return edgelist.Load(source)
	}
	rels, err := dataset.Lookup(source)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	return rels, nil
}

func loadURL(ctx context.Context, source string) ([]edgelist.Relation, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse %s", source)
	}
	format, err := edgelist.FormatFromPath(u.Path)
	if err != nil {
		return nil, err
	}
	body, err := httputil.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch edge list: %w", err)
	}
	rels, err := edgelist.ReadBytes(body, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return rels, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// isFile reports whether source should be treated as a file path: it exists
// on disk or carries a file extension.
func isFile(source string) bool {
	if _, err := os.Stat(source); err == nil {
		return true
	}
	return filepath.Ext(source) != ""
}
