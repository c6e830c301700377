package analysis

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tiegraph/pkg/edgelist"
)

// Runner wraps Load and Analyze with progress logging.
// Both CLI and HTTP service use it so that logging stays consistent.
//
// The Runner is stateless except for the logger; multiple goroutines can
// safely use the same Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run loads the edge list named by source and analyzes it.
func (r *Runner) Run(ctx context.Context, source string) (*Result, error) {
	r.Logger.Debug("loading edge list", "source", source)
	rels, err := Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return r.Analyze(ctx, rels)
}

// Analyze runs Analyze on rels and logs the resulting graph size.
func (r *Runner) Analyze(ctx context.Context, rels []edgelist.Relation) (*Result, error) {
	res, err := Analyze(ctx, rels)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	r.Logger.Info("built graph",
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"duration", res.Stats.Duration)
	return res, nil
}

// ShortestPath runs a path query on res and logs its outcome at debug level.
func (r *Runner) ShortestPath(ctx context.Context, res *Result, from, to string) (*PathResult, error) {
	pr, err := res.ShortestPath(ctx, from, to)
	if err != nil {
		r.Logger.Debug("path query failed", "from", from, "to", to, "err", err)
		return nil, err
	}
	r.Logger.Debug("path query", "from", from, "to", to, "found", pr.Found, "hops", pr.Hops)
	return pr, nil
}
