// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends to the analysis code.
// Consumers register hooks at startup to receive events about edge list
// analysis, path queries and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// [Prometheus] implements every hook interface on top of
// prometheus/client_golang and is what `tiegraph serve` registers.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    prom := observability.NewPrometheus(prometheus.NewRegistry())
//	    observability.SetAnalysisHooks(prom)
//	    observability.SetQueryHooks(prom)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Analysis().OnAnalyzeStart(ctx, len(rels))
//	// ... build graph and count degrees ...
//	observability.Analysis().OnAnalyzeComplete(ctx, nodes, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from graph construction and degree counting.
type AnalysisHooks interface {
	OnAnalyzeStart(ctx context.Context, relationCount int)
	OnAnalyzeComplete(ctx context.Context, nodeCount, edgeCount int, duration time.Duration, err error)
}

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events from shortest path queries.
type QueryHooks interface {
	// OnPathQuery records a completed query. hops is -1 when no path exists.
	OnPathQuery(ctx context.Context, found bool, hops int, duration time.Duration)

	// OnLabelMiss records a query naming a label absent from the graph.
	OnLabelMiss(ctx context.Context, label string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP query service.
type HTTPHooks interface {
	// OnResponse records a served request. route is the matched route pattern.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnAnalyzeStart(context.Context, int)                                {}
func (NoopAnalysisHooks) OnAnalyzeComplete(context.Context, int, int, time.Duration, error) {}

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnPathQuery(context.Context, bool, int, time.Duration) {}
func (NoopQueryHooks) OnLabelMiss(context.Context, string)                   {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	queryHooks    QueryHooks    = NoopQueryHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks.
// This should be called once at application startup.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// SetQueryHooks registers custom query hooks.
// This should be called once at application startup.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
	queryHooks = NoopQueryHooks{}
	httpHooks = NoopHTTPHooks{}
}
