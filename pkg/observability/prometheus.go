package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements AnalysisHooks, QueryHooks and HTTPHooks by recording
// metrics in a Prometheus registry.
type Prometheus struct {
	analyzeTotal    *prometheus.CounterVec
	analyzeDuration prometheus.Histogram
	graphNodes      prometheus.Gauge
	graphEdges      prometheus.Gauge

	pathQueries  *prometheus.CounterVec
	pathHops     prometheus.Histogram
	pathDuration prometheus.Histogram
	labelMisses  prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewPrometheus creates the tiegraph metrics and registers them with reg.
// Use a dedicated registry per process; registering twice on the same
// registry panics.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		analyzeTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tiegraph_analyze_total",
			Help: "Edge list analyses by result",
		}, []string{"result"}),
		analyzeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tiegraph_analyze_duration_seconds",
			Help:    "Duration of graph construction and degree counting",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),
		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "tiegraph_graph_nodes",
			Help: "Node count of the most recently built graph",
		}),
		graphEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "tiegraph_graph_edges",
			Help: "Edge count of the most recently built graph",
		}),
		pathQueries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tiegraph_path_queries_total",
			Help: "Shortest path queries by outcome",
		}, []string{"outcome"}),
		pathHops: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tiegraph_path_hops",
			Help:    "Hop count of found shortest paths",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		pathDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tiegraph_path_query_duration_seconds",
			Help:    "Shortest path query latency",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
		}),
		labelMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "tiegraph_label_misses_total",
			Help: "Queries naming a label absent from the graph",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tiegraph_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tiegraph_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (p *Prometheus) OnAnalyzeStart(context.Context, int) {}

func (p *Prometheus) OnAnalyzeComplete(_ context.Context, nodeCount, edgeCount int, duration time.Duration, err error) {
	if err != nil {
		p.analyzeTotal.WithLabelValues("error").Inc()
		return
	}
	p.analyzeTotal.WithLabelValues("ok").Inc()
	p.analyzeDuration.Observe(duration.Seconds())
	p.graphNodes.Set(float64(nodeCount))
	p.graphEdges.Set(float64(edgeCount))
}

func (p *Prometheus) OnPathQuery(_ context.Context, found bool, hops int, duration time.Duration) {
	p.pathDuration.Observe(duration.Seconds())
	if !found {
		p.pathQueries.WithLabelValues("unreachable").Inc()
		return
	}
	p.pathQueries.WithLabelValues("found").Inc()
	p.pathHops.Observe(float64(hops))
}

func (p *Prometheus) OnLabelMiss(context.Context, string) {
	p.labelMisses.Inc()
}

func (p *Prometheus) OnResponse(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	p.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

var (
	_ AnalysisHooks = (*Prometheus)(nil)
	_ QueryHooks    = (*Prometheus)(nil)
	_ HTTPHooks     = (*Prometheus)(nil)
)
