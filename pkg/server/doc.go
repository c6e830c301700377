// Package server exposes one analyzed edge list over HTTP.
//
// The service is read-only: the Graph and degree distribution are built once
// before the server starts and every request reads the same immutable
// values, so handlers take no locks.
//
// # Routes
//
//	GET /healthz              liveness and graph size
//	GET /graph                nodes and edges
//	GET /degrees              ranked degree distribution (?histogram=true)
//	GET /path?from=A&to=B     minimum-hop directed path
//	GET /metrics              Prometheus metrics, when a gatherer is set
//
// Errors are JSON objects with "error" and "code" fields. An unknown label is
// a 404 with code LABEL_NOT_FOUND; an unreachable target is a 200 with
// "found": false.
//
// Every response carries an X-Request-ID header. A request that already has
// one keeps it.
package server
