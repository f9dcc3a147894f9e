// Package observability defines the tracing, metrics, and logging contract
// used across the search agent. Components accept a [Provider] and emit
// spans, counters, and structured log records through it; callers that do
// not care about observability simply pass nil and pay no cost.
// The slogobs sub-package provides a ready-made Provider backed by the
// standard library's log/slog.
package observability
