// Package utils contains small shared helpers used across the module:
// a generic JSON-over-HTTP POST with observability events, string
// truncation for safe log output, and pointer construction.
// These are internal plumbing and carry no domain semantics.
package utils
