package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Search Attributes ---

const (
	// AttrSearchQuery is the user's search query text
	AttrSearchQuery = "search.query"

	// AttrSearchMode is the search mode ("web" or "news")
	AttrSearchMode = "search.mode"

	// AttrSearchLimit is the effective result limit after clamping
	AttrSearchLimit = "search.limit"

	// AttrSearchResultCount is the number of results returned to the caller
	AttrSearchResultCount = "search.result_count"
)

// --- Runner Attributes ---

const (
	// AttrRunnerModel is the model identifier passed to the agent runner
	AttrRunnerModel = "runner.model"

	// AttrRunnerServers is the comma-joined list of MCP server identifiers
	AttrRunnerServers = "runner.servers"

	// AttrRunnerOutputLength is the length in bytes of the runner's raw output
	AttrRunnerOutputLength = "runner.output_length"

	// AttrRunnerError is the error message if the runner call failed
	AttrRunnerError = "runner.error"
)

// --- Output Recovery Attributes ---

const (
	// AttrExtractRecovered indicates whether a JSON value was recovered
	AttrExtractRecovered = "extract.recovered"

	// AttrExtractSnippet is a truncated preview of unrecoverable output
	AttrExtractSnippet = "extract.snippet"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanSearch is the span name for a full search operation
	SpanSearch = "search.run"

	// SpanRunnerInvoke is the span name for agent runner invocations
	SpanRunnerInvoke = "runner.invoke"
)

// --- Event Names ---

const (
	// EventRunnerInvokeStart marks the start of an agent runner call
	EventRunnerInvokeStart = "runner.invoke.start"

	// EventRunnerInvokeEnd marks the end of an agent runner call
	EventRunnerInvokeEnd = "runner.invoke.end"

	// EventOutputRecovered marks successful JSON recovery from model output
	EventOutputRecovered = "extract.output.recovered"

	// EventOutputUnrecoverable marks model output with no recoverable JSON
	EventOutputUnrecoverable = "extract.output.unrecoverable"
)

// --- Metric Names ---

const (
	// MetricSearchCount is the counter for search operations
	MetricSearchCount = "searchagent.search.count"

	// MetricSearchFailures is the counter for searches that degraded to an empty response
	MetricSearchFailures = "searchagent.search.failures"

	// MetricSearchDuration is the histogram for search duration in milliseconds
	MetricSearchDuration = "searchagent.search.duration"
)
