package search

import (
	"context"
	"time"

	"github.com/leofalp/searchagent/core/extract"
	"github.com/leofalp/searchagent/providers/observability"
	"github.com/leofalp/searchagent/providers/runner"
)

const (
	// DefaultModel is the model identifier used when none is configured.
	DefaultModel = "openai/gpt-5-nano"

	// DefaultServer is the MCP search server used when none is configured.
	DefaultServer = "tsion/brave-search-mcp"

	// DefaultLimit is the number of results requested when the caller
	// does not specify one.
	DefaultLimit = 8

	// MaxResults caps the number of results a single search may return.
	MaxResults = 10
)

// Agent performs structured web and news searches through a remote agent
// runner. Construct it with [New]; the zero value is not usable.
//
// An Agent holds no per-call state, so a single instance is safe for
// concurrent use. Each [Agent.Search] call forms and parses its own data.
type Agent struct {
	runner   runner.Runner
	model    string
	servers  []string
	observer observability.Provider
}

// Option configures an [Agent] at construction time.
type Option func(*Agent)

// WithModel overrides the model identifier passed to the runner.
func WithModel(model string) Option {
	return func(a *Agent) {
		a.model = model
	}
}

// WithServers overrides the MCP server identifiers the model may invoke.
func WithServers(servers ...string) Option {
	return func(a *Agent) {
		a.servers = servers
	}
}

// WithObserver attaches an observability provider. Without one the agent
// stays silent.
func WithObserver(observer observability.Provider) Option {
	return func(a *Agent) {
		a.observer = observer
	}
}

// New creates a search agent backed by r.
func New(r runner.Runner, opts ...Option) *Agent {
	agent := &Agent{
		runner:  r,
		model:   DefaultModel,
		servers: []string{DefaultServer},
	}
	for _, opt := range opts {
		opt(agent)
	}
	return agent
}

// searchConfig holds per-call settings resolved from [SearchOption] values.
type searchConfig struct {
	mode  Mode
	limit int
}

// SearchOption configures a single [Agent.Search] call.
type SearchOption func(*searchConfig)

// WithMode selects web or news search. The default is [ModeWeb].
func WithMode(mode Mode) SearchOption {
	return func(c *searchConfig) {
		c.mode = mode
	}
}

// WithLimit sets the maximum number of results to return. Values outside
// [1, MaxResults] are clamped. The default is [DefaultLimit].
func WithLimit(limit int) SearchOption {
	return func(c *searchConfig) {
		c.limit = limit
	}
}

// Search runs a single search for query and returns a normalized
// [Response]. It suspends only for the runner call; cancellation and
// timeouts are the caller's responsibility via ctx.
//
// Search never returns an error: a failed runner call, unparseable model
// output, or a malformed top-level value all degrade to an empty result
// set paired with the original query. Individual malformed records are
// dropped without invalidating the batch.
func (a *Agent) Search(ctx context.Context, query string, opts ...SearchOption) Response {
	cfg := searchConfig{mode: ModeWeb, limit: DefaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	limit := clampLimit(cfg.limit)

	var span observability.Span
	start := time.Now()
	if a.observer != nil {
		ctx, span = a.observer.StartSpan(ctx, observability.SpanSearch,
			observability.String(observability.AttrSearchQuery, query),
			observability.String(observability.AttrSearchMode, string(cfg.mode)),
			observability.Int(observability.AttrSearchLimit, limit),
		)
		defer span.End()
		a.observer.Counter(observability.MetricSearchCount).Add(ctx, 1)
		defer func() {
			a.observer.Histogram(observability.MetricSearchDuration).Record(ctx, float64(time.Since(start).Milliseconds()))
		}()
	}

	empty := Response{Query: query, Results: []Result{}}
	server := ""
	if len(a.servers) > 0 {
		server = a.servers[0]
	}
	prompt := buildPrompt(query, cfg.mode, limit, server)

	a.logInfo(ctx, "searching",
		observability.String(observability.AttrSearchQuery, query),
		observability.String(observability.AttrSearchMode, string(cfg.mode)),
		observability.Int(observability.AttrSearchLimit, limit),
	)

	raw, err := a.runner.Run(ctx, runner.Request{
		Input:      prompt,
		Model:      a.model,
		MCPServers: a.servers,
	})
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "runner call failed")
		}
		a.recordFailure(ctx)
		a.logError(ctx, "search failed, returning empty result set",
			observability.String(observability.AttrRunnerError, err.Error()),
		)
		return empty
	}

	if span != nil {
		span.SetAttributes(observability.Int(observability.AttrRunnerOutputLength, len(raw)))
	}

	value, ok := extract.JSON(raw)
	if !ok {
		if span != nil {
			span.AddEvent(observability.EventOutputUnrecoverable,
				observability.String(observability.AttrExtractSnippet, observability.TruncateStringDefault(raw)),
			)
		}
		a.recordFailure(ctx)
		a.logWarn(ctx, "no JSON recoverable from runner output",
			observability.String(observability.AttrExtractSnippet, observability.TruncateStringDefault(raw)),
		)
		return empty
	}

	if span != nil {
		span.AddEvent(observability.EventOutputRecovered)
	}

	response := sanitize(value, query, limit)
	if span != nil {
		span.SetAttributes(observability.Int(observability.AttrSearchResultCount, len(response.Results)))
		span.SetStatus(observability.StatusOK, "")
	}
	return response
}

// clampLimit clamps limit to [1, MaxResults].
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxResults {
		return MaxResults
	}
	return limit
}

func (a *Agent) recordFailure(ctx context.Context) {
	if a.observer != nil {
		a.observer.Counter(observability.MetricSearchFailures).Add(ctx, 1)
	}
}

func (a *Agent) logInfo(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if a.observer != nil {
		a.observer.Info(ctx, msg, attrs...)
	}
}

func (a *Agent) logWarn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if a.observer != nil {
		a.observer.Warn(ctx, msg, attrs...)
	}
}

func (a *Agent) logError(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if a.observer != nil {
		a.observer.Error(ctx, msg, attrs...)
	}
}
