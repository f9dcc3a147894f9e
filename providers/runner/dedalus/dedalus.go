package dedalus

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/leofalp/searchagent/internal/utils"
	"github.com/leofalp/searchagent/providers/observability"
	"github.com/leofalp/searchagent/providers/runner"
)

const (
	defaultBaseURL = "https://api.dedaluslabs.ai"
	runsEndpoint   = "/v1/runs"
)

// Runner implements the runner.Runner interface for the Dedalus Labs API
type Runner struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Dedalus runner with default values. The API key is
// read from DEDALUS_API_KEY and the base URL from DEDALUS_BASE_URL when
// set.
func New() *Runner {
	apiKey := os.Getenv("DEDALUS_API_KEY")
	baseURL := os.Getenv("DEDALUS_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Runner{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key used for authenticating requests
func (r *Runner) WithAPIKey(apiKey string) *Runner {
	r.apiKey = apiKey
	return r
}

// WithBaseURL overrides the default base URL for API requests
func (r *Runner) WithBaseURL(baseURL string) *Runner {
	r.baseURL = strings.TrimSuffix(baseURL, "/")
	return r
}

// WithHttpClient sets the HTTP client used for outbound requests
func (r *Runner) WithHttpClient(httpClient *http.Client) *Runner {
	r.client = httpClient
	return r
}

// Ensure Runner implements runner.Runner
var _ runner.Runner = (*Runner)(nil)

// runResponse is the wire-level response envelope of the runs endpoint.
// Only the fields this package consumes are mapped.
type runResponse struct {
	ID          string `json:"id,omitempty"`
	Status      string `json:"status,omitempty"`
	FinalOutput string `json:"final_output"`
}

// Run implements the runner.Runner interface
func (r *Runner) Run(ctx context.Context, request runner.Request) (string, error) {
	// check API key
	if r.apiKey == "" {
		return "", fmt.Errorf("API key is not set")
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventRunnerInvokeStart,
			observability.String(observability.AttrRunnerModel, request.Model),
			observability.String(observability.AttrRunnerServers, strings.Join(request.MCPServers, ",")),
		)
		defer span.AddEvent(observability.EventRunnerInvokeEnd)
	}

	httpResponse, resp, err := utils.DoPostSync[runResponse](ctx, r.client, r.baseURL+runsEndpoint, r.apiKey, request)
	if err != nil {
		return "", err
	}

	if resp == nil {
		return "", fmt.Errorf("empty response from Dedalus API: %s", httpResponse.Status)
	}

	return resp.FinalOutput, nil
}
