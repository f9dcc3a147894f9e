package runner

import "context"

// Request carries a single prompt execution to a remote agent runner.
type Request struct {
	// Input is the full prompt text for the model.
	Input string `json:"input"`

	// Model is the provider-qualified model identifier (e.g. "openai/gpt-5-nano").
	Model string `json:"model,omitempty"`

	// MCPServers lists the tool-server identifiers the model may invoke
	// while executing the prompt.
	MCPServers []string `json:"mcp_servers,omitempty"`
}

// Runner is the core interface every agent-runner implementation must
// satisfy. It is a single opaque request/response exchange: no retries,
// no internal timeout. Cancellation and deadlines are imposed by the
// caller through ctx.
type Runner interface {
	// Run executes the prompt and returns the model's final text output.
	// Returns an error if the runner call fails, the context is
	// cancelled, or the response cannot be decoded.
	Run(ctx context.Context, request Request) (string, error)
}
