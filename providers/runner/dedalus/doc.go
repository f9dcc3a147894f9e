// Package dedalus implements the runner.Runner interface against the
// Dedalus Labs agent-runner API. A run is a single synchronous POST: the
// prompt, model identifier, and MCP server list go up, the model's final
// text output comes back. Requires the DEDALUS_API_KEY environment
// variable unless an API key is set explicitly.
package dedalus
