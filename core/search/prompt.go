package search

import (
	"fmt"
	"path"
	"strings"
)

// buildPrompt constructs the instruction string sent to the agent runner.
// It states the query, optionally biases toward recent news, names the
// search tool the model should use, pins down the exact JSON schema of the
// reply, and forbids any non-JSON content.
func buildPrompt(query string, mode Mode, limit int, server string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Search for: %s\n\n", query)

	if mode == ModeNews {
		b.WriteString("Focus on RECENT NEWS articles. Prefer results from the last 7 days. ")
		b.WriteString("Use news-specific search if available. ")
	}

	fmt.Fprintf(&b, "Use the %s tools to search the web.\n\n", toolName(server))

	b.WriteString("Return ONLY valid JSON with NO markdown, NO commentary, NO explanation.\n")
	b.WriteString("The JSON must follow this exact schema:\n")
	fmt.Fprintf(&b, "{\n"+
		"  \"query\": %q,\n"+
		"  \"results\": [\n"+
		"    {\n"+
		"      \"title\": \"<page title>\",\n"+
		"      \"url\": \"<full URL>\",\n"+
		"      \"source\": \"<publisher or domain name>\",\n"+
		"      \"published_at\": \"<ISO 8601 date string or null>\",\n"+
		"      \"snippet\": \"<brief description or summary>\"\n"+
		"    }\n"+
		"  ]\n"+
		"}\n\n", query)

	fmt.Fprintf(&b, "Return exactly %d results. ", limit)
	b.WriteString("If fewer results are found, return as many as available. ")
	b.WriteString("Output ONLY the JSON object, nothing else.")

	return b.String()
}

// toolName derives a short tool name from an MCP server identifier, e.g.
// "tsion/brave-search-mcp" becomes "brave-search-mcp".
func toolName(server string) string {
	if server == "" {
		return "search"
	}
	return path.Base(server)
}
