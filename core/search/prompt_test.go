package search

import (
	"strings"
	"testing"
)

func TestBuildPrompt_WebMode(t *testing.T) {
	prompt := buildPrompt("top gold mining companies", ModeWeb, 5, DefaultServer)

	if !strings.Contains(prompt, "Search for: top gold mining companies") {
		t.Error("prompt does not state the query")
	}
	if strings.Contains(prompt, "RECENT NEWS") {
		t.Error("web prompt contains the news instruction")
	}
	if !strings.Contains(prompt, "Use the brave-search-mcp tools") {
		t.Error("prompt does not name the search tool")
	}
	if !strings.Contains(prompt, "Return exactly 5 results.") {
		t.Error("prompt does not request the exact result count")
	}
	if !strings.Contains(prompt, "Return ONLY valid JSON") {
		t.Error("prompt does not forbid non-JSON content")
	}
}

func TestBuildPrompt_NewsMode(t *testing.T) {
	prompt := buildPrompt("AMZN earnings", ModeNews, 8, DefaultServer)

	if !strings.Contains(prompt, "Prefer results from the last 7 days.") {
		t.Error("news prompt lacks the recency instruction")
	}
}

func TestBuildPrompt_SchemaFields(t *testing.T) {
	prompt := buildPrompt("q", ModeWeb, 3, DefaultServer)

	for _, field := range []string{`"title"`, `"url"`, `"source"`, `"published_at"`, `"snippet"`, `"query"`, `"results"`} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt schema lacks field %s", field)
		}
	}
}

func TestToolName(t *testing.T) {
	tests := []struct {
		name   string
		server string
		want   string
	}{
		{name: "namespaced server", server: "tsion/brave-search-mcp", want: "brave-search-mcp"},
		{name: "bare server", server: "brave-search-mcp", want: "brave-search-mcp"},
		{name: "empty server", server: "", want: "search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toolName(tt.server); got != tt.want {
				t.Errorf("toolName(%q) = %q, want %q", tt.server, got, tt.want)
			}
		})
	}
}
