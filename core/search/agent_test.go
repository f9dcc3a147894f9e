package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/searchagent/providers/observability/slogobs"
	"github.com/leofalp/searchagent/providers/runner"
)

// fakeRunner returns a canned output (or error) and records the last request.
type fakeRunner struct {
	output  string
	err     error
	lastReq runner.Request
}

func (f *fakeRunner) Run(_ context.Context, req runner.Request) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestSearch_WellFormedOutput(t *testing.T) {
	fake := &fakeRunner{output: `{
		"query": "go generics",
		"results": [
			{"title": "A", "url": "https://a.example", "source": "a.example", "published_at": "2026-01-02", "snippet": "first"},
			{"title": "B", "url": "https://b.example", "source": "b.example", "published_at": null, "snippet": "second"}
		]
	}`}
	agent := New(fake)

	got := agent.Search(context.Background(), "go generics")

	if got.Query != "go generics" {
		t.Errorf("Query = %q, want %q", got.Query, "go generics")
	}
	if len(got.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(got.Results))
	}
	first := got.Results[0]
	if first.Title != "A" || first.URL != "https://a.example" || first.Source != "a.example" || first.Snippet != "first" {
		t.Errorf("Results[0] = %+v", first)
	}
	if first.PublishedAt == nil || *first.PublishedAt != "2026-01-02" {
		t.Errorf("Results[0].PublishedAt = %v, want 2026-01-02", first.PublishedAt)
	}
	if got.Results[1].PublishedAt != nil {
		t.Errorf("Results[1].PublishedAt = %v, want nil", got.Results[1].PublishedAt)
	}
}

func TestSearch_FencedOutputMatchesUnwrapped(t *testing.T) {
	raw := `{"query": "q", "results": [{"title": "A"}]}`

	plain := New(&fakeRunner{output: raw}).Search(context.Background(), "q")
	fenced := New(&fakeRunner{output: "```json\n" + raw + "\n```"}).Search(context.Background(), "q")

	if len(plain.Results) != 1 || len(fenced.Results) != 1 {
		t.Fatalf("result counts differ: plain=%d fenced=%d", len(plain.Results), len(fenced.Results))
	}
	if plain.Results[0] != fenced.Results[0] {
		t.Errorf("fenced result %+v differs from plain %+v", fenced.Results[0], plain.Results[0])
	}
}

func TestSearch_BareArrayOutput(t *testing.T) {
	fake := &fakeRunner{output: `[{"title": "A"}, {"title": "B"}]`}

	got := New(fake).Search(context.Background(), "input query")

	if got.Query != "input query" {
		t.Errorf("Query = %q, want original input query", got.Query)
	}
	if len(got.Results) != 2 {
		t.Errorf("len(Results) = %d, want 2", len(got.Results))
	}
}

func TestSearch_RunnerFailureYieldsEmptyResponse(t *testing.T) {
	fake := &fakeRunner{err: errors.New("transport exploded")}

	got := New(fake).Search(context.Background(), "q")

	if got.Query != "q" {
		t.Errorf("Query = %q, want %q", got.Query, "q")
	}
	if len(got.Results) != 0 || got.Results == nil {
		t.Errorf("Results = %v, want empty non-nil slice", got.Results)
	}
}

func TestSearch_UnparseableOutputYieldsEmptyResponse(t *testing.T) {
	fake := &fakeRunner{output: "not json at all"}

	got := New(fake).Search(context.Background(), "q")

	if got.Query != "q" || len(got.Results) != 0 {
		t.Errorf("Search() = %+v, want empty response for original query", got)
	}
}

func TestSearch_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		effective int
	}{
		{name: "above maximum", limit: 50, effective: 10},
		{name: "zero", limit: 0, effective: 1},
		{name: "negative", limit: -3, effective: 1},
		{name: "in range", limit: 5, effective: 5},
	}

	// 15 valid records so truncation is observable at every clamp value.
	var records []string
	for i := 0; i < 15; i++ {
		records = append(records, fmt.Sprintf(`{"title": "r%d"}`, i))
	}
	output := `{"results": [` + strings.Join(records, ",") + `]}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRunner{output: output}
			agent := New(fake)

			got := agent.Search(context.Background(), "q", WithLimit(tt.limit))

			if len(got.Results) != tt.effective {
				t.Errorf("len(Results) = %d, want %d", len(got.Results), tt.effective)
			}
			wantPhrase := fmt.Sprintf("Return exactly %d results.", tt.effective)
			if !strings.Contains(fake.lastReq.Input, wantPhrase) {
				t.Errorf("prompt does not request the clamped count %d", tt.effective)
			}
			for i, r := range got.Results {
				if want := fmt.Sprintf("r%d", i); r.Title != want {
					t.Errorf("Results[%d].Title = %q, want %q", i, r.Title, want)
				}
			}
		})
	}
}

func TestSearch_DefaultsAndOptionsReachRunner(t *testing.T) {
	fake := &fakeRunner{output: `{"results": []}`}
	agent := New(fake,
		WithModel("openai/gpt-5-mini"),
		WithServers("acme/search-mcp", "acme/backup-mcp"),
	)

	agent.Search(context.Background(), "q")

	if fake.lastReq.Model != "openai/gpt-5-mini" {
		t.Errorf("Model = %q, want configured model", fake.lastReq.Model)
	}
	if len(fake.lastReq.MCPServers) != 2 || fake.lastReq.MCPServers[0] != "acme/search-mcp" {
		t.Errorf("MCPServers = %v, want configured servers", fake.lastReq.MCPServers)
	}
	if !strings.Contains(fake.lastReq.Input, "Use the search-mcp tools") {
		t.Errorf("prompt does not name the first configured server's tool")
	}
	if !strings.Contains(fake.lastReq.Input, "Return exactly 8 results.") {
		t.Errorf("prompt does not use the default limit")
	}
}

func TestSearch_NewsModeChangesPrompt(t *testing.T) {
	fake := &fakeRunner{output: `{"results": []}`}
	agent := New(fake)

	agent.Search(context.Background(), "q", WithMode(ModeNews))

	if !strings.Contains(fake.lastReq.Input, "RECENT NEWS") {
		t.Errorf("news mode did not add the recency instruction")
	}
}

func TestSearch_WithObserverDoesNotAlterResult(t *testing.T) {
	fake := &fakeRunner{output: `{"results": [{"title": "A"}]}`}
	agent := New(fake, WithObserver(slogobs.New(slog.Default())))

	got := agent.Search(context.Background(), "q")

	if len(got.Results) != 1 || got.Results[0].Title != "A" {
		t.Errorf("Search() with observer = %+v", got)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -1, want: 1},
		{in: 0, want: 1},
		{in: 1, want: 1},
		{in: 8, want: 8},
		{in: 10, want: 10},
		{in: 11, want: 10},
	}

	for _, tt := range tests {
		if got := clampLimit(tt.in); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
