package search

// Mode selects the flavour of search the agent asks the model to perform.
type Mode string

const (
	// ModeWeb requests general web results.
	ModeWeb Mode = "web"

	// ModeNews requests recent news articles, biased toward the last
	// seven days.
	ModeNews Mode = "news"
)

// Result is a single normalized search result. Every field is always
// present in the JSON encoding: absent or invalid input is replaced by the
// empty string, and PublishedAt is encoded as null when unknown.
type Result struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	PublishedAt *string `json:"published_at"`
	Snippet     string  `json:"snippet"`
}

// Response is the terminal artifact returned to the caller. Results is
// never nil, preserves the model's ordering, and never exceeds the
// requested limit.
type Response struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}
