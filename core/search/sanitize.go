package search

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// sanitize coerces a recovered JSON value into a well-formed [Response].
//
// A bare array is treated as the results sequence of an implicit wrapper
// object. Any other non-object value yields an empty result set. Records
// that are not objects are dropped without affecting their siblings, and
// the sanitized sequence is truncated to limit afterwards.
func sanitize(value any, query string, limit int) Response {
	results := []Result{}

	obj, isObject := value.(map[string]any)
	if !isObject {
		// A bare results array without the wrapper object
		if seq, isArray := value.([]any); isArray {
			obj = map[string]any{"query": query, "results": seq}
		} else {
			return Response{Query: query, Results: results}
		}
	}

	rawResults, _ := obj["results"].([]any)
	for _, raw := range rawResults {
		record, isRecord := raw.(map[string]any)
		if !isRecord {
			continue
		}
		results = append(results, sanitizeRecord(record))
	}

	if len(results) > limit {
		results = results[:limit]
	}

	outQuery := query
	if q, ok := obj["query"].(string); ok && q != "" {
		outQuery = q
	}

	return Response{Query: outQuery, Results: results}
}

// sanitizeRecord ensures every field exists and has the correct type.
// Fields are read under several alternate names because models rarely
// stick to one spelling; anything absent, null, or of an unusable type
// falls back to the schema default.
func sanitizeRecord(raw map[string]any) Result {
	return Result{
		Title:       cleanMarkup(stringField(raw, "title")),
		URL:         stringField(raw, "url"),
		Source:      stringField(raw, "source", "domain", "publisher"),
		PublishedAt: optionalStringField(raw, "published_at", "publishedAt", "date"),
		Snippet:     cleanMarkup(stringField(raw, "snippet", "description")),
	}
}

// stringField returns the first non-empty string value found under keys,
// or the empty string.
func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// optionalStringField returns a pointer to the first non-empty string
// value found under keys, or nil. The distinction matters for
// published_at, which must encode as null rather than "" when unknown.
func optionalStringField(raw map[string]any, keys ...string) *string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

// markupPattern matches anything that looks like an HTML tag. Search
// providers decorate titles and snippets with tags like <strong>.
var markupPattern = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)

// cleanMarkup converts HTML-bearing text to plain markdown. Plain strings
// pass through untouched so normal result fields are never rewritten.
func cleanMarkup(s string) string {
	if !markupPattern.MatchString(s) {
		return s
	}
	markdown, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(markdown)
}
