package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	fenceOpen  = regexp.MustCompile("(?m)^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("(?m)\\s*```$")
)

// JSON attempts to recover a JSON value from arbitrary model output.
// Strategies are tried in order; the first success wins:
//
//  1. Strip markdown code fences and parse the remaining text directly.
//  2. Repair the fence-stripped text with jsonrepair and re-parse. This
//     recovers truncated structures, single-quoted keys, and similar
//     near-JSON the model tends to produce. Only attempted when the text
//     starts with an opening bracket, so plain prose is never coerced
//     into a JSON string.
//  3. Greedy bracket matching: for "{"/"}" then "["/"]", take the span
//     from the first opening character to the last closing character and
//     parse it, falling back to jsonrepair on the span.
//
// The boolean result reports whether a value was recovered. A false
// return is a sentinel, not an error: the text simply contained nothing
// usable.
func JSON(text string) (any, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	// Strip markdown code fences
	text = fenceOpen.ReplaceAllString(text, "")
	text = strings.TrimSpace(fenceClose.ReplaceAllString(strings.TrimSpace(text), ""))

	// Try direct parse first
	var value any
	if err := json.Unmarshal([]byte(text), &value); err == nil {
		return value, true
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		if value, ok := repairAndParse(text); ok {
			return value, true
		}
	}

	// Try to find the first { ... } or [ ... ] block
	for _, pair := range []struct{ open, close string }{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(text, pair.open)
		if start == -1 {
			continue
		}
		// Match the closing bracket from the end
		end := strings.LastIndex(text, pair.close)
		if end <= start {
			continue
		}
		span := text[start : end+1]
		var value any
		if err := json.Unmarshal([]byte(span), &value); err == nil {
			return value, true
		}
		if value, ok := repairAndParse(span); ok {
			return value, true
		}
	}

	return nil, false
}

// repairAndParse runs jsonrepair over near-JSON text and parses the result.
// Only container values are accepted: repairing can turn arbitrary prose
// into a bare JSON string, which is never what the caller asked for.
func repairAndParse(text string) (any, bool) {
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, false
	}
	var value any
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, false
	}
	switch value.(type) {
	case map[string]any, []any:
		return value, true
	}
	return nil, false
}
