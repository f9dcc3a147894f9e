// Package search implements a structured web/news search agent on top of a
// remote agent runner and a Brave-search MCP server. The agent formats a
// prompt that asks the model to search and reply with JSON, recovers the
// JSON from whatever the model actually returned, and normalizes every
// record into a fixed five-field result shape.
//
// The public operation never fails: transport errors, unparseable output,
// and malformed records all degrade to a valid, possibly empty [Response].
//
// Example:
//
//	agent := search.New(dedalus.New())
//	resp := agent.Search(ctx, "AMZN earnings news", search.WithMode(search.ModeNews))
//	for _, r := range resp.Results {
//	    fmt.Println(r.Title, r.URL)
//	}
package search
