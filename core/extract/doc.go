// Package extract recovers JSON values from free-form language-model output.
// Model replies frequently wrap the requested JSON in markdown code fences,
// surround it with commentary, or truncate it mid-structure; [JSON] applies a
// sequence of increasingly tolerant strategies to pull a usable value out of
// such text. Recovery is best-effort by design: a blob containing several
// disjoint JSON documents is not disambiguated, and the greedy bracket
// heuristic may capture unintended trailing characters.
package extract
