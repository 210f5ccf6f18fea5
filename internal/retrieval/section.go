// Package retrieval provides lexical retrieval over portfolio sections:
// tokenization, query-coverage scoring, and top-K ranking.
package retrieval

// Section is a retrievable unit of the portfolio corpus.
// Source is a human-readable label (e.g. "Robotics Project: X"), not a
// unique identifier.
type Section struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// ScoredSection pairs a Section with its relevance score in [0,1].
type ScoredSection struct {
	Section
	Score float64 `json:"score"`
}
