package retrieval

// Similarity computes the query-coverage score between a tokenized query and
// a tokenized section: the fraction of query tokens that also appear in the
// section. Returns a value in [0,1], and 0 when either set is empty.
//
// This is deliberately asymmetric rather than a Jaccard index: a long section
// containing every query token scores 1.0 regardless of its own length, which
// favors precision for short-answer retrieval. Changing the formula changes
// ranking outcomes.
func Similarity(query, section TokenSet) float64 {
	if len(query) == 0 || len(section) == 0 {
		return 0
	}

	matches := 0
	for token := range query {
		if section.Contains(token) {
			matches++
		}
	}

	return float64(matches) / float64(len(query))
}
