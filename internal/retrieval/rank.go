package retrieval

import "sort"

// DefaultTopK is the default number of ranked sections returned.
const DefaultTopK = 3

// Rank scores every section against the query and returns at most topK
// sections in strictly descending score order. Ties preserve the sections'
// original corpus order. Sections scoring 0 are excluded, so the result may
// be shorter than topK or empty; an empty result means "no grounding
// context", not an error.
func Rank(query string, sections []Section, topK int) []ScoredSection {
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryTokens := Tokenize(query)

	scored := make([]ScoredSection, 0, len(sections))
	for _, section := range sections {
		score := Similarity(queryTokens, Tokenize(section.Text))
		if score > 0 {
			scored = append(scored, ScoredSection{Section: section, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	return scored
}
