package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rankQuery has ten distinct tokens so sections can hit exact coverage
// fractions.
const rankQuery = "alpha bravo charlie delta echo foxtrot golf hotel india juliett"

func sectionCovering(source string, tokens ...string) Section {
	return Section{Text: strings.Join(tokens, " "), Source: source}
}

func TestRank_TopKOrderingAndFloor(t *testing.T) {
	words := strings.Fields(rankQuery)

	// Corpus order A,B,C,D,E with coverage 0.8, 0.6, 0.9, 0.1, 0.0.
	sections := []Section{
		sectionCovering("A", words[:8]...),
		sectionCovering("B", words[:6]...),
		sectionCovering("C", words[:9]...),
		sectionCovering("D", words[:1]...),
		sectionCovering("E", "zulu", "yankee"),
	}

	ranked := Rank(rankQuery, sections, 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, "C", ranked[0].Source)
	assert.InDelta(t, 0.9, ranked[0].Score, 1e-9)
	assert.Equal(t, "A", ranked[1].Source)
	assert.InDelta(t, 0.8, ranked[1].Score, 1e-9)
	assert.Equal(t, "B", ranked[2].Source)
	assert.InDelta(t, 0.6, ranked[2].Score, 1e-9)
}

func TestRank_ExcludesZeroScoresEvenBelowK(t *testing.T) {
	sections := []Section{
		{Text: "robotics vision", Source: "Match"},
		{Text: "completely unrelated text", Source: "Miss"},
	}

	ranked := Rank("robotics", sections, 3)

	require.Len(t, ranked, 1)
	assert.Equal(t, "Match", ranked[0].Source)
	assert.Greater(t, ranked[0].Score, 0.0)
}

func TestRank_TiesPreserveCorpusOrder(t *testing.T) {
	sections := []Section{
		{Text: "robotics pipeline one", Source: "First"},
		{Text: "robotics pipeline two", Source: "Second"},
		{Text: "robotics pipeline three", Source: "Third"},
	}

	ranked := Rank("robotics pipeline", sections, 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, "First", ranked[0].Source)
	assert.Equal(t, "Second", ranked[1].Source)
	assert.Equal(t, "Third", ranked[2].Source)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestRank_NoMatchesYieldsEmptyResult(t *testing.T) {
	sections := []Section{
		{Text: "watercolor landscapes", Source: "Hobby"},
	}

	ranked := Rank("kubernetes operators", sections, 3)
	assert.Empty(t, ranked)
}

func TestRank_EmptyCorpus(t *testing.T) {
	assert.Empty(t, Rank("anything", nil, 3))
}

func TestRank_DefaultTopK(t *testing.T) {
	words := strings.Fields(rankQuery)
	sections := make([]Section, 0, 6)
	for i := 4; i < 10; i++ {
		sections = append(sections, sectionCovering("S", words[:i]...))
	}

	// Non-positive K falls back to the default of 3.
	ranked := Rank(rankQuery, sections, 0)
	assert.Len(t, ranked, DefaultTopK)
}
