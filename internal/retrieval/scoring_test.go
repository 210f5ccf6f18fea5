package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_FullCoverage(t *testing.T) {
	query := Tokenize("robotics vision")
	section := Tokenize("Built robotics systems with advanced computer vision and deep learning")

	assert.Equal(t, 1.0, Similarity(query, section))
}

func TestSimilarity_NoOverlap(t *testing.T) {
	query := Tokenize("kubernetes deployment")
	section := Tokenize("painting watercolor landscapes")

	assert.Equal(t, 0.0, Similarity(query, section))
}

func TestSimilarity_PartialCoverage(t *testing.T) {
	query := Tokenize("robotics vision pipelines kubernetes")
	section := Tokenize("robotics and computer vision")

	// 2 of 4 query tokens covered
	assert.InDelta(t, 0.5, Similarity(query, section), 1e-9)
}

func TestSimilarity_EmptySets(t *testing.T) {
	tests := []struct {
		name    string
		query   TokenSet
		section TokenSet
	}{
		{"empty query", Tokenize(""), Tokenize("some section text")},
		{"empty section", Tokenize("some query"), Tokenize("")},
		{"both empty", Tokenize(""), Tokenize("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, Similarity(tt.query, tt.section))
		})
	}
}

func TestSimilarity_AsymmetricNotJaccard(t *testing.T) {
	query := Tokenize("robotics")
	section := Tokenize("robotics automation manufacturing inspection conveyor calibration")

	// Query coverage is 1.0 even though the section has many extra tokens;
	// a Jaccard index would be 1/6 here.
	assert.Equal(t, 1.0, Similarity(query, section))
}

func TestSimilarity_Deterministic(t *testing.T) {
	query := Tokenize("tell me about your robotics work")
	section := Tokenize("Autonomous bin picking. Robotics cell with 3D vision")

	first := Similarity(query, section)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Similarity(query, section))
	}
}
