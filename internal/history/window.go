// Package history bounds the conversation transcript passed to the model.
package history

import "github.com/sarojd/portfolio-chatbot/internal/types"

// DefaultMaxTurns is how many trailing turns of the transcript are kept.
const DefaultMaxTurns = 4

// Window truncates the transcript to at most the maxTurns most recent turns,
// preserving relative order, and normalizes each kept turn: a missing role
// defaults to "user" and legacy message content is folded into Content. The
// input slice is never mutated. A non-positive maxTurns falls back to
// DefaultMaxTurns.
func Window(turns []types.Turn, maxTurns int) []types.Turn {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	start := 0
	if len(turns) > maxTurns {
		start = len(turns) - maxTurns
	}

	windowed := make([]types.Turn, 0, len(turns)-start)
	for _, turn := range turns[start:] {
		role := turn.Role
		if role == "" {
			role = "user"
		}
		windowed = append(windowed, types.Turn{
			Role:    role,
			Content: turn.Text(),
		})
	}

	return windowed
}
