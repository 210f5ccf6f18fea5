package prompt

import (
	"strings"
	"testing"

	"github.com/sarojd/portfolio-chatbot/internal/retrieval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_WithContexts(t *testing.T) {
	contexts := []retrieval.ScoredSection{
		{Section: retrieval.Section{Text: "Bin picking cell. 3D vision", Source: "Robotics Project: Bin Picking"}, Score: 0.9},
		{Section: retrieval.Section{Text: "profile text", Source: "Profile"}, Score: 0.5},
	}

	result := Build(DefaultPersona(), "tell me about robotics", contexts)

	assert.Contains(t, result, "Saroj Debnath's portfolio website")
	assert.Contains(t, result, "Saroj Debnath is a Robotic Vision Engineer & LLMOps Specialist.")
	assert.Contains(t, result, "- Robotics and Computer Vision")
	assert.Contains(t, result, "- LLMOps and AI/ML")
	assert.Contains(t, result, "Relevant information from the portfolio:")
	assert.Contains(t, result, "1. Robotics Project: Bin Picking: Bin picking cell. 3D vision")
	assert.Contains(t, result, "2. Profile: profile text")
	assert.Contains(t, result, "User Question: tell me about robotics")
	assert.Contains(t, result, "Provide a helpful, concise answer:")
}

func TestBuild_BlockOrder(t *testing.T) {
	contexts := []retrieval.ScoredSection{
		{Section: retrieval.Section{Text: "t", Source: "Profile"}, Score: 1},
	}

	result := Build(DefaultPersona(), "q", contexts)

	persona := strings.Index(result, "You are a helpful AI assistant")
	topics := strings.Index(result, "- Robotics and Computer Vision")
	info := strings.Index(result, "Relevant information")
	guidelines := strings.Index(result, "Guidelines:")
	question := strings.Index(result, "User Question:")
	respond := strings.Index(result, "Provide a helpful, concise answer:")

	require.True(t, persona >= 0)
	assert.Less(t, persona, topics)
	assert.Less(t, topics, info)
	assert.Less(t, info, guidelines)
	assert.Less(t, guidelines, question)
	assert.Less(t, question, respond)
}

func TestBuild_NoContextsOmitsBlock(t *testing.T) {
	result := Build(DefaultPersona(), "what is your favorite color", nil)

	assert.NotContains(t, result, "Relevant information")
	assert.Contains(t, result, "User Question: what is your favorite color")
}

func TestBuild_NoPlaceholdersLeft(t *testing.T) {
	result := Build(DefaultPersona(), "q", nil)
	assert.NotContains(t, result, "{{.")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("chat.json", "nope")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	assert.Error(t, err)
}
