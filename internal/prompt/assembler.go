package prompt

import (
	"fmt"
	"strings"

	"github.com/sarojd/portfolio-chatbot/internal/retrieval"
)

// Persona is the static identity the assistant speaks for.
type Persona struct {
	Name   string
	Title  string
	Topics []string
}

// DefaultPersona returns the portfolio subject's persona.
func DefaultPersona() Persona {
	return Persona{
		Name:  "Saroj Debnath",
		Title: "Robotic Vision Engineer & LLMOps Specialist",
		Topics: []string{
			"Robotics and Computer Vision",
			"LLMOps and AI/ML",
			"Industrial automation and robotic systems",
		},
	}
}

// Build assembles the grounding prompt from the persona, the ranked sections,
// and the user query. When contexts is empty the "Relevant information"
// block is omitted entirely rather than emitted empty.
func Build(persona Persona, query string, contexts []retrieval.ScoredSection) string {
	topics := make([]string, 0, len(persona.Topics))
	for _, topic := range persona.Topics {
		topics = append(topics, "- "+topic)
	}

	contextText := ""
	if len(contexts) > 0 {
		lines := make([]string, 0, len(contexts))
		for i, ctx := range contexts {
			lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, ctx.Source, ctx.Text))
		}
		contextText = "\nRelevant information from the portfolio:\n" + strings.Join(lines, "\n")
	}

	template := MustGet("chat.json", "system")
	return Format(template, map[string]string{
		"Name":     persona.Name,
		"Title":    persona.Title,
		"Topics":   strings.Join(topics, "\n"),
		"Context":  contextText,
		"Question": query,
	})
}
