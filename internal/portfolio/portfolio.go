// Package portfolio defines the portfolio document schema, flattens it into
// retrievable sections, and caches the remotely fetched document.
package portfolio

// Document is the structured portfolio document fetched from the remote
// source. Every field is optional: absent fields are skipped silently when
// building sections, never treated as an error.
type Document struct {
	Hero       *Hero        `json:"hero,omitempty"`
	Profile    *Profile     `json:"profile,omitempty"`
	Projects   *Projects    `json:"projects,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
}

// Hero holds the landing-page introduction.
type Hero struct {
	Intro string `json:"intro,omitempty"`
}

// Profile holds the longer profile introduction.
type Profile struct {
	Intro string `json:"intro,omitempty"`
}

// Projects groups project lists by discipline.
type Projects struct {
	Robotics []Project `json:"robotics,omitempty"`
	LLMOps   []Project `json:"llmops,omitempty"`
}

// Project is a single portfolio project.
type Project struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience is a single work-experience entry.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}
