package portfolio

import (
	"fmt"

	"github.com/sarojd/portfolio-chatbot/internal/retrieval"
)

// BuildSections flattens a document into an ordered list of retrievable
// sections. The order is fixed (intro, profile, robotics projects, llmops
// projects, experience) so that score ties in the ranker resolve
// deterministically across requests. Missing sub-fields on an entry render
// as empty strings rather than failing the build.
func BuildSections(doc *Document) []retrieval.Section {
	if doc == nil {
		return nil
	}

	var sections []retrieval.Section

	if doc.Hero != nil && doc.Hero.Intro != "" {
		sections = append(sections, retrieval.Section{
			Text:   doc.Hero.Intro,
			Source: "Introduction",
		})
	}

	if doc.Profile != nil && doc.Profile.Intro != "" {
		sections = append(sections, retrieval.Section{
			Text:   doc.Profile.Intro,
			Source: "Profile",
		})
	}

	if doc.Projects != nil {
		sections = append(sections, projectSections(doc.Projects.Robotics, "Robotics Project")...)
		sections = append(sections, projectSections(doc.Projects.LLMOps, "LLMOps Project")...)
	}

	for _, exp := range doc.Experience {
		sections = append(sections, retrieval.Section{
			Text: fmt.Sprintf("%s at %s (%s). %s",
				exp.Title, exp.Company, exp.Duration, exp.Description),
			Source: fmt.Sprintf("Experience: %s", exp.Company),
		})
	}

	return sections
}

func projectSections(projects []Project, sourcePrefix string) []retrieval.Section {
	sections := make([]retrieval.Section, 0, len(projects))
	for _, proj := range projects {
		sections = append(sections, retrieval.Section{
			Text:   fmt.Sprintf("%s. %s", proj.Title, proj.Description),
			Source: fmt.Sprintf("%s: %s", sourcePrefix, proj.Title),
		})
	}
	return sections
}
