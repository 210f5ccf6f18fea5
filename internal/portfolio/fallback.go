package portfolio

// Fallback returns the built-in minimal portfolio served when the remote
// document cannot be fetched. It carries just enough for the assistant to
// introduce the subject; project and experience lists are empty.
func Fallback() *Document {
	return &Document{
		Hero: &Hero{
			Intro: "Robotic Vision Engineer & LLMOps Specialist",
		},
		Profile: &Profile{
			Intro: "Building intelligent robotic systems with advanced computer vision and deploying production-ready LLM solutions.",
		},
		Projects:   &Projects{},
		Experience: []Experience{},
		Skills:     []string{},
	}
}
