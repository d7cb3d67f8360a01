// internal/defs/types.go
package defs

// Skill is one entry of the skills section.
type Skill struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"` // 0-100, trusted as given
}

// Project is one card of the projects section.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
}

// Contact is one channel of the contact section.
type Contact struct {
	Channel string `json:"channel"`
	Display string `json:"display"`
	URI     string `json:"uri"`
}

// Feed holds all inert display data the page renders.
type Feed struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	About    string    `json:"about"`
	Skills   []Skill   `json:"skills"`
	Projects []Project `json:"projects"`
	Contacts []Contact `json:"contacts"`
}
