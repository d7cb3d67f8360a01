package defs

// DefaultFeed returns the built-in content used when no feed file is given.
func DefaultFeed() *Feed {
	return &Feed{
		Title:    "Hi, I build things that move.",
		Subtitle: "Creative developer working on real-time graphics and tooling.",
		About: "I like software that is both useful and fun, and I am always curious about how " +
			"things work behind the scenes. Most of my projects start with a small idea and turn " +
			"into a chance to learn something new.",
		Skills: []Skill{
			{Name: "Go", Percent: 90},
			{Name: "Graphics programming", Percent: 80},
			{Name: "TypeScript", Percent: 75},
			{Name: "Distributed systems", Percent: 70},
			{Name: "UI design", Percent: 60},
		},
		Projects: []Project{
			{
				Title:       "Point Field",
				Description: "A rotating volumetric point cloud that leans toward the cursor.",
				Tags:        []string{"Go", "ebiten", "3D"},
				URL:         "https://github.com/example/point-field",
			},
			{
				Title:       "Terminal Mail",
				Description: "A terminal email client with fuzzy search.",
				Tags:        []string{"Go", "TUI", "IMAP"},
				URL:         "https://github.com/example/terminal-mail",
			},
			{
				Title:       "Hex Defense",
				Description: "A tower defense game on a hexagonal grid.",
				Tags:        []string{"Go", "game", "pathfinding"},
				URL:         "https://github.com/example/hex-defense",
			},
		},
		Contacts: []Contact{
			{Channel: "Email", Display: "hello@example.com", URI: "mailto:hello@example.com"},
			{Channel: "GitHub", Display: "github.com/example", URI: "https://github.com/example"},
			{Channel: "LinkedIn", Display: "in/example", URI: "https://www.linkedin.com/in/example"},
		},
	}
}
