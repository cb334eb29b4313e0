// Package portfolio holds the static portfolio content served by the read
// endpoints. The content lives in process memory the same way the user
// store does; editing it means editing this file and redeploying.
package portfolio

type Profile struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Bio        string   `json:"bio"`
	About      string   `json:"about"`
	Interests  string   `json:"interests"`
	QuickFacts []string `json:"quickFacts"`
}

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
}

type Data struct {
	Profile     Profile     `json:"profile"`
	Skills      []string    `json:"skills"`
	Projects    []Project   `json:"projects"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

// ProjectByID returns the project with the given ID, or false.
func (d *Data) ProjectByID(id int) (Project, bool) {
	for _, p := range d.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Default returns the built-in portfolio content.
func Default() *Data {
	return &Data{
		Profile: Profile{
			Name:      "John Doe",
			Title:     "Full Stack Developer & UI/UX Designer",
			Bio:       "I create beautiful, functional, and user-centered digital experiences that bring ideas to life.",
			About:     "I'm a passionate developer with over 5 years of experience creating digital solutions. I love turning complex problems into simple, beautiful designs.",
			Interests: "When I'm not coding, you'll find me exploring new technologies, contributing to open-source projects, or enjoying outdoor activities.",
			QuickFacts: []string{
				"🎓 Computer Science Graduate",
				"💼 5+ Years Experience",
				"🌍 Remote Work Enthusiast",
				"🚀 Always Learning",
			},
		},
		Skills: []string{
			"React", "JavaScript", "Node.js", "Python",
			"Tailwind CSS", "TypeScript", "MongoDB", "AWS",
			"Git", "Docker", "Figma", "Adobe XD",
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "E-Commerce Platform",
				Description: "Full-stack e-commerce solution with React, Node.js, and Stripe integration.",
				Tech:        []string{"React", "Node.js", "MongoDB"},
			},
			{
				ID:          2,
				Title:       "Task Management App",
				Description: "Collaborative task management tool with real-time updates and team features.",
				Tech:        []string{"React", "Firebase", "Tailwind"},
			},
			{
				ID:          3,
				Title:       "Weather Dashboard",
				Description: "Beautiful weather app with location-based forecasts and interactive maps.",
				Tech:        []string{"JavaScript", "OpenWeather API", "Chart.js"},
			},
		},
		SocialLinks: SocialLinks{
			LinkedIn: "#",
			GitHub:   "#",
			Twitter:  "#",
		},
	}
}
