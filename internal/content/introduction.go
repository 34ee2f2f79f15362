// Package content holds the site's hard-coded records. The literals are
// built once and every accessor returns a copy.
package content

import "github.com/JanviSingh1712/portfolio/internal/domain/introduction"

var introductionData = introduction.Introduction{
	FullName: "Janvi Singh",
	Role:     "Software Developer",
	Education: introduction.Education{
		Degree:         "BE. in Computer Science",
		University:     "Chandigarh University",
		GraduationYear: "2022-2026",
	},
	Bio:             "I'm a Full-Stack Developer skilled in the MERN stack, passionate about creating sleek and responsive web applications. I'm currently pursuing a BTech in Computer Science at Chandigarh University and have built projects like an AI-powered notes app and a ticket booking system. I also hold certifications in React.js, JavaScript, IoT, and Cloud Computing. Let's connect!",
	ProfileImageURL: ptr("/Profile_Picture.jpg"),
	LinkedInURL:     ptr("https://www.linkedin.com/in/janvi-singh1708/"),
	GitHubURL:       ptr("https://github.com/JanviSingh1712"),
}

func Introduction() *introduction.Introduction {
	in := introductionData
	in.ProfileImageURL = clonePtr(in.ProfileImageURL)
	in.LinkedInURL = clonePtr(in.LinkedInURL)
	in.GitHubURL = clonePtr(in.GitHubURL)
	return &in
}

func ptr(s string) *string { return &s }

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
