package content

import "github.com/JanviSingh1712/portfolio/internal/domain/project"

// Values such as "TalwindCSS" and the Medicine_Delivery description are the
// owner's published text and are kept as written.
var projectsData = []project.Project{
	{
		ID:           "Voice-to-Visual",
		Title:        "Voice-to-Visual Notes App",
		Description:  "The Voice-to-Visual Notes App is an AI-driven productivity tool that transforms spoken input into structured digital formats like to-do lists and mind maps. Using the Web Speech API for voice recognition and GPT-4 for natural language understanding, the app intelligently interprets user speech and visually organizes the content with React Flow. Built with React.js and styled using TailwindCSS, it offers a responsive, intuitive interface, while Firebase handles authentication and real-time data storage. Deployed via Vercel, the app provides a seamless and efficient way to capture and visualize ideas hands-free.",
		Technologies: []string{"React.js", "MongoDB", "TalwindCSS", "CSS"},
		ImageURL:     ptr("/1st_work.jpg"),
		DataAIHint:   ptr("food ordering"),
	},
	{
		ID:           "Event Ticket",
		Title:        "Event Ticket Booking System",
		Description:  "The Event Ticket Booking System is a dynamic full-stack web application built using the MERN stack, designed to allow users to seamlessly browse, book, and manage tickets for various events. The platform enhances user experience by integrating AI-powered features that provide personalized event recommendations based on user preferences and behavior. Additionally, it includes a unique resale functionality, enabling users to sell their tickets in case of last-minute changes or emergencies. With React.js for the frontend, Node.js and Express.js for the backend, and MongoDB for data management, the system ensures a smooth and efficient ticketing experience supported by intelligent automation.",
		Technologies: []string{"Express.js", "React", "Node.js", "OpenAI API"},
		ImageURL:     ptr("/Event_Ticket.png"),
		DataAIHint:   ptr("virtual assistant"),
		GitHubLink:   ptr("https://github.com/JanviSingh1712/Event_Ticket_Booking_System"),
	},
	{
		ID:           "Medicine_Delivery",
		Title:        "Medicine_Delivery Ecommerce",
		Description:  "A smart coding tool that uses Google’s Gemini API to debug, correct, and generate code across multiple programming languages. Key features include debugging/fixing code, generating code from natural language, multi-language support, and real-time API integration with Gemini AI.",
		Technologies: []string{"React", "Material-UI", "Bootstrap", "MongoDB", "JavaScript", "TypeScript", "Java", "Github"},
		ImageURL:     ptr("/human.avif"),
		DataAIHint:   ptr("code assistant"),
		GitHubLink:   ptr("https://github.com/JanviSingh1712/Medicine_Delivery_System"),
	},
}

func Projects() []*project.Project {
	out := make([]*project.Project, len(projectsData))
	for i := range projectsData {
		out[i] = cloneProject(&projectsData[i])
	}
	return out
}

func cloneProject(p *project.Project) *project.Project {
	c := *p
	c.Technologies = append([]string(nil), p.Technologies...)
	c.ImageURL = clonePtr(p.ImageURL)
	c.DataAIHint = clonePtr(p.DataAIHint)
	c.GitHubLink = clonePtr(p.GitHubLink)
	c.LiveDemoLink = clonePtr(p.LiveDemoLink)
	return &c
}
