package content

import "github.com/JanviSingh1712/portfolio/internal/domain/certification"

// None of the certificates has a public verification link yet.
var certificationsData = []certification.Certification{
	{
		Title:               "Full Stack Web-Developer",
		IssuingOrganization: "Coursera",
		Description:         ptr("Coursera’s Full Stack course teaches frontend and backend web development to build complete applications. It covers key tools like React, Node.js, and databases."),
		Icon:                ptr(certification.DefaultIcon),
	},
	{
		Title:               "React.js, Javascript",
		IssuingOrganization: "infosys SpringBoard",
		Description:         ptr("Infosys Springboard’s React.js and JavaScript course covers core concepts of JavaScript and modern React development. It helps learners build dynamic web applications with hands-on practice."),
		Icon:                ptr(certification.DefaultIcon),
	},
	{
		Title:               "IoT Architecture and its Protocols",
		IssuingOrganization: "SWAYAM(July 2024 - Dec 2024)",
		Description:         ptr("This course explores the architecture, components, and communication protocols of the Internet of Things (IoT), enabling learners to design efficient IoT systems."),
		Icon:                ptr(certification.DefaultIcon),
	},
	{
		Title:               "Foundation of Cloud Computing",
		IssuingOrganization: "SWAYAM(IIT Kharagpur, Jan 2024 - May 2024)",
		Description:         ptr("An introductory course covering cloud models, services, and technologies, focusing on the fundamentals of cloud computing and its practical applications."),
		Icon:                ptr(certification.DefaultIcon),
	},
	{
		Title:               "Multi-Core Computer Architecture",
		IssuingOrganization: "SWAYAM(IIT Guwahati, July 2023 - Oct 2023)",
		Description:         ptr("This course provides insights into the design and functioning of multi-core processors, emphasizing parallelism, performance, and architecture-level optimizations."),
		Icon:                ptr(certification.DefaultIcon),
	},
}

func Certifications() []certification.Certification {
	out := make([]certification.Certification, len(certificationsData))
	for i, c := range certificationsData {
		c.Description = clonePtr(c.Description)
		c.Icon = clonePtr(c.Icon)
		c.URL = clonePtr(c.URL)
		out[i] = c
	}
	return out
}
