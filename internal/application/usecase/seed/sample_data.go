package seed

import (
	"time"

	"github.com/sammy-mbugua/portfolio/internal/domain/portfolio"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
)

type ProfileData struct {
	Name, Title, Email, Phone, Location, GithubURL, LinkedinURL, About string
}

type EducationData struct {
	Degree, Institution, Location string
	Start, End                    time.Time
}

type ExperienceData struct {
	Title, Company, Description string
	Start, End                  time.Time
	Achievements                []string
}

type CategoryData struct {
	Name   string
	Skills []string
}

type ProjectData struct {
	Title, Description, Technologies string
	Featured                         bool
	Order                            int
}

type SocialData struct {
	Platform social.Platform
	URL      string
}

// Dataset is everything the portfolio seed writes.
type Dataset struct {
	Profile          ProfileData
	Education        []EducationData
	Experience       []ExperienceData
	SkillCategories  []CategoryData
	SkillProficiency int
	Projects         []ProjectData
	SocialLinks      []SocialData
}

// SampleData is the owner's CV.
var SampleData = Dataset{
	Profile: ProfileData{
		Name:        "Sammy Gicheha Mbugua",
		Title:       "Software Developer | Business Intelligence Enthusiast | Network Specialist",
		Email:       "msammy542@gmail.com",
		Phone:       "+254 757 255 028",
		Location:    "Nairobi, Kenya",
		GithubURL:   "https://github.com/sammy-mbugua",
		LinkedinURL: "https://www.linkedin.com/in/sammymbugua-407b9533a",
		About: "A computer science professional with a strong foundation in software development, networking, " +
			"and business intelligence. Experienced in working with modern frameworks and tools like Laravel, " +
			"Livewire, Power BI, and Python, delivering reliable solutions in fast-paced, team-oriented " +
			"environments. Excellent at troubleshooting, collaborating in teams, and translating complex " +
			"problems into smart software solutions.",
	},
	Education: []EducationData{
		{
			Degree:      "Bachelor of Science in Computer Science",
			Institution: "University of Embu",
			Location:    "Embu, Kenya",
			Start:       portfolio.Date(2019, time.August, 1),
			End:         portfolio.Date(2023, time.August, 31),
		},
	},
	Experience: []ExperienceData{
		{
			Title:       "Software Developer Intern",
			Company:     "Quest Developers Company",
			Description: "Internship focused on PHP development, BI, and machine learning",
			Start:       portfolio.Date(2024, time.July, 1),
			End:         portfolio.Date(2025, time.March, 31),
			Achievements: []string{
				"Developed PHP projects using Laravel and Livewire (e.g., hover.com)",
				"Built interactive dashboards using Power BI",
				"Created machine learning models, including Swahili-English spam detection",
				"Designed frontend themes using HTML, Tailwind CSS, Alpine.js",
				"Collaborated on database migrations with MySQL",
			},
		},
		{
			Title:       "Software Engineer",
			Company:     "Nairobi Institute of Software Development",
			Description: "Full-stack development and teaching programming",
			Start:       portfolio.Date(2023, time.June, 1),
			End:         portfolio.Date(2024, time.May, 31),
			Achievements: []string{
				"Delivered full-stack development projects and taught programming (Python, Laravel, JS)",
				"Conducted software/hardware troubleshooting and maintenance",
				"Led classes in graphics design and AutoCAD",
				"Improved system stability and team development capacity",
			},
		},
		{
			Title:       "Project Developer",
			Company:     "Online Competition",
			Description: "Competitive IT project development",
			Start:       portfolio.Date(2022, time.November, 1),
			End:         portfolio.Date(2023, time.April, 30),
			Achievements: []string{
				"Co-created various IT projects in diverse languages",
				"Collaborated with team members in coding and troubleshooting",
				"Improved project management and real-world problem-solving skills",
			},
		},
		{
			Title:       "Software Developer Attachment",
			Company:     "Milestone College",
			Description: "Database development and IT instruction",
			Start:       portfolio.Date(2022, time.April, 1),
			End:         portfolio.Date(2022, time.September, 30),
			Achievements: []string{
				"Assisted in database planning and development",
				"Delivered IT instruction and technical support services",
				"Participated in Python-based software development and code reviews",
				"Designed and deployed basic websites",
			},
		},
	},
	SkillCategories: []CategoryData{
		{Name: "Programming Languages", Skills: []string{"Python", "PHP"}},
		{Name: "Frameworks & Tools", Skills: []string{"Laravel", "Livewire", "React", "Alpine.js", "Tailwind CSS", "Power BI"}},
		{Name: "Databases", Skills: []string{"MySQL"}},
		{Name: "Networking", Skills: []string{"TCP/IP", "DNS", "Subnetting", "Switching", "Routing", "Network Security"}},
		{Name: "BI & Reporting", Skills: []string{"Power BI", "Excel"}},
	},
	SkillProficiency: 85,
	Projects: []ProjectData{
		{
			Title: "PHP Laravel Web Application",
			Description: "Developed using Laravel, Livewire, Tailwind CSS, Alpine.js, HTML, MySQL. " +
				"Improved company-client communication via integrated feedback modules.",
			Technologies: "Laravel, Livewire, Tailwind CSS, Alpine.js, HTML, MySQL",
			Featured:     true,
			Order:        1,
		},
		{
			Title: "Ethereum Blockchain Platform",
			Description: "Created a decentralized platform with smart contract functionality. " +
				"Ensured secure data verification using blockchain architecture.",
			Technologies: "Ethereum, Solidity, Web3.js, Smart Contracts",
			Featured:     true,
			Order:        2,
		},
		{
			Title: "Java Game Development",
			Description: "Designed a playable, interactive game with graphics and smooth controls. " +
				"Implemented core game logic and UI feedback systems.",
			Technologies: "Java, JavaFX, Game Development",
			Featured:     true,
			Order:        3,
		},
	},
	SocialLinks: []SocialData{
		{Platform: social.PlatformGithub, URL: "https://github.com/sammy-mbugua"},
		{Platform: social.PlatformLinkedin, URL: "https://www.linkedin.com/in/sammymbugua-407b9533a"},
	},
}
