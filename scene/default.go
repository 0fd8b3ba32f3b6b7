package scene

import (
	"math"

	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/vmath"
)

// AvatarID is the target id reported for the avatar
const AvatarID = "avatar"

// Default returns the built-in portfolio museum
func Default() *Config {
	cfg := &Config{
		Artworks:           defaultArtworks(),
		Avatar:             defaultAvatar(),
		Destinations:       defaultDestinations(),
		ProximityThreshold: parameter.ProximityThreshold,
		Bounds:             DefaultBounds(),
		EyeHeight:          parameter.EyeHeight,
		MoveSpeed:          parameter.MoveSpeed,
		Spawn:              vmath.Vec3F{X: parameter.SpawnX, Y: parameter.EyeHeight, Z: parameter.SpawnZ},
		SpawnYaw:           parameter.SpawnYaw,
	}
	cfg.applyDefaults()
	return cfg
}

func defaultDestinations() []Destination {
	return []Destination{
		{Key: "home", Label: "Home", Position: vmath.Vec3F{X: 0, Y: 1.8, Z: 8}, Yaw: math.Pi},
		{Key: "experience", Label: "Experience", Position: vmath.Vec3F{X: -7.5, Y: 1.8, Z: -1.5}, Yaw: math.Pi / 2},
		{Key: "education", Label: "Education", Position: vmath.Vec3F{X: -3, Y: 1.8, Z: -6.5}, Yaw: 0},
		{Key: "projects", Label: "Projects", Position: vmath.Vec3F{X: 3, Y: 1.8, Z: -6.5}, Yaw: 0},
	}
}

func defaultAvatar() Avatar {
	return Avatar{
		ID:              AvatarID,
		Position:        vmath.Vec3F{X: 0, Y: 1, Z: 0},
		ProximityRadius: parameter.AvatarProximity,
		Bio: Bio{
			Eyebrow: "About me",
			Name:    "Data Scientist & Developer",
			Paragraphs: []string{
				"Finishing a Data Scientist master's degree, I combine academic grounding with field experience. " +
					"Through industry and supply chain work I have handled concrete subjects, from deploying generative AI " +
					"in the cloud to analysing logistics data.",
				"I like understanding what a team needs in order to build useful, reliable tools. " +
					"Versatile and used to agile methods, I am looking for an opportunity to put my technical skills to work on your projects.",
			},
		},
	}
}

func defaultArtworks() []Artwork {
	return []Artwork{
		{
			ID:        "experience",
			Title:     "Professional\nExperience",
			Label:     "Professional Experience",
			Eyebrow:   "Career",
			Position:  vmath.Vec3F{X: -11.3, Y: 2.3, Z: -1.5},
			Rotation:  vmath.Vec3F{Y: math.Pi / 2},
			Size:      Size{Width: 3.5, Height: 2.5},
			ArtColor:  "#2C4A6E",
			ArtAccent: "#5B8FB9",
			Type:      ContentExperience,
			Content: Content{
				Company:  "Airbus",
				Location: "Toulouse, France",
				Contract: "Work-study contract · 1 year 6 months",
				Roles: []Role{
					{
						Title:  "Data Analyst — Manufacturing Engineering",
						Period: "Sept. 2025 — Present",
						Tasks: []string{
							"Industrial data analysis to optimize manufacturing processes and engineering workflows.",
							"Generative AI use cases: design and deployment of LLM-based chatbots for technical documentation access.",
							"Implementation on Google Cloud Platform for data processing and AI model hosting.",
							"User needs analysis and specification of requirements.",
							"Continuous testing and improvement of AI solutions.",
							"Project execution using Agile methodology.",
						},
						Tools: []string{"GCP", "Docker", "Visual Studio Code", "Palantir Skywise"},
					},
					{
						Title:  "Data Analyst / Business Analyst — Supply Chain",
						Period: "Sept. 2024 — Sept. 2025",
						Tasks: []string{
							"Business Analyst for logistics flow projects (warehouse fill-rate monitoring, inbound forecasting with an ML model).",
							"User needs analysis and specification of requirements.",
							"Development and testing (unit, functional, non-regression).",
							"Data visualizations and dashboard creation.",
							"Agile methodology.",
						},
						Tools: []string{"SAP Hana", "SAP Logon", "Qlik Sense", "Palantir Skywise", "VersionOne"},
					},
				},
			},
		},
		{
			ID:        "education",
			Title:     "Academic\nBackground",
			Label:     "Academic Background",
			Eyebrow:   "Education",
			Position:  vmath.Vec3F{X: -3, Y: 2.3, Z: -10.5},
			Size:      Size{Width: 3.5, Height: 2.5},
			ArtColor:  "#6E4C2C",
			ArtAccent: "#C48B50",
			Type:      ContentEducation,
			Content: Content{
				Items: []EducationItem{
					{
						Period: "2024 – 2026",
						School: "Toulouse YNOV Campus",
						Degree: "Data Scientist Master (Data / AI)",
						Skills: []string{"Artificial Intelligence", "Machine Learning", "Data Science", "Deep Learning"},
					},
					{
						Period: "2020 – 2024",
						School: "Université de Toulouse",
						Degree: "Bachelor — Computer Science",
						Skills: []string{"Databases", "SQL", "SSIS", "Algorithms", "Networks"},
					},
					{
						Period: "2017 – 2020",
						School: "Lycée Pierre Bourdieu",
						Degree: "Scientific Baccalaureate",
						Skills: []string{"Python", "Project management", "Mathematics"},
					},
				},
			},
		},
		{
			ID:        "projects",
			Title:     "Personal\nProjects",
			Label:     "Personal Projects",
			Eyebrow:   "Work",
			Position:  vmath.Vec3F{X: 3, Y: 2.3, Z: -10.5},
			Size:      Size{Width: 3.5, Height: 2.5},
			ArtColor:  "#2C5E3A",
			ArtAccent: "#56A86A",
			Type:      ContentProjects,
			Content: Content{
				Projects: []Project{
					{
						Title: "Autonomous Vehicle",
						Description: "Self-driving model using computer vision and reinforcement learning. " +
							"A convolutional network trained for real-time lane, sign and obstacle detection, " +
							"simulated in a virtual environment before deployment on embedded hardware.",
					},
				},
			},
		},
		{
			ID:        "contact",
			Title:     "Contact\n& Links",
			Label:     "Contact Me",
			Eyebrow:   "Contact",
			Position:  vmath.Vec3F{X: 11.3, Y: 2.3, Z: -1.5},
			Rotation:  vmath.Vec3F{Y: -math.Pi / 2},
			Size:      Size{Width: 3.5, Height: 2.5},
			ArtColor:  "#3D2C6E",
			ArtAccent: "#8060C4",
			Type:      ContentContact,
			Content: Content{
				Intro: "Open to opportunities in data science, generative AI and full-stack development. " +
					"Get in touch to discuss a project or a collaboration.",
				Links: []Link{
					{Label: "LinkedIn", URL: "https://linkedin.com/in/your-profile", Icon: "linkedin"},
					{Label: "GitHub", URL: "https://github.com/your-profile", Icon: "github"},
				},
			},
		},
	}
}
