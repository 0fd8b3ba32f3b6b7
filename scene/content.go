package scene

// Content is the payload shown in an artwork modal
// Only the fields relevant to the artwork's ContentType are populated
type Content struct {
	// experience
	Company  string `yaml:"company,omitempty"`
	Location string `yaml:"location,omitempty"`
	Contract string `yaml:"contract,omitempty"`
	Roles    []Role `yaml:"roles,omitempty"`

	// education
	Items []EducationItem `yaml:"items,omitempty"`

	// projects
	Projects []Project `yaml:"projects,omitempty"`

	// contact
	Intro string `yaml:"intro,omitempty"`
	Links []Link `yaml:"links,omitempty"`
}

type Role struct {
	Title  string   `yaml:"title"`
	Period string   `yaml:"period"`
	Tasks  []string `yaml:"tasks"`
	Tools  []string `yaml:"tools"`
}

type EducationItem struct {
	Period string   `yaml:"period"`
	School string   `yaml:"school"`
	Degree string   `yaml:"degree"`
	Skills []string `yaml:"skills"`
}

type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

// Bio is the avatar dialog text; paragraphs are rendered separately
type Bio struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Name       string   `yaml:"name"`
	Paragraphs []string `yaml:"paragraphs"`
}
