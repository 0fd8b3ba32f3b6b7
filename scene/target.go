package scene

import "github.com/lixenwraith/museum/vmath"

// Kind discriminates interactive targets
type Kind uint8

const (
	KindNone Kind = iota
	KindArtwork
	KindAvatar
)

func (k Kind) String() string {
	switch k {
	case KindArtwork:
		return "artwork"
	case KindAvatar:
		return "avatar"
	}
	return "none"
}

// Target is the part of an interactive object the core cares about
type Target interface {
	TargetID() string
	TargetPosition() vmath.Vec3F
	Radius() float64
	Kind() Kind
}

// ContentType selects how an artwork's payload is presented
type ContentType string

const (
	ContentExperience ContentType = "experience"
	ContentEducation  ContentType = "education"
	ContentProjects   ContentType = "projects"
	ContentContact    ContentType = "contact"
)

// Artwork is a framed panel on a wall that opens a content modal
type Artwork struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Label   string `yaml:"label"`
	Eyebrow string `yaml:"eyebrow"`

	Position vmath.Vec3F `yaml:"position"`
	Rotation vmath.Vec3F `yaml:"rotation"`
	Size     Size        `yaml:"size"`

	ArtColor  string `yaml:"art_color"`
	ArtAccent string `yaml:"art_accent"`

	Type    ContentType `yaml:"type"`
	Content Content     `yaml:"content"`

	// ProximityRadius of 0 inherits Config.ProximityThreshold
	ProximityRadius float64 `yaml:"proximity_radius,omitempty"`
}

func (a *Artwork) TargetID() string            { return a.ID }
func (a *Artwork) TargetPosition() vmath.Vec3F { return a.Position }
func (a *Artwork) Radius() float64             { return a.ProximityRadius }
func (a *Artwork) Kind() Kind                  { return KindArtwork }

// Size is a frame's width and height in world units
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Avatar is the singleton character that opens the bio dialog
type Avatar struct {
	ID              string      `yaml:"id"`
	Position        vmath.Vec3F `yaml:"position"`
	ProximityRadius float64     `yaml:"proximity_radius"`
	Bio             Bio         `yaml:"bio"`
}

func (a *Avatar) TargetID() string            { return a.ID }
func (a *Avatar) TargetPosition() vmath.Vec3F { return a.Position }
func (a *Avatar) Radius() float64             { return a.ProximityRadius }
func (a *Avatar) Kind() Kind                  { return KindAvatar }

// Destination is a teleport slot; slot order maps to digit keys 1..N
type Destination struct {
	Key      string      `yaml:"key"`
	Label    string      `yaml:"label"`
	Position vmath.Vec3F `yaml:"position"`
	Yaw      float64     `yaml:"yaw"`
}
