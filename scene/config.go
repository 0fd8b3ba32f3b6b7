package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/vmath"
)

// Config is the read-only scene definition consumed by the core
type Config struct {
	Artworks     []Artwork     `yaml:"artworks"`
	Avatar       Avatar        `yaml:"avatar"`
	Destinations []Destination `yaml:"destinations"`

	// ProximityThreshold is the default radius for artworks without their own
	ProximityThreshold float64 `yaml:"proximity_threshold"`

	Bounds    vmath.BoundsXZ `yaml:"bounds"`
	EyeHeight float64        `yaml:"eye_height"`
	MoveSpeed float64        `yaml:"move_speed"`

	Spawn    vmath.Vec3F `yaml:"spawn"`
	SpawnYaw float64     `yaml:"spawn_yaw"`
}

// LoadFile reads a YAML scene definition
// Omitted tunables fall back to parameter defaults; artworks inherit the shared radius
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML scene data, applies defaults and validates
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ProximityThreshold == 0 {
		c.ProximityThreshold = parameter.ProximityThreshold
	}
	if c.Bounds == (vmath.BoundsXZ{}) {
		c.Bounds = DefaultBounds()
	}
	if c.EyeHeight == 0 {
		c.EyeHeight = parameter.EyeHeight
	}
	if c.MoveSpeed == 0 {
		c.MoveSpeed = parameter.MoveSpeed
	}
	if c.Avatar.ProximityRadius == 0 {
		c.Avatar.ProximityRadius = parameter.AvatarProximity
	}
	if c.Avatar.ID == "" {
		c.Avatar.ID = AvatarID
	}
	for i := range c.Artworks {
		if c.Artworks[i].ProximityRadius == 0 {
			c.Artworks[i].ProximityRadius = c.ProximityThreshold
		}
	}
	if c.Spawn == (vmath.Vec3F{}) {
		c.Spawn = vmath.Vec3F{X: parameter.SpawnX, Z: parameter.SpawnZ}
		c.SpawnYaw = parameter.SpawnYaw
	}
	c.Spawn.Y = c.EyeHeight
}

// Validate checks structural invariants the core relies on
func (c *Config) Validate() error {
	if !c.Bounds.Valid() {
		return fmt.Errorf("scene bounds inverted: %+v", c.Bounds)
	}
	if c.MoveSpeed <= 0 {
		return errors.New("scene move_speed must be positive")
	}
	if c.Avatar.ProximityRadius <= 0 {
		return errors.New("avatar proximity_radius must be positive")
	}

	seen := make(map[string]struct{}, len(c.Artworks)+1)
	seen[c.Avatar.ID] = struct{}{}
	for i := range c.Artworks {
		a := &c.Artworks[i]
		if a.ID == "" {
			return fmt.Errorf("artwork %d: missing id", i)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("artwork %q: duplicate id", a.ID)
		}
		seen[a.ID] = struct{}{}
		if a.ProximityRadius <= 0 {
			return fmt.Errorf("artwork %q: proximity radius must be positive", a.ID)
		}
	}

	for i, d := range c.Destinations {
		if d.Key == "" {
			return fmt.Errorf("destination %d: missing key", i)
		}
		if !c.Bounds.Contains(d.Position) {
			return fmt.Errorf("destination %q: position outside bounds", d.Key)
		}
	}
	return nil
}

// Artwork returns the artwork with the given id
func (c *Config) Artwork(id string) (*Artwork, bool) {
	for i := range c.Artworks {
		if c.Artworks[i].ID == id {
			return &c.Artworks[i], true
		}
	}
	return nil, false
}

// Destination returns the teleport slot at a zero-based index
func (c *Config) Destination(slot int) (Destination, bool) {
	if slot < 0 || slot >= len(c.Destinations) {
		return Destination{}, false
	}
	return c.Destinations[slot], true
}

// DefaultBounds returns the room extents
func DefaultBounds() vmath.BoundsXZ {
	return vmath.BoundsXZ{
		XMin: parameter.BoundsXMin,
		XMax: parameter.BoundsXMax,
		ZMin: parameter.BoundsZMin,
		ZMax: parameter.BoundsZMax,
	}
}

// ArtworkRefs returns pointers to the artworks in list order
func (c *Config) ArtworkRefs() []*Artwork {
	refs := make([]*Artwork, len(c.Artworks))
	for i := range c.Artworks {
		refs[i] = &c.Artworks[i]
	}
	return refs
}
