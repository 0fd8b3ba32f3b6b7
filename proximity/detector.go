// Package proximity resolves which interactive target the camera is near
package proximity

import (
	"math"

	"github.com/lixenwraith/museum/scene"
	"github.com/lixenwraith/museum/vmath"
)

// Result is the proximity state for one tick
type Result struct {
	Artwork    *scene.Artwork // Nearest artwork in range, nil when none
	NearAvatar bool
}

// ArtworkID returns the near artwork id or empty
func (r Result) ArtworkID() string {
	if r.Artwork == nil {
		return ""
	}
	return r.Artwork.ID
}

// Actionable resolves what interact would open
// The avatar takes priority whenever it is in range, even if an artwork is nearer
func (r Result) Actionable() scene.Kind {
	switch {
	case r.NearAvatar:
		return scene.KindAvatar
	case r.Artwork != nil:
		return scene.KindArtwork
	default:
		return scene.KindNone
	}
}

// Change describes which part of the identity flipped between two results
type Change struct {
	Artwork bool
	Avatar  bool
}

// Any reports whether anything changed
func (c Change) Any() bool {
	return c.Artwork || c.Avatar
}

// Detector scans the target list against the camera position every tick
// It is the only writer of its cached result
type Detector struct {
	artworks []*scene.Artwork
	avatar   *scene.Avatar
	last     Result
}

// NewDetector builds a detector over the scene's ordered artworks and avatar
// A nil avatar disables the avatar check
func NewDetector(artworks []*scene.Artwork, avatar *scene.Avatar) *Detector {
	return &Detector{artworks: artworks, avatar: avatar}
}

// Evaluate computes the result for pos without touching the cache
func (d *Detector) Evaluate(pos vmath.Vec3F) Result {
	var res Result
	best := math.Inf(1)
	for _, a := range d.artworks {
		dist := vmath.V3FDist(pos, a.Position)
		// Strict comparison keeps the first-listed artwork on ties
		if dist < a.ProximityRadius && dist < best {
			best = dist
			res.Artwork = a
		}
	}
	if d.avatar != nil {
		res.NearAvatar = vmath.V3FDist(pos, d.avatar.Position) < d.avatar.ProximityRadius
	}
	return res
}

// Update evaluates pos, stores the result and reports identity transitions
// Distance changes within the same identity report no change
func (d *Detector) Update(pos vmath.Vec3F) (Result, Change) {
	res := d.Evaluate(pos)
	change := Change{
		Artwork: res.Artwork != d.last.Artwork,
		Avatar:  res.NearAvatar != d.last.NearAvatar,
	}
	d.last = res
	return res, change
}

// Last returns the most recent result
func (d *Detector) Last() Result {
	return d.last
}

// Reset forgets the cached result so the next Update reports from a clean slate
func (d *Detector) Reset() {
	d.last = Result{}
}
