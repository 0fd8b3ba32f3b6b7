// Package host holds what the terminal and window hosts share:
// the top-down room projection and the text of overlays and HUD lines.
package host

import (
	"math"

	"github.com/lixenwraith/museum/proximity"
	"github.com/lixenwraith/museum/scene"
	"github.com/lixenwraith/museum/vmath"
)

// Projector maps the room floor onto a screen rectangle
// +X maps to the right, +Z maps downward, so the entry wall is at the bottom
type Projector struct {
	Bounds vmath.BoundsXZ
	X, Y   float64 // Top-left of the map area
	W, H   float64 // Map area size in screen units
}

// NewProjector fits bounds into the w×h area at (x, y)
func NewProjector(bounds vmath.BoundsXZ, x, y, w, h float64) Projector {
	return Projector{Bounds: bounds, X: x, Y: y, W: w, H: h}
}

// Project returns the screen position of a world point
func (p Projector) Project(v vmath.Vec3F) (float64, float64) {
	u := (v.X - p.Bounds.XMin) / p.Bounds.Width()
	w := (v.Z - p.Bounds.ZMin) / p.Bounds.Depth()
	return p.X + u*p.W, p.Y + w*p.H
}

// ProjectCell returns the integer cell containing a world point, clamped to the area
func (p Projector) ProjectCell(v vmath.Vec3F) (int, int) {
	sx, sy := p.Project(v)
	col := int(math.Floor(vmath.Clamp(sx, p.X, p.X+p.W-1)))
	row := int(math.Floor(vmath.Clamp(sy, p.Y, p.Y+p.H-1)))
	return col, row
}

// Unproject returns the floor point under a screen position
func (p Projector) Unproject(sx, sy float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: p.Bounds.XMin + (sx-p.X)/p.W*p.Bounds.Width(),
		Z: p.Bounds.ZMin + (sy-p.Y)/p.H*p.Bounds.Depth(),
	}
}

// Pick returns the id of the target drawn nearest to a screen position within radius screen units
// Artworks and the avatar are candidates; empty when nothing is close enough
func (p Projector) Pick(cfg *scene.Config, sx, sy, radius float64) string {
	best := ""
	bestD := radius
	check := func(id string, pos vmath.Vec3F) {
		px, py := p.Project(pos)
		if d := math.Hypot(px-sx, py-sy); d <= bestD {
			best, bestD = id, d
		}
	}
	check(cfg.Avatar.ID, cfg.Avatar.Position)
	for i := range cfg.Artworks {
		a := &cfg.Artworks[i]
		check(a.ID, a.Position)
	}
	return best
}

// Heading returns the screen-space unit vector of the camera's view direction
func Heading(yaw float64) (float64, float64) {
	return -math.Sin(yaw), -math.Cos(yaw)
}

var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// ArrowGlyph returns the 8-way arrow for yaw as drawn on the map
func ArrowGlyph(yaw float64) rune {
	dx, dy := Heading(yaw)
	// Screen angle clockwise from up
	a := math.Atan2(dx, -dy)
	if a < 0 {
		a += 2 * math.Pi
	}
	i := int(math.Round(a/(math.Pi/4))) % 8
	return arrows[i]
}

// ActionableID returns the id an interaction would open for a proximity result, empty when none
func ActionableID(res proximity.Result) string {
	switch res.Actionable() {
	case scene.KindAvatar:
		return scene.AvatarID
	case scene.KindArtwork:
		return res.Artwork.ID
	}
	return ""
}
