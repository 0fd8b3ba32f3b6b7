package vmath

// BoundsXZ is an axis-aligned rectangle on the horizontal plane
type BoundsXZ struct {
	XMin, XMax float64
	ZMin, ZMax float64
}

// Clamp clamps X and Z independently; Y is left untouched
func (b BoundsXZ) Clamp(v Vec3F) Vec3F {
	v.X = Clamp(v.X, b.XMin, b.XMax)
	v.Z = Clamp(v.Z, b.ZMin, b.ZMax)
	return v
}

// Contains reports whether v lies within the rectangle, edges inclusive
func (b BoundsXZ) Contains(v Vec3F) bool {
	return v.X >= b.XMin && v.X <= b.XMax && v.Z >= b.ZMin && v.Z <= b.ZMax
}

// Valid reports whether both ranges are non-empty
func (b BoundsXZ) Valid() bool {
	return b.XMin <= b.XMax && b.ZMin <= b.ZMax
}

func (b BoundsXZ) Width() float64 { return b.XMax - b.XMin }
func (b BoundsXZ) Depth() float64 { return b.ZMax - b.ZMin }
