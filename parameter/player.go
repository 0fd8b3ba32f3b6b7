package parameter

// Movement and room extents
const (
	// MoveSpeed is the walking speed in world units per second
	MoveSpeed = 6.0

	// EyeHeight is the pinned camera height
	EyeHeight = 1.8

	// Room extents on the horizontal plane; the far wall sits slightly asymmetric
	BoundsXMin = -10.5
	BoundsXMax = 10.5
	BoundsZMin = -10.5
	BoundsZMax = 10.0

	// Spawn pose, facing -Z toward the back wall
	SpawnX   = 0.0
	SpawnZ   = 8.0
	SpawnYaw = 0.0
)

// Proximity radii
const (
	// ProximityThreshold is the shared default artwork radius
	ProximityThreshold = 5.5

	// AvatarProximity is the avatar radius
	AvatarProximity = 3.8
)
