package engine

// Phase is the application phase
// Exactly one is active; Modal and AvatarDialog are distinct leaves so at most one overlay exists
type Phase int

const (
	PhaseEntry Phase = iota
	PhaseExploring
	PhaseModal
	PhaseAvatarDialog
)

// Node names in the phase graph
const (
	nodeEntry        = "Entry"
	nodeExploring    = "Exploring"
	nodeModal        = "Modal"
	nodeAvatarDialog = "AvatarDialog"
)

func (p Phase) String() string {
	switch p {
	case PhaseEntry:
		return "entry"
	case PhaseExploring:
		return "exploring"
	case PhaseModal:
		return "modal"
	case PhaseAvatarDialog:
		return "avatar_dialog"
	default:
		return "unknown"
	}
}

// SceneVisible reports whether the room is shown
func (p Phase) SceneVisible() bool {
	return p != PhaseEntry
}

// OverlayOpen reports whether a modal or dialog is mounted
func (p Phase) OverlayOpen() bool {
	return p == PhaseModal || p == PhaseAvatarDialog
}

func phaseForNode(name string) (Phase, bool) {
	switch name {
	case nodeEntry:
		return PhaseEntry, true
	case nodeExploring:
		return PhaseExploring, true
	case nodeModal:
		return PhaseModal, true
	case nodeAvatarDialog:
		return PhaseAvatarDialog, true
	}
	return 0, false
}
