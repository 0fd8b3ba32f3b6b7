package engine

import (
	"github.com/lixenwraith/museum/proximity"
	"github.com/lixenwraith/museum/scene"
)

// OverlayKind selects which overlay component a host mounts
type OverlayKind uint8

const (
	OverlayNone OverlayKind = iota
	OverlayArtwork
	OverlayAvatar
)

// Prompt is the HUD interaction hint
type Prompt struct {
	Title  string // Artwork label or avatar heading
	Action string
}

// Presentation is the outbound view model hosts render each frame
type Presentation struct {
	Phase    Phase
	Overlay  OverlayKind
	Artwork  *scene.Artwork // Set with OverlayArtwork
	Bio      *scene.Bio     // Set with OverlayAvatar
	Captured bool

	// Prompt is nil unless exploring with capture and something is actionable
	Prompt *Prompt

	// ShowResume asks for the "click to resume" overlay
	ShowResume bool

	// Highlight is the id of the artwork in range, for frame glow
	Highlight string

	// NearAvatar drives the avatar idle animation cue
	NearAvatar bool
}

// HUD texts
const (
	PromptAvatarTitle  = "Introduction"
	PromptAvatarAction = "E  Talk to the avatar  (or click)"
	PromptArtAction    = "E  Press to view  (or click)"

	ResumeTitle = "Click in the scene to resume exploring"
	ResumeHint  = "Z Q S D · Move   Mouse · Look   E · Interact   Tab · Release mouse"
	CaptureHint = "Esc · Unlock"
	MoveHint    = "Z Q S D · Move   Mouse · Look"

	EntryEyebrow = "Interactive Portfolio · Data Science & AI"
	EntryTitle   = "Virtual Museum"
	EntryButton  = "Enter the museum"
	EntryHint    = "Click to capture the mouse · ZQSD to move"
)

// Presentation derives the current view model
func (m *Museum) Presentation() Presentation {
	p := Presentation{
		Phase:      m.phase,
		Captured:   m.view.Captured(),
		Highlight:  m.prox.ArtworkID(),
		NearAvatar: m.prox.NearAvatar,
	}

	switch m.phase {
	case PhaseModal:
		if m.openArtwork != nil {
			p.Overlay = OverlayArtwork
			p.Artwork = m.openArtwork
		}
	case PhaseAvatarDialog:
		p.Overlay = OverlayAvatar
		p.Bio = &m.scene.Avatar.Bio
	case PhaseExploring:
		p.ShowResume = !p.Captured
		if p.Captured {
			p.Prompt = promptFor(m.prox)
		}
	}
	return p
}

func promptFor(res proximity.Result) *Prompt {
	switch res.Actionable() {
	case scene.KindAvatar:
		return &Prompt{Title: PromptAvatarTitle, Action: PromptAvatarAction}
	case scene.KindArtwork:
		title := res.Artwork.Label
		if title == "" {
			title = res.Artwork.Title
		}
		return &Prompt{Title: title, Action: PromptArtAction}
	}
	return nil
}
