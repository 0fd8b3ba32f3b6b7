package host

import (
	"strings"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/scene"
)

// Close hints shown under every overlay
const (
	ArtworkCloseHint = "Esc · right click · click outside to close"
	AvatarCloseHint  = "Esc · right click to close"
)

// PromptLine returns the single HUD line for p, empty when nothing applies
func PromptLine(p engine.Presentation) string {
	switch {
	case p.Phase == engine.PhaseEntry:
		return engine.EntryHint
	case p.Overlay != engine.OverlayNone:
		return ""
	case p.Prompt != nil:
		return p.Prompt.Title + "  ·  " + p.Prompt.Action
	case p.ShowResume:
		return engine.ResumeTitle
	case p.Captured:
		return engine.MoveHint + "   " + engine.CaptureHint
	}
	return ""
}

// EntryLines returns the entry screen text
func EntryLines() []string {
	return []string{
		engine.EntryEyebrow,
		"",
		engine.EntryTitle,
		"",
		"[ " + engine.EntryButton + " ]",
		"",
		engine.EntryHint,
	}
}

// ResumeLines returns the paused-exploration overlay text
func ResumeLines() []string {
	return []string{engine.ResumeTitle, "", engine.ResumeHint}
}

// PanelLines renders the open overlay as wrapped lines no wider than width
// Returns nil when no overlay is open
func PanelLines(p engine.Presentation, width int) []string {
	var b panelBuilder
	b.width = width

	switch p.Overlay {
	case engine.OverlayArtwork:
		if p.Artwork == nil {
			return nil
		}
		artworkLines(&b, p.Artwork)
		b.blank()
		b.line(ArtworkCloseHint)
	case engine.OverlayAvatar:
		if p.Bio == nil {
			return nil
		}
		b.line(strings.ToUpper(p.Bio.Eyebrow))
		b.line(p.Bio.Name)
		for _, para := range p.Bio.Paragraphs {
			b.blank()
			b.wrap(para, "")
		}
		b.blank()
		b.line(AvatarCloseHint)
	default:
		return nil
	}
	return b.lines
}

func artworkLines(b *panelBuilder, a *scene.Artwork) {
	b.line(strings.ToUpper(a.Eyebrow))
	b.line(strings.ReplaceAll(a.Title, "\n", " "))
	b.blank()

	c := &a.Content
	switch a.Type {
	case scene.ContentExperience:
		b.line(c.Company + " · " + c.Location)
		b.wrap(c.Contract, "")
		for _, r := range c.Roles {
			b.blank()
			b.wrap(r.Title, "")
			b.line(r.Period)
			for _, task := range r.Tasks {
				b.wrap(task, "  • ")
			}
			if len(r.Tools) > 0 {
				b.wrap("Tools: "+strings.Join(r.Tools, ", "), "  ")
			}
		}
	case scene.ContentEducation:
		for i, it := range c.Items {
			if i > 0 {
				b.blank()
			}
			b.line(it.Period)
			b.wrap(it.School, "")
			b.wrap(it.Degree, "")
			if len(it.Skills) > 0 {
				b.wrap(strings.Join(it.Skills, " · "), "  ")
			}
		}
	case scene.ContentProjects:
		for i, pr := range c.Projects {
			if i > 0 {
				b.blank()
			}
			b.wrap(pr.Title, "")
			b.wrap(pr.Description, "  ")
		}
	case scene.ContentContact:
		b.wrap(c.Intro, "")
		for _, l := range c.Links {
			b.wrap(l.Label+": "+l.URL, "  ")
		}
	}
}

type panelBuilder struct {
	width int
	lines []string
}

func (b *panelBuilder) line(s string) {
	b.wrap(s, "")
}

func (b *panelBuilder) blank() {
	if len(b.lines) > 0 && b.lines[len(b.lines)-1] != "" {
		b.lines = append(b.lines, "")
	}
}

// wrap splits s on spaces into lines of at most width runes; continuation lines are indented to match prefix
func (b *panelBuilder) wrap(s, prefix string) {
	if s == "" {
		return
	}
	b.lines = append(b.lines, Wrap(s, prefix, b.width)...)
}

// Wrap word-wraps s to width runes, starting with prefix; words longer than a line are split
func Wrap(s, prefix string, width int) []string {
	indent := strings.Repeat(" ", len([]rune(prefix)))
	if width <= len([]rune(prefix)) {
		return []string{prefix + s}
	}

	var out []string
	cur := []rune(prefix)
	empty := true
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > 0 {
			room := width - len(cur)
			if !empty {
				room--
			}
			switch {
			case len(w) <= room:
				if !empty {
					cur = append(cur, ' ')
				}
				cur = append(cur, w...)
				w = nil
				empty = false
			case empty:
				cur = append(cur, w[:room]...)
				w = w[room:]
				out = append(out, string(cur))
				cur = []rune(indent)
			default:
				out = append(out, string(cur))
				cur = []rune(indent)
				empty = true
			}
		}
	}
	if !empty {
		out = append(out, string(cur))
	}
	return out
}
