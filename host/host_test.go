package host

import (
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/scene"
	"github.com/lixenwraith/museum/vmath"
)

func TestProjectCorners(t *testing.T) {
	p := NewProjector(scene.DefaultBounds(), 10, 5, 42, 41)
	b := p.Bounds

	tests := []struct {
		name   string
		v      vmath.Vec3F
		sx, sy float64
	}{
		{"far left", vmath.Vec3F{X: b.XMin, Z: b.ZMin}, 10, 5},
		{"near right", vmath.Vec3F{X: b.XMax, Z: b.ZMax}, 52, 46},
	}
	for _, tt := range tests {
		sx, sy := p.Project(tt.v)
		if !vmath.ApproxEqual(sx, tt.sx, 1e-9) || !vmath.ApproxEqual(sy, tt.sy, 1e-9) {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tt.name, sx, sy, tt.sx, tt.sy)
		}
		back := p.Unproject(sx, sy)
		if !vmath.ApproxEqual(back.X, tt.v.X, 1e-9) || !vmath.ApproxEqual(back.Z, tt.v.Z, 1e-9) {
			t.Errorf("%s: unproject = %+v", tt.name, back)
		}
	}

	col, row := p.ProjectCell(vmath.Vec3F{X: b.XMax, Z: b.ZMax})
	if col != 51 || row != 45 {
		t.Errorf("cell = (%d, %d), want clamped (51, 45)", col, row)
	}
}

func TestPick(t *testing.T) {
	cfg := scene.Default()
	p := NewProjector(cfg.Bounds, 0, 0, 210, 205)

	ax, ay := p.Project(cfg.Avatar.Position)
	if got := p.Pick(cfg, ax+1, ay, 5); got != scene.AvatarID {
		t.Errorf("pick near avatar = %q", got)
	}
	ex, ey := p.Project(cfg.Artworks[0].Position)
	if got := p.Pick(cfg, ex, ey-2, 5); got != cfg.Artworks[0].ID {
		t.Errorf("pick near artwork = %q", got)
	}
	if got := p.Pick(cfg, ax+50, ay+50, 5); got != "" {
		t.Errorf("pick empty floor = %q", got)
	}
}

func TestArrowGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{math.Pi / 2, '←'},
		{math.Pi, '↓'},
		{-math.Pi / 2, '→'},
		{math.Pi / 4, '↖'},
	}
	for _, tt := range tests {
		if got := ArrowGlyph(tt.yaw); got != tt.want {
			t.Errorf("ArrowGlyph(%v) = %c, want %c", tt.yaw, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		prefix string
		width  int
		want   []string
	}{
		{"fits", "one two", "", 10, []string{"one two"}},
		{"breaks", "one two three", "", 8, []string{"one two", "three"}},
		{"bullet indent", "alpha beta gamma", "- ", 10, []string{"- alpha", "  beta", "  gamma"}},
		{"long word", "abcdefghij", "", 4, []string{"abcd", "efgh", "ij"}},
		{"narrow", "x", "long prefix", 3, []string{"long prefixx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.s, tt.prefix, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Wrap = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPanelLines(t *testing.T) {
	cfg := scene.Default()
	for i := range cfg.Artworks {
		a := &cfg.Artworks[i]
		t.Run(a.ID, func(t *testing.T) {
			lines := PanelLines(engine.Presentation{Phase: engine.PhaseModal, Overlay: engine.OverlayArtwork, Artwork: a}, 60)
			if len(lines) < 4 {
				t.Fatalf("too few lines: %q", lines)
			}
			for _, l := range lines {
				if len([]rune(l)) > 60 {
					t.Errorf("line exceeds width: %q", l)
				}
			}
			if lines[len(lines)-1] != ArtworkCloseHint {
				t.Errorf("last line = %q", lines[len(lines)-1])
			}
		})
	}

	bio := PanelLines(engine.Presentation{Phase: engine.PhaseAvatarDialog, Overlay: engine.OverlayAvatar, Bio: &cfg.Avatar.Bio}, 50)
	if len(bio) == 0 || bio[1] != cfg.Avatar.Bio.Name {
		t.Errorf("bio lines = %q", bio)
	}
	if PanelLines(engine.Presentation{Phase: engine.PhaseExploring}, 50) != nil {
		t.Error("lines without overlay")
	}
}

func TestPromptLine(t *testing.T) {
	tests := []struct {
		name string
		p    engine.Presentation
		want string
	}{
		{"entry", engine.Presentation{Phase: engine.PhaseEntry}, engine.EntryHint},
		{"resume", engine.Presentation{Phase: engine.PhaseExploring, ShowResume: true}, engine.ResumeTitle},
		{"prompt", engine.Presentation{Phase: engine.PhaseExploring, Captured: true, Prompt: &engine.Prompt{Title: "T", Action: "A"}}, "T  ·  A"},
		{"moving", engine.Presentation{Phase: engine.PhaseExploring, Captured: true}, engine.MoveHint + "   " + engine.CaptureHint},
		{"overlay", engine.Presentation{Phase: engine.PhaseModal, Overlay: engine.OverlayArtwork}, ""},
	}
	for _, tt := range tests {
		if got := PromptLine(tt.p); got != tt.want {
			t.Errorf("%s: %q, want %q", tt.name, got, tt.want)
		}
	}
}
