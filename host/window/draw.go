package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/host"
)

// Debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

var (
	colorBackdrop = color.RGBA{0x12, 0x12, 0x16, 0xff}
	colorFloor    = color.RGBA{0x2a, 0x26, 0x22, 0xff}
	colorWall     = color.RGBA{0xc8, 0xc4, 0xbc, 0xff}
	colorAvatar   = color.RGBA{0xe8, 0xc0, 0x50, 0xff}
	colorCamera   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorPanel    = color.RGBA{0x10, 0x10, 0x14, 0xe8}
	colorShade    = color.RGBA{0x00, 0x00, 0x00, 0x90}
	colorHUD      = color.RGBA{0x1c, 0x2c, 0x4c, 0xe0}
)

type rectF struct {
	x, y, w, h float64
}

func (r rectF) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type layout struct {
	proj  host.Projector
	panel rectF
}

func (g *Game) computeLayout() layout {
	b := g.m.Scene().Bounds
	ratio := b.Width() / b.Depth()

	aw := float64(g.w) - 40
	ah := float64(g.h) - 3*glyphH - 40
	mh := ah
	mw := mh * ratio
	if mw > aw {
		mw = aw
		mh = mw / ratio
	}
	mx := (float64(g.w) - mw) / 2
	my := 2*glyphH + (ah-mh)/2
	return layout{proj: host.NewProjector(b, mx, my, mw, mh)}
}

// Draw renders the top-down room, overlays and HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	if g.m == nil {
		return
	}
	p := g.m.Presentation()
	g.lay = g.computeLayout()

	if p.Phase == engine.PhaseEntry {
		g.drawBox(screen, host.EntryLines(), colorPanel)
		return
	}

	g.drawRoom(screen, p)
	pose := g.m.Pose()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s · %s   x %5.1f  z %5.1f  yaw %4.0f°",
		engine.EntryTitle, p.Phase, pose.Position.X, pose.Position.Z, pose.Yaw*180/math.Pi), 8, 4)

	if g.opts.Debug && g.opts.Registry != nil {
		for i, line := range g.opts.Registry.Lines() {
			ebitenutil.DebugPrintAt(screen, line, g.w-28*glyphW, 2*glyphH+i*glyphH)
		}
	}

	switch {
	case p.Overlay != engine.OverlayNone:
		vector.DrawFilledRect(screen, 0, 0, float32(g.w), float32(g.h), colorShade, false)
		cols := min(g.w/glyphW-6, 90)
		g.lay.panel = g.drawBox(screen, host.PanelLines(p, cols), colorPanel)
	case p.ShowResume:
		g.drawBox(screen, host.ResumeLines(), colorPanel)
	}

	if line := host.PromptLine(p); line != "" {
		y := float32(g.h - glyphH - 8)
		vector.DrawFilledRect(screen, 0, y-4, float32(g.w), glyphH+8, colorHUD, false)
		ebitenutil.DebugPrintAt(screen, line, 8, int(y))
	}
}

func (g *Game) drawRoom(screen *ebiten.Image, p engine.Presentation) {
	proj := g.lay.proj
	cfg := g.m.Scene()

	vector.DrawFilledRect(screen, float32(proj.X), float32(proj.Y), float32(proj.W), float32(proj.H), colorFloor, false)
	vector.StrokeRect(screen, float32(proj.X), float32(proj.Y), float32(proj.W), float32(proj.H), 3, colorWall, false)

	for i, d := range cfg.Destinations {
		x, y := proj.Project(d.Position)
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(i+1), int(x)-glyphW/2, int(y)-glyphH/2)
	}

	for i := range cfg.Artworks {
		a := &cfg.Artworks[i]
		x, y := proj.Project(a.Position)
		x = math.Max(proj.X, math.Min(x, proj.X+proj.W))
		y = math.Max(proj.Y, math.Min(y, proj.Y+proj.H))
		c := accent(a.ArtAccent)
		vector.DrawFilledRect(screen, float32(x)-8, float32(y)-8, 16, 16, c, true)
		if a.ID == p.Highlight {
			vector.StrokeRect(screen, float32(x)-12, float32(y)-12, 24, 24, 2, colorCamera, true)
			ebitenutil.DebugPrintAt(screen, a.Label, int(x)-len(a.Label)*glyphW/2, int(y)+14)
		}
	}

	ax, ay := proj.Project(cfg.Avatar.Position)
	r := float32(proj.W / cfg.Bounds.Width() * 0.6)
	vector.DrawFilledCircle(screen, float32(ax), float32(ay), r, colorAvatar, true)
	if p.NearAvatar {
		vector.StrokeCircle(screen, float32(ax), float32(ay), r+6, 2, colorAvatar, true)
	}

	pose := g.m.Pose()
	cx, cy := proj.Project(pose.Position)
	hx, hy := host.Heading(pose.Yaw)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 6, colorCamera, true)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+hx*24), float32(cy+hy*24), 2, colorCamera, true)
}

// drawBox draws centered text lines on a panel and returns its rectangle
func (g *Game) drawBox(screen *ebiten.Image, lines []string, bg color.Color) rectF {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	bw := float64(width*glyphW + 32)
	bh := float64(len(lines)*glyphH + 24)
	r := rectF{(float64(g.w) - bw) / 2, (float64(g.h) - bh) / 2, bw, bh}

	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, colorWall, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(r.x)+16, int(r.y)+12+i*glyphH)
	}
	return r
}

// accent parses an artwork accent color; unknown names fall back to the wall color
func accent(s string) color.Color {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return colorWall
	}
	r, g, b := c.RGB()
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}
}
