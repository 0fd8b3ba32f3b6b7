package term

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/host"
)

var (
	styleBase     = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCamera   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleAvatar   = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	stylePanel    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	stylePanelHdr = stylePanel.Bold(true)
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout is recomputed every frame and kept for click hit tests
type layout struct {
	valid bool
	proj  host.Projector
	mapR  rect
	panel rect
}

func (h *Host) computeLayout(w, hgt int) layout {
	b := h.m.Scene().Bounds
	ratio := b.Width() / b.Depth()

	debugW := 0
	if h.opts.Debug {
		debugW = 28
	}
	aw := w - 2 - debugW
	ah := hgt - 5
	if aw < 8 || ah < 4 {
		return layout{}
	}

	// Cells are about twice as tall as wide
	mh := ah
	mw := int(float64(mh) * 2 * ratio)
	if mw > aw {
		mw = aw
		mh = int(float64(mw) / (2 * ratio))
	}
	mx := 1 + (aw-mw)/2
	my := 2 + (ah-mh)/2

	return layout{
		valid: true,
		proj:  host.NewProjector(b, float64(mx), float64(my), float64(mw), float64(mh)),
		mapR:  rect{mx, my, mw, mh},
	}
}

func (h *Host) draw() {
	s := h.screen
	s.Clear()
	w, hgt := s.Size()
	p := h.m.Presentation()

	h.layout = h.computeLayout(w, hgt)

	if p.Phase == engine.PhaseEntry {
		h.drawCentered(host.EntryLines(), w, hgt)
		s.Show()
		return
	}

	h.drawHeader(w)
	if h.layout.valid {
		h.drawMap(p)
		h.drawLegend(w, hgt)
	}
	if h.opts.Debug && h.opts.Registry != nil {
		h.drawDebug(w)
	}

	switch {
	case p.Overlay != engine.OverlayNone:
		h.drawPanel(host.PanelLines(p, min(w-6, 70)), w, hgt)
	case p.ShowResume:
		h.drawCentered(host.ResumeLines(), w, hgt)
	}

	if line := host.PromptLine(p); line != "" {
		fill(s, 0, hgt-1, w, styleHUD)
		drawText(s, 1, hgt-1, w-2, line, styleHUD)
	}
	s.Show()
}

func (h *Host) drawHeader(w int) {
	pose := h.m.Pose()
	left := engine.EntryTitle + " · " + h.m.Phase().String()
	right := fmt.Sprintf("x %5.1f  z %5.1f  yaw %4.0f°", pose.Position.X, pose.Position.Z, pose.Yaw*180/math.Pi)
	drawText(h.screen, 1, 0, w-2, left, styleBase.Bold(true))
	if len(right)+len(left)+4 < w {
		drawText(h.screen, w-len([]rune(right))-1, 0, len(right), right, styleDim)
	}
}

func (h *Host) drawMap(p engine.Presentation) {
	s := h.screen
	l := h.layout
	r := l.mapR
	cfg := h.m.Scene()

	box(s, rect{r.x - 1, r.y - 1, r.w + 2, r.h + 2}, styleWall)

	for i, d := range cfg.Destinations {
		col, row := l.proj.ProjectCell(d.Position)
		s.SetContent(col, row, rune('1'+i%9), nil, styleDim)
	}

	for i := range cfg.Artworks {
		a := &cfg.Artworks[i]
		col, row := l.proj.ProjectCell(a.Position)
		st := styleBase.Foreground(tcell.GetColor(a.ArtAccent))
		if a.ID == p.Highlight {
			st = st.Reverse(true)
			label := a.Label
			lx := col - len([]rune(label))/2
			lx = max(r.x, min(lx, r.x+r.w-len([]rune(label))))
			ly := row + 1
			if ly >= r.y+r.h {
				ly = row - 1
			}
			drawText(s, lx, ly, r.w, label, styleBase.Foreground(tcell.GetColor(a.ArtAccent)))
		}
		s.SetContent(col, row, '▣', nil, st)
	}

	col, row := l.proj.ProjectCell(cfg.Avatar.Position)
	st := styleAvatar
	if p.NearAvatar {
		st = st.Reverse(true)
	}
	s.SetContent(col, row, '☺', nil, st)

	pose := h.m.Pose()
	col, row = l.proj.ProjectCell(pose.Position)
	s.SetContent(col, row, host.ArrowGlyph(pose.Yaw), nil, styleCamera)
}

func (h *Host) drawDebug(w int) {
	x := w - 27
	for i, line := range h.opts.Registry.Lines() {
		if i+2 >= h.layout.mapR.y+h.layout.mapR.h {
			break
		}
		drawText(h.screen, x, i+2, 26, line, styleDim)
	}
}

// drawPanel draws an overlay box and records it for backdrop hit tests
func (h *Host) drawPanel(lines []string, w, hgt int) {
	pw := min(w-2, 74)
	ph := min(len(lines)+2, hgt-2)
	r := rect{(w - pw) / 2, (hgt - ph) / 2, pw, ph}
	h.layout.panel = r

	for y := r.y; y < r.y+r.h; y++ {
		fill(h.screen, r.x, y, r.w, stylePanel)
	}
	box(h.screen, r, stylePanel)

	visible := r.h - 2
	for i, line := range lines {
		if i >= visible {
			drawText(h.screen, r.x+2, r.y+r.h-2, r.w-4, "…", stylePanel)
			break
		}
		st := stylePanel
		if i < 2 {
			st = stylePanelHdr
		}
		drawText(h.screen, r.x+2, r.y+1+i, r.w-4, line, st)
	}
}

func (h *Host) drawCentered(lines []string, w, hgt int) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	r := rect{(w - width - 4) / 2, (hgt - len(lines) - 2) / 2, width + 4, len(lines) + 2}
	for y := r.y; y < r.y+r.h; y++ {
		fill(h.screen, r.x, y, r.w, stylePanel)
	}
	box(h.screen, r, stylePanel)
	for i, l := range lines {
		x := r.x + (r.w-len([]rune(l)))/2
		drawText(h.screen, x, r.y+1+i, r.w-2, l, stylePanelHdr)
	}
}

func drawText(s tcell.Screen, x, y, maxW int, text string, st tcell.Style) {
	i := 0
	for _, r := range text {
		if i >= maxW {
			return
		}
		s.SetContent(x+i, y, r, nil, st)
		i++
	}
}

func fill(s tcell.Screen, x, y, w int, st tcell.Style) {
	for i := 0; i < w; i++ {
		s.SetContent(x+i, y, ' ', nil, st)
	}
}

func box(s tcell.Screen, r rect, st tcell.Style) {
	x1, y1 := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < x1; x++ {
		s.SetContent(x, r.y, '─', nil, st)
		s.SetContent(x, y1, '─', nil, st)
	}
	for y := r.y + 1; y < y1; y++ {
		s.SetContent(r.x, y, '│', nil, st)
		s.SetContent(x1, y, '│', nil, st)
	}
	s.SetContent(r.x, r.y, '┌', nil, st)
	s.SetContent(x1, r.y, '┐', nil, st)
	s.SetContent(r.x, y1, '└', nil, st)
	s.SetContent(x1, y1, '┘', nil, st)
}

func (h *Host) drawLegend(w, hgt int) {
	x := 1
	for i, d := range h.m.Scene().Destinations {
		label := keyLabel(i, d.Label)
		if x+len([]rune(label)) >= w {
			break
		}
		drawText(h.screen, x, hgt-2, w-x, label, styleDim)
		x += len([]rune(label)) + 3
	}
}

// keyLabel renders a destination hint like "1 Home"
func keyLabel(slot int, label string) string {
	return strconv.Itoa(slot+1) + " " + label
}
