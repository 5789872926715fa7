package preview

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/particle"
	"github.com/lixenwraith/haa-logo/parameter"
	"github.com/lixenwraith/haa-logo/parameter/visual"
)

type palette struct {
	bg    tcell.Style
	icon  tcell.Style
	mask  tcell.Style
	frame tcell.Style
	blur  tcell.Style
	heart tcell.Style
	water tcell.Style
	apple tcell.Style
}

func newPalette(v config.Visual) palette {
	bg := visual.ParseColor(v.Background, tcell.ColorWhite)
	base := tcell.StyleDefault.Background(bg)
	return palette{
		bg:    base,
		icon:  base.Foreground(visual.ParseColor(v.Icon, tcell.ColorBlack)),
		mask:  base.Foreground(visual.ColorMask),
		frame: base.Foreground(visual.ColorFrame),
		blur:  base.Foreground(visual.ColorSpinBlur),
		heart: base.Foreground(visual.ParseColor(v.Heart, tcell.ColorRed)),
		water: base.Foreground(visual.ParseColor(v.Water, tcell.ColorBlack)),
		apple: base.Foreground(visual.ParseColor(v.Apple, tcell.ColorBlack)),
	}
}

// layout is the cell geometry of one frame
type layout struct {
	left, top int
	width     int
	rows      int
}

func (s *Scene) layout(w, h int) layout {
	n := len(s.reels)
	rw := parameter.PreviewReelWidth + 2
	total := n*rw + (n-1)*parameter.PreviewReelGap
	rows := parameter.PreviewVisibleRows * parameter.PreviewCellRows
	return layout{
		left:  max(0, (w-total)/2),
		top:   max(0, (h-rows-3)/2),
		width: rw,
		rows:  rows,
	}
}

// reelX is the first interior column of reel i
func (l layout) reelX(i int) int {
	return l.left + i*(l.width+parameter.PreviewReelGap) + 1
}

// winnerTop is the first row of the centered box
func (l layout) winnerTop() int {
	return l.top + 1 + parameter.PreviewCellRows
}

// Draw renders the scene at the scene clock; footer is appended to the status line
func (s *Scene) Draw(screen tcell.Screen, footer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, h := screen.Size()
	l := s.layout(w, h)

	screen.Fill(' ', s.styles.bg)

	for i, v := range s.reels {
		s.drawFrame(screen, l, i)
		s.drawReel(screen, l, i, v, now)
	}
	s.drawParticles(screen, l, now)
	s.drawStatus(screen, w, h, footer)
}

func (s *Scene) drawFrame(screen tcell.Screen, l layout, i int) {
	x0 := l.reelX(i) - 1
	x1 := x0 + l.width - 1
	y0 := l.top
	y1 := l.top + l.rows + 1
	st := s.styles.frame

	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, visual.FrameH, nil, st)
		screen.SetContent(x, y1, visual.FrameH, nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, visual.FrameV, nil, st)
		screen.SetContent(x1, y, visual.FrameV, nil, st)
	}
	screen.SetContent(x0, y0, visual.FrameTL, nil, st)
	screen.SetContent(x1, y0, visual.FrameTR, nil, st)
	screen.SetContent(x0, y1, visual.FrameBL, nil, st)
	screen.SetContent(x1, y1, visual.FrameBR, nil, st)
}

// position returns the strip box index at the top of the centered viewport,
// fractional while moving
func (s *Scene) position(v *reelView, now time.Time) float64 {
	count := float64(len(v.names))
	switch {
	case v.spinning:
		loop := s.cfg.Timing.SpinLoop
		if loop <= 0 {
			return 0
		}
		t := float64(now.Sub(v.spinStart)) / float64(loop)
		return (t - math.Floor(t)) * count
	case v.stopped:
		t := 1.0
		if d := s.cfg.Timing.StopTransition; d > 0 {
			t = math.Min(1, float64(now.Sub(v.stopStart))/float64(d))
		}
		return float64(v.index) * easeOutQuint(t)
	default:
		return 0
	}
}

// easeOutQuint approximates the page's stop curve closely enough for a cell grid
func easeOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

func (s *Scene) drawReel(screen tcell.Screen, l layout, i int, v *reelView, now time.Time) {
	pos := s.position(v, now)
	x := l.reelX(i)
	cellRows := float64(parameter.PreviewCellRows)

	for y := 0; y < l.rows; y++ {
		b := pos - 1 + float64(y)/cellRows
		idx := int(math.Floor(b + 1e-9))
		row := int(math.Floor((b-math.Floor(b+1e-9))*cellRows + 1e-6))
		screenY := l.top + 1 + y
		center := y/parameter.PreviewCellRows == 1

		if v.spinning {
			if row == 1 {
				s.drawLabel(screen, x, screenY, v.name(idx), s.styles.blur)
			} else {
				fillRow(screen, x, screenY, visual.GlyphSpin, s.styles.blur)
			}
			continue
		}

		winner := v.stopped && idx == v.index
		if v.overlay && !winner {
			continue
		}

		style := s.styles.icon
		if !center && !winner {
			style = s.styles.mask
		}
		if winner {
			s.drawWinnerRow(screen, x, screenY, row, v, now, style)
			continue
		}
		if row == 1 {
			s.drawLabel(screen, x, screenY, v.name(idx), style)
		}
	}
}

func (v *reelView) name(idx int) string {
	n := len(v.names)
	if n == 0 {
		return ""
	}
	return v.names[((idx%n)+n)%n]
}

func (s *Scene) drawWinnerRow(screen tcell.Screen, x, y, row int, v *reelView, now time.Time, style tcell.Style) {
	t := s.cfg.Timing
	since := func(class string) (time.Duration, bool) {
		at, ok := v.classes[class]
		if !ok {
			return 0, false
		}
		return now.Sub(at), true
	}

	labelRow := 1
	if _, ok := since(effect.ClassAnchorHover); ok {
		labelRow = 0
	}

	if row == labelRow {
		label := v.winner
		switch {
		case strings.Contains(label, "heart"):
			if d, ok := since(effect.ClassHeartbeat); ok {
				style = s.styles.heart
				if pulse(d, t.PulsePeriod) {
					style = style.Bold(true)
				}
				label = string(visual.GlyphHeart) + " " + label
			}
		case strings.Contains(label, "apple"):
			style = s.styles.apple
		}
		if d, ok := since(effect.ClassHammer); ok && d < t.SmashDuration {
			label = string(visual.GlyphHammer) + " " + label
		}
		if labelRow == 0 {
			label = string(visual.GlyphHover) + " " + label
		}
		for range v.marks {
			label += string(visual.GlyphBite)
		}
		s.drawLabel(screen, x, y, label, style)
	}

	if row == 2 {
		if d, ok := since(effect.ClassAlien); ok {
			s.drawEyes(screen, x, y, progress(d, t.RevealDuration))
		}
	}

	if d, ok := since(effect.ClassDrawSquare); ok {
		s.drawStroke(screen, x, y, row, progress(d, t.StrokeDuration), false)
	}
	if d, ok := since(effect.ClassDrawCircle); ok {
		s.drawStroke(screen, x, y, row, progress(d, t.StrokeDuration), true)
	}
}

func pulse(d, period time.Duration) bool {
	if period <= 0 {
		return false
	}
	return float64(d%period)/float64(period) < 0.15
}

func progress(d, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return math.Min(1, float64(d)/float64(total))
}

// drawEyes scales the two eye covers in from the center of each eye
func (s *Scene) drawEyes(screen tcell.Screen, x, y int, p float64) {
	g := s.cfg.Geometry.AlienEyes
	w := float64(parameter.PreviewReelWidth)
	style := s.styles.bg.Foreground(visual.ColorEyeCover).Background(visual.ParseColor(s.cfg.Visual.Icon, tcell.ColorBlack))
	r := int(math.Round(g.R / 100 * w * p / 2))
	for _, cx := range []float64{g.LeftX, g.RightX()} {
		c := x + int(math.Round(cx/100*w))
		for dx := -r; dx <= r; dx++ {
			if col := c + dx; col >= x && col < x+parameter.PreviewReelWidth {
				screen.SetContent(col, y, visual.GlyphEye, nil, style)
			}
		}
	}
}

// drawStroke traces the box outline clockwise from the top left corner up to
// fraction p of the perimeter. The circle starts at the bottom left and uses
// rounded corners
func (s *Scene) drawStroke(screen tcell.Screen, x, y, row int, p float64, round bool) {
	w := parameter.PreviewReelWidth
	h := parameter.PreviewCellRows
	path := perimeter(w, h)
	if round {
		// rotate so the stroke begins at the bottom left corner
		start := 2*(w-1) + (h - 1)
		path = append(path[start:], path[:start]...)
	}
	n := int(math.Round(p * float64(len(path))))
	style := s.styles.bg.Foreground(visual.ColorStroke)
	for _, c := range path[:n] {
		if c.row != row {
			continue
		}
		screen.SetContent(x+c.col, y, strokeRune(c, w, h, round), nil, style)
	}
}

type cell struct{ col, row int }

// perimeter lists the outline cells of a w×h box clockwise from the top left
func perimeter(w, h int) []cell {
	out := make([]cell, 0, 2*(w+h))
	for c := 0; c < w; c++ {
		out = append(out, cell{c, 0})
	}
	for r := 1; r < h; r++ {
		out = append(out, cell{w - 1, r})
	}
	for c := w - 2; c >= 0; c-- {
		out = append(out, cell{c, h - 1})
	}
	for r := h - 2; r > 0; r-- {
		out = append(out, cell{0, r})
	}
	return out
}

func strokeRune(c cell, w, h int, round bool) rune {
	switch {
	case c.col == 0 && c.row == 0:
		return pick(round, visual.RoundTL, visual.FrameTL)
	case c.col == w-1 && c.row == 0:
		return pick(round, visual.RoundTR, visual.FrameTR)
	case c.col == 0 && c.row == h-1:
		return pick(round, visual.RoundBL, visual.FrameBL)
	case c.col == w-1 && c.row == h-1:
		return pick(round, visual.RoundBR, visual.FrameBR)
	case c.row == 0 || c.row == h-1:
		return visual.FrameH
	default:
		return visual.FrameV
	}
}

func pick(cond bool, a, b rune) rune {
	if cond {
		return a
	}
	return b
}

// drawParticles maps each particle from box percent plus px travel into cells
func (s *Scene) drawParticles(screen tcell.Screen, l layout, now time.Time) {
	live, states := s.field.Snapshot(now)
	size := float64(s.cfg.Visual.IconSize)
	if size <= 0 {
		return
	}
	colPx := size / float64(parameter.PreviewReelWidth)
	rowPx := size / float64(parameter.PreviewCellRows)
	w, h := screen.Size()

	for k, p := range live {
		st := states[k]
		fx := p.X/100*float64(parameter.PreviewReelWidth) + st.DX/colPx
		fy := p.Y/100*float64(parameter.PreviewCellRows) + st.DY/rowPx
		cx := l.reelX(p.Reel) + int(math.Floor(fx))
		cy := l.winnerTop() + int(math.Floor(fy))
		if cx < 0 || cy < 0 || cx >= w || cy >= h-1 {
			continue
		}
		r, style := particleGlyph(p.Particle, st, s.styles)
		screen.SetContent(cx, cy, r, nil, style)
	}
}

func particleGlyph(p particle.Particle, st particle.State, pal palette) (rune, tcell.Style) {
	if p.Kind == particle.Water {
		if st.Opacity > 0.5 {
			return visual.GlyphWater, pal.water
		}
		return visual.GlyphDrop, pal.water
	}
	if p.TY < 0 {
		return visual.GlyphCrumbUp, pal.icon
	}
	return visual.GlyphCrumbDn, pal.icon
}

func (s *Scene) drawStatus(screen tcell.Screen, w, h int, footer string) {
	winners := make([]string, len(s.reels))
	for i, v := range s.reels {
		winners[i] = v.winner
		if winners[i] == "" {
			winners[i] = "-"
		}
	}
	line := fmt.Sprintf(" cycle %d  %s  [%s]  %s", s.cycle, s.phase, strings.Join(winners, " "), footer)
	drawText(screen, 0, h-1, w, line, s.styles.bg.Foreground(visual.ColorStatus))
}

// drawLabel centers text in a reel column, truncating runes past the width
func (s *Scene) drawLabel(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	runes := []rune(text)
	if len(runes) > parameter.PreviewReelWidth {
		runes = runes[:parameter.PreviewReelWidth]
	}
	start := x + (parameter.PreviewReelWidth-len(runes))/2
	for k, r := range runes {
		screen.SetContent(start+k, y, r, nil, style)
	}
}

func fillRow(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	for k := 0; k < parameter.PreviewReelWidth; k++ {
		screen.SetContent(x+k, y, r, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y, limit int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= limit {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
