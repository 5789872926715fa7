package icon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/haa-logo/config"
)

// Reserved names that receive overlay shapes
const (
	NameAlien = "alien"
	NameHuman = "human"
)

const svgClose = "</svg>"

// augmentation appends overlay shapes to one reserved icon name
type augmentation struct {
	name    string
	overlay func(config.Geometry) string
}

var augmentations = []augmentation{
	{NameAlien, EyeCovers},
	{NameHuman, VitruvianShapes},
}

// Augment returns a copy of icons with overlay shapes injected before the
// closing svg tag of every reserved name. Other icons pass through unchanged
func Augment(icons []Icon, geom config.Geometry) []Icon {
	out := make([]Icon, len(icons))
	for i, ic := range icons {
		out[i] = ic
		for _, a := range augmentations {
			if ic.Name == a.name {
				out[i].Markup = InjectOverlay(ic.Markup, a.overlay(geom))
			}
		}
	}
	return out
}

// InjectOverlay inserts overlay before the last closing svg tag
func InjectOverlay(markup, overlay string) string {
	idx := strings.LastIndex(markup, svgClose)
	if idx < 0 {
		return markup
	}
	return markup[:idx] + overlay + markup[idx:]
}

// StripClose removes the last closing svg tag so a page can append its own shapes
func StripClose(markup string) string {
	idx := strings.LastIndex(markup, svgClose)
	if idx < 0 {
		return markup
	}
	return markup[:idx] + markup[idx+len(svgClose):]
}

// EyeCovers is the pair of white discs that close the alien's eyes, scaled to zero until revealed
func EyeCovers(g config.Geometry) string {
	e := g.AlienEyes
	return fmt.Sprintf(
		`<circle class="eye-cover left-eye" cx="%s%%" cy="%s%%" r="%s%%" fill="white" transform="scale(0)" />`+
			`<circle class="eye-cover right-eye" cx="%s%%" cy="%s%%" r="%s%%" fill="white" transform="scale(0)" />`,
		Pct(e.LeftX), Pct(e.Y), Pct(e.R),
		Pct(e.RightX()), Pct(e.Y), Pct(e.R),
	)
}

// VitruvianShapes is the circle and square traced over the human icon
func VitruvianShapes(g config.Geometry) string {
	v := g.Vitruvian
	return fmt.Sprintf(
		`<circle class="v-shape v-circle" cx="%s%%" cy="%s%%" r="%s%%" />`+
			`<rect class="v-shape v-rect" x="%s%%" y="%s%%" width="%s%%" height="%s%%" />`,
		Pct(v.CircleX), Pct(v.CircleY), Pct(v.CircleR),
		Pct(v.RectX), Pct(v.RectY), Pct(v.RectW), Pct(v.RectH),
	)
}

// Pct formats a percentage value with the shortest exact representation
func Pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
