package visual

import (
	"github.com/gdamore/tcell/v2"
)

// Terminal preview colors that have no counterpart in the logo configuration
var (
	ColorMask     = tcell.NewRGBColor(170, 170, 170) // boxes above and below the viewport
	ColorFrame    = tcell.NewRGBColor(120, 120, 120)
	ColorStatus   = tcell.NewRGBColor(90, 90, 90)
	ColorSpinBlur = tcell.NewRGBColor(140, 140, 140)
	ColorEyeCover = tcell.ColorWhite
	ColorStroke   = tcell.NewRGBColor(40, 40, 40)
	ColorHammer   = tcell.NewRGBColor(110, 80, 40)
	ColorSoundOn  = tcell.NewRGBColor(30, 140, 30)
	ColorSoundOff = tcell.NewRGBColor(170, 40, 40)
)

// ParseColor resolves a css hex or W3C color name, falling back to def
func ParseColor(name string, def tcell.Color) tcell.Color {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return def
	}
	return c
}
