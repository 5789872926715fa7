package visual

// Reel frame
const (
	FrameH  = '─'
	FrameV  = '│'
	FrameTL = '┌'
	FrameTR = '┐'
	FrameBL = '└'
	FrameBR = '┘'

	// Rounded corners replace the square ones once the circle stroke runs
	RoundTL = '╭'
	RoundTR = '╮'
	RoundBL = '╰'
	RoundBR = '╯'
)

// Effect glyphs
const (
	GlyphSpin    = '░'
	GlyphWater   = '•'
	GlyphDrop    = '·'
	GlyphCrumbUp = '▴'
	GlyphCrumbDn = '▾'
	GlyphBite    = '◗'
	GlyphEye     = '●'
	GlyphHammer  = '⚒'
	GlyphHeart   = '♥'
	GlyphHover   = '↑'
)
