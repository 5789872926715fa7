package parameter

// Alien Eye Covers, percent of the svg viewport
// The right eye mirrors the left one around the vertical center
const (
	AlienEyeLeftX  = 29.5
	AlienEyeY      = 60.5
	AlienEyeRadius = 18.0
)

// Vitruvian Guides, percent of the svg viewport
const (
	VitruvianCircleX = 50.0
	VitruvianCircleY = 50.5
	VitruvianCircleR = 55.0

	VitruvianRectX = 2.0
	VitruvianRectY = 8.0
	VitruvianRectW = 100.5
	VitruvianRectH = 92.0
)
