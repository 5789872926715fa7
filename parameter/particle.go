package parameter

import "time"

// Particle Lifetime
const (
	// ParticleLife is the fade-and-shrink time after which a particle is removed
	ParticleLife = 400 * time.Millisecond

	// ParticleEndScale is the particle scale at the end of its life
	ParticleEndScale = 0.5

	// ParticleDefaultSpread is the horizontal spread when an effect does not set one
	ParticleDefaultSpread = 15.0
)

// Water Particles
const (
	WaterCountMin = 20
	WaterCountMax = 30

	// WaterBandMin/Span is the vertical start band (percent) simulating a surface splash
	WaterBandMin  = 60.0
	WaterBandSpan = 30.0

	// WaterAngle scales the narrow random launch angle
	WaterAngle = 2.5

	// WaterSpreadScale multiplies the effect spread for the horizontal travel
	WaterSpreadScale = 1.3

	// WaterRiseMin/Span is the upward travel in px
	WaterRiseMin  = 11.0
	WaterRiseSpan = 4.0

	// WaterSizeMin/Span is the drop diameter in px
	WaterSizeMin  = 2.0
	WaterSizeSpan = 5.0
)

// Crumb Particles
const (
	CrumbCountMin = 3
	CrumbCountMax = 6

	// CrumbFallMin/Span is the vertical travel in px, signed by the burst direction
	CrumbFallMin  = 10.0
	CrumbFallSpan = 20.0

	// CrumbSize is the fixed wedge height in px
	CrumbSize = 4.0
)

// Start Jitter, percent of the icon box
const (
	ParticleJitterX = 10.0
	ParticleJitterY = 5.0
)
