package parameter

import "time"

// Effect Timing, all relative to the reel stop event
const (
	// EffectDelay is the common post-stop delay before an effect plays
	EffectDelay = 600 * time.Millisecond

	// DropDuration is the anchor fall time from hover to rest; water splashes when it lands
	DropDuration = 200 * time.Millisecond

	// SmashDuration is the full hammer strike arc
	SmashDuration = 400 * time.Millisecond

	// SmashImpact is the offset into the strike where crumbs fly
	SmashImpact = 150 * time.Millisecond

	// SecondBite is the gap between the two apple bites
	SecondBite = 250 * time.Millisecond

	// BiteSnap is the bite mark pop-in time
	BiteSnap = 50 * time.Millisecond

	// RevealLead is how far before the global cycle end the alien eyes close
	RevealLead = 100 * time.Millisecond

	// RevealDuration is the eye cover scale-in time
	RevealDuration = 100 * time.Millisecond

	// StrokeDuration is the progressive stroke reveal time of one vitruvian outline
	StrokeDuration = 1600 * time.Millisecond

	// TraceInterval is the gap between the rectangle and the circle stroke starts
	TraceInterval = 1600 * time.Millisecond

	// PulsePeriod is one heartbeat loop
	PulsePeriod = 1200 * time.Millisecond

	// AnchorHoverY is the raised anchor position in px
	AnchorHoverY = -6
)

// Burst Origins, percent of the icon box
const (
	AnchorSplashX      = 50.0
	AnchorSplashY      = 90.0
	AnchorSplashSpread = 40.0

	HammerImpactX      = 92.0
	HammerImpactY      = 45.0
	HammerImpactSpread = 30.0

	FirstBiteX  = 75.0
	FirstBiteY  = 25.0
	SecondBiteX = 78.0
	SecondBiteY = 50.0
)
