package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Shapes
const (
	// SpinCueFreqLow/High bound the looping whir sweep while reels spin
	SpinCueFreqLow  = 80.0
	SpinCueFreqHigh = 200.0
	SpinCueCycle    = 400 * time.Millisecond
	SpinCueVolume   = 0.12

	StopCueFreq     = 880.0
	StopCueDuration = 60 * time.Millisecond
	StopCueAttack   = 2 * time.Millisecond
	StopCueRelease  = 40 * time.Millisecond

	SplashCueDuration = 300 * time.Millisecond
	SplashCueDecay    = 10.0

	CrunchCueDuration = 120 * time.Millisecond
	CrunchCueDecay    = 25.0

	ThumpCueFreq     = 60.0
	ThumpCueDuration = 150 * time.Millisecond

	ChimeCueFreq     = 1320.0
	ChimeCueDuration = 250 * time.Millisecond
	ChimeCueAttack   = 5 * time.Millisecond
	ChimeCueRelease  = 150 * time.Millisecond

	// MasterVolume scales every cue (linear gain)
	MasterVolume = 0.6
)
