// Package audio synthesizes the short sound cues that accompany the terminal
// preview: reel whir, stop clack, splash, crunch, heartbeat and chime.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/haa-logo/parameter"
)

// Cue is a one-shot sound
type Cue uint8

const (
	CueStop Cue = iota
	CueSplash
	CueCrunch
	CueThump
	CueChime
)

var cueNames = [...]string{"stop", "splash", "crunch", "thump", "chime"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// CreateStopSound is the short square clack of a reel locking
func CreateStopSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.StopCueFreq, parameter.StopCueDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.StopCueDuration, parameter.StopCueAttack, parameter.StopCueRelease, rate)
	return newVolume(shaped, 0.3)
}

// CreateSplashSound is decaying noise over a low rumble for the anchor landing
func CreateSplashSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.SplashCueDuration, WaveNoise, rate)
	rumble := NewOscillator(80, parameter.SplashCueDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.25), newVolume(rumble, 0.3))
	return NewDecay(mixed, parameter.SplashCueDecay, rate)
}

// CreateCrunchSound is a fast noise burst for hammer and bite crumbs
func CreateCrunchSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.CrunchCueDuration, WaveNoise, rate)
	return NewDecay(newVolume(noise, 0.4), parameter.CrunchCueDecay, rate)
}

// CreateThumpSound is one low heartbeat
func CreateThumpSound(rate beep.SampleRate) beep.Streamer {
	tone := sineTone(parameter.ThumpCueFreq, parameter.ThumpCueDuration, rate)
	shaped := NewEnvelope(tone, parameter.ThumpCueDuration, 5*time.Millisecond, parameter.ThumpCueDuration/2, rate)
	return newVolume(shaped, 0.7)
}

// CreateChimeSound is a bell with an octave overtone for reveals and strokes
func CreateChimeSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ChimeCueDuration

	fund := sineTone(parameter.ChimeCueFreq, d, rate)
	fundShaped := NewEnvelope(fund, d, parameter.ChimeCueAttack, parameter.ChimeCueRelease, rate)

	over := sineTone(parameter.ChimeCueFreq*2, d, rate)
	overShaped := NewEnvelope(over, d, parameter.ChimeCueAttack, parameter.ChimeCueRelease/2, rate)

	return beep.Mix(newVolume(fundShaped, 0.35), newVolume(overShaped, 0.15))
}

// Create returns the streamer for c scaled by master volume, nil for unknown cues
func Create(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueStop:
		s = CreateStopSound(rate)
	case CueSplash:
		s = CreateSplashSound(rate)
	case CueCrunch:
		s = CreateCrunchSound(rate)
	case CueThump:
		s = CreateThumpSound(rate)
	case CueChime:
		s = CreateChimeSound(rate)
	default:
		return nil
	}
	return newVolume(s, master)
}

// SpinGenerator is the endless whir while reels spin: a sine sweeping
// between two frequencies once per cycle with a matching swell
type SpinGenerator struct {
	rate   beep.SampleRate
	pos    int
	cycle  int
	phase  float64
	low    float64
	span   float64
	volume float64
}

// NewSpinGenerator creates the whir loop
func NewSpinGenerator(rate beep.SampleRate) *SpinGenerator {
	return &SpinGenerator{
		rate:   rate,
		cycle:  rate.N(parameter.SpinCueCycle),
		low:    parameter.SpinCueFreqLow,
		span:   parameter.SpinCueFreqHigh - parameter.SpinCueFreqLow,
		volume: parameter.SpinCueVolume,
	}
}

func (g *SpinGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		cyclePos := float64(g.pos%g.cycle) / float64(g.cycle)
		freq := g.low + g.span*math.Sin(cyclePos*math.Pi)
		amp := g.volume * (0.5 + 0.5*math.Sin(cyclePos*math.Pi*2))

		// phase accumulates so the sweep stays continuous
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		v := amp * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *SpinGenerator) Err() error { return nil }
