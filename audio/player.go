package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/parameter"
)

// Player mixes cues into the speaker. Every method is a no-op until Init
// succeeds, so the preview runs unchanged on machines without audio
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	master      float64
	mixer       *beep.Mixer
	spin        *beep.Ctrl
	initialized bool
	enabled     bool
	// spinning is the requested whir state, kept while muted
	spinning bool
}

// NewPlayer creates a player with the default sample rate and master volume
func NewPlayer() *Player {
	return &Player{
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		master:  parameter.MasterVolume,
		mixer:   &beep.Mixer{},
		enabled: true,
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	p.spin = &beep.Ctrl{Streamer: newVolume(NewSpinGenerator(p.rate), p.master), Paused: true}
	speaker.Play(p.mixer)
	speaker.Lock()
	p.mixer.Add(p.spin)
	speaker.Unlock()

	p.initialized = true
	log.WithField("rate", p.rate).Debug("Audio initialized")
	return nil
}

// Close silences everything and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.spin.Paused = true
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// Enabled reports whether cues are audible
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Toggle flips mute and returns the new enabled state. Muting pauses the
// whir; unmuting mid-spin resumes it
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = !p.enabled
	p.applySpin()
	return p.enabled
}

// Play mixes one cue in
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}

	s := Create(c, p.rate, p.master)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SpinStart resumes the whir loop
func (p *Player) SpinStart() {
	p.setSpin(true)
}

// SpinStop pauses the whir loop
func (p *Player) SpinStop() {
	p.setSpin(false)
}

func (p *Player) setSpin(spinning bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.spinning = spinning
	p.applySpin()
}

// applySpin syncs the whir with the requested state; caller holds p.mu
func (p *Player) applySpin() {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.spin.Paused = !p.spinning || !p.enabled
	speaker.Unlock()
}
