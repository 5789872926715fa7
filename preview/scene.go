// Package preview plays the reel sequencer in a terminal: a tcell scene that
// mirrors the page's visual state plus the frame and input loop around it.
package preview

import (
	"sync"
	"time"

	"github.com/lixenwraith/haa-logo/audio"
	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/particle"
	"github.com/lixenwraith/haa-logo/sequencer"
)

// Sound receives cues for scene events; *audio.Player satisfies it
type Sound interface {
	Play(c audio.Cue)
	SpinStart()
	SpinStop()
}

type reelView struct {
	names     []string
	spinning  bool
	stopped   bool
	spinStart time.Time
	stopStart time.Time
	index     int
	winner    string
	overlay   bool
	classes   map[string]time.Time
	marks     []string
}

// Scene is the terminal counterpart of the page DOM. The sequencer mutates it
// from its goroutine while the frame loop draws it from another
type Scene struct {
	mu sync.Mutex

	cfg    config.Config
	reels  []*reelView
	field  *particle.Field
	sound  Sound
	now    func() time.Time
	styles palette

	phase     sequencer.Phase
	phaseReel int
	cycle     int
}

var _ sequencer.Scene = (*Scene)(nil)

// NewScene creates a scene for the given reels. sound may be nil
func NewScene(cfg config.Config, strips [][]icon.Icon, sound Sound) *Scene {
	s := &Scene{
		cfg:    cfg,
		reels:  make([]*reelView, len(strips)),
		field:  particle.NewField(cfg.Particles.EndScale),
		sound:  sound,
		now:    time.Now,
		styles: newPalette(cfg.Visual),
	}
	for i, icons := range strips {
		s.reels[i] = &reelView{names: icon.Names(icons), classes: make(map[string]time.Time)}
	}
	return s
}

// SetClock replaces the wall clock used to stamp events and animate
func (s *Scene) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Scene) Phase(p sequencer.Phase, reel int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase, s.phaseReel = p, reel
	if p == sequencer.Starting && reel == 0 {
		s.cycle++
	}
}

func (s *Scene) Start(reel int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.reels[reel]
	v.spinning = true
	v.stopped = false
	v.spinStart = s.now()
	v.overlay = false
	v.winner = ""
	v.classes = make(map[string]time.Time)
	v.marks = nil
	s.field.Clear(reel)

	if reel == 0 && s.sound != nil {
		s.sound.SpinStart()
	}
}

func (s *Scene) Stop(reel, index, offset int, winner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.reels[reel]
	v.spinning = false
	v.stopped = true
	v.stopStart = s.now()
	v.index = index
	v.winner = winner

	if s.sound != nil {
		s.sound.Play(audio.CueStop)
		if reel == len(s.reels)-1 {
			s.sound.SpinStop()
		}
	}
}

func (s *Scene) Overlay(reel, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reels[reel].overlay = true
}

func (s *Scene) AddClass(reel, index int, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reels[reel].classes[class] = s.now()

	if s.sound == nil {
		return
	}
	switch class {
	case effect.ClassHeartbeat:
		s.sound.Play(audio.CueThump)
	case effect.ClassAlien, effect.ClassDrawSquare, effect.ClassDrawCircle:
		s.sound.Play(audio.CueChime)
	}
}

func (s *Scene) RemoveClass(reel, index int, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reels[reel].classes, class)
}

func (s *Scene) AddMark(reel, index int, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reels[reel].marks = append(s.reels[reel].marks, class)
}

func (s *Scene) Emit(reel, index int, ps []particle.Particle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.field.Add(s.now(), reel, index, ps)

	if s.sound == nil || len(ps) == 0 {
		return
	}
	if ps[0].Kind == particle.Water {
		s.sound.Play(audio.CueSplash)
	} else {
		s.sound.Play(audio.CueCrunch)
	}
}

// Winners returns the current winner of every reel, empty while spinning
func (s *Scene) Winners() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.reels))
	for i, v := range s.reels {
		out[i] = v.winner
	}
	return out
}

// HasClass reports whether reel's winner box carries class
func (s *Scene) HasClass(reel int, class string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.reels[reel].classes[class]
	return ok
}

// Particles is the number of live particles at the scene clock
func (s *Scene) Particles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	live, _ := s.field.Snapshot(s.now())
	return len(live)
}
