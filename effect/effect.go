// Package effect maps a winning icon name to the timed visual actions that
// play after its reel stops.
package effect

import (
	"time"

	"github.com/lixenwraith/haa-logo/particle"
)

// Kind names the effect family of a descriptor
type Kind uint8

const (
	None Kind = iota
	Drop
	Pulse
	Smash
	Bite
	Reveal
	Trace
)

var kindNames = [...]string{"none", "drop", "pulse", "smash", "bite", "reveal", "trace"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Anchor is the reference point a step's At is measured from
type Anchor uint8

const (
	// AnchorStop is the reel's own stop event
	AnchorStop Anchor = iota
	// AnchorCycleEnd is the end of the whole sequencer cycle; At is usually negative
	AnchorCycleEnd
)

func (a Anchor) String() string {
	if a == AnchorCycleEnd {
		return "cycle_end"
	}
	return "stop"
}

// Action is what a step does to the winning icon box
type Action uint8

const (
	AddClass Action = iota
	RemoveClass
	// Mark appends a decoration element (bite mark) to the box
	Mark
	// Emit spawns a particle burst in the box
	Emit
)

var actionNames = [...]string{"add", "remove", "mark", "emit"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Step is one timed action
type Step struct {
	At     time.Duration
	Anchor Anchor
	Action Action
	// Class is the css class for AddClass, RemoveClass and Mark
	Class string
	// Burst is set for Emit
	Burst *particle.Burst
}

// Descriptor is everything an effect does. Overlay lifts the winning box above
// the reel mask as soon as the reel stops
type Descriptor struct {
	Kind    Kind
	Overlay bool
	Steps   []Step
}

// Timed is a step resolved to a delay from the stop event
type Timed struct {
	Delay time.Duration
	Step  Step
}

// Schedule resolves every step against the stop event. untilCycleEnd is the
// time left from this stop to the end of the cycle. Result is ordered by delay
// with ties kept in declaration order
func (d Descriptor) Schedule(untilCycleEnd time.Duration) []Timed {
	out := make([]Timed, 0, len(d.Steps))
	for _, s := range d.Steps {
		delay := s.At
		if s.Anchor == AnchorCycleEnd {
			delay = untilCycleEnd + s.At
		}
		if delay < 0 {
			delay = 0
		}
		out = append(out, Timed{Delay: delay, Step: s})
	}

	// Insertion sort keeps equal delays stable; step lists are a handful long
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Delay < out[j-1].Delay; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Classes returns every class a descriptor may apply, for cleanup on restart
func (d Descriptor) Classes() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range d.Steps {
		if s.Class == "" || seen[s.Class] {
			continue
		}
		seen[s.Class] = true
		out = append(out, s.Class)
	}
	return out
}
