// Package particle spawns the short-lived decorative crumbs and water drops
// used by reel effects.
package particle

import (
	"time"
)

// Kind is the visual particle type
type Kind uint8

const (
	Crumb Kind = iota
	Water
)

// String returns the name used for css classes and the runtime table
func (k Kind) String() string {
	switch k {
	case Crumb:
		return "crumb"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// MarshalText lets the kind travel as its name in the page runtime blob
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Burst describes one emission at an effect step
type Burst struct {
	Kind Kind `json:"kind"`
	// X, Y is the origin in percent of the icon box
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// DirY is +1 (down) or -1 (up); water always rises
	DirY int `json:"dir"`
	// SpreadX scales horizontal scatter
	SpreadX float64 `json:"spread"`
}

// Particle is fire-and-forget: no owner tracks it after spawn
type Particle struct {
	Kind Kind
	// X, Y is the start position in percent of the icon box
	X, Y float64
	// TX, TY is the total travel over the lifetime in px
	TX, TY float64
	// Size is the diameter in px (water) or wedge height (crumb)
	Size     float64
	Lifetime time.Duration
}

// State is a particle's appearance at some point of its life
type State struct {
	// DX, DY is the travel so far in px
	DX, DY  float64
	Opacity float64
	Scale   float64
}

// At evaluates the particle at elapsed time since spawn.
// Horizontal travel is linear, vertical eases out, opacity fades linearly and
// scale shrinks to endScale. ok is false once the lifetime is over
func (p Particle) At(elapsed time.Duration, endScale float64) (s State, ok bool) {
	if elapsed < 0 || elapsed >= p.Lifetime || p.Lifetime <= 0 {
		return State{}, false
	}
	t := float64(elapsed) / float64(p.Lifetime)
	ease := 1 - (1-t)*(1-t)*(1-t)

	return State{
		DX:      p.TX * t,
		DY:      p.TY * ease,
		Opacity: 1 - t,
		Scale:   1 - (1-endScale)*ease,
	}, true
}
