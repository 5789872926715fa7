package particle

import (
	"time"
)

// Live is a spawned particle with its spawn time and the box it belongs to
type Live struct {
	Particle
	Reel, Index int
	Born        time.Time
}

// Field holds live particles and drops them once their lifetime is over.
// Callers never remove particles; every Add and Snapshot prunes
type Field struct {
	live     []Live
	endScale float64
}

// NewField creates an empty field
func NewField(endScale float64) *Field {
	return &Field{endScale: endScale}
}

// Add registers particles spawned at now on the given reel box
func (f *Field) Add(now time.Time, reel, index int, ps []Particle) {
	f.prune(now)
	for _, p := range ps {
		f.live = append(f.live, Live{Particle: p, Reel: reel, Index: index, Born: now})
	}
}

// Snapshot returns live particles and their current state at now
func (f *Field) Snapshot(now time.Time) ([]Live, []State) {
	f.prune(now)
	states := make([]State, len(f.live))
	for i, l := range f.live {
		states[i], _ = l.At(now.Sub(l.Born), f.endScale)
	}
	out := make([]Live, len(f.live))
	copy(out, f.live)
	return out, states
}

// Clear drops every particle of reel
func (f *Field) Clear(reel int) {
	kept := f.live[:0]
	for _, l := range f.live {
		if l.Reel != reel {
			kept = append(kept, l)
		}
	}
	f.live = kept
}

// Len returns the number of particles currently held, expired ones included
func (f *Field) Len() int {
	return len(f.live)
}

func (f *Field) prune(now time.Time) {
	kept := f.live[:0]
	for _, l := range f.live {
		if now.Sub(l.Born) < l.Lifetime {
			kept = append(kept, l)
		}
	}
	f.live = kept
}
