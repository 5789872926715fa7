package sequencer

import (
	"fmt"

	"github.com/lixenwraith/haa-logo/particle"
)

// Phase is the sequencer state
type Phase uint8

const (
	Idle Phase = iota
	Starting
	Holding
	Stopping
	Waiting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Holding:
		return "holding"
	case Stopping:
		return "stopping"
	case Waiting:
		return "waiting"
	default:
		return fmt.Sprintf("phase(%d)", p)
	}
}

// Scene receives every visual mutation the sequencer makes. Calls arrive from
// the sequencer goroutine only; implementations rendering elsewhere must lock
type Scene interface {
	// Phase reports a state transition; reel is -1 for Holding and Waiting
	Phase(p Phase, reel int)
	// Start clears the reel's effect classes, marks and particles, snaps it
	// to the top and begins the spin loop
	Start(reel int)
	// Stop begins the eased landing on box index at offset px
	Stop(reel, index, offset int, winner string)
	// Overlay lifts box index above the reel mask
	Overlay(reel, index int)
	AddClass(reel, index int, class string)
	RemoveClass(reel, index int, class string)
	// AddMark appends a decoration element with class to box index
	AddMark(reel, index int, class string)
	Emit(reel, index int, ps []particle.Particle)
}

// Source is the injected randomness; *math/rand.Rand satisfies it
type Source interface {
	Intn(n int) int
	Float64() float64
}
