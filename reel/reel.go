package reel

import (
	"fmt"

	"github.com/lixenwraith/haa-logo/icon"
)

// State is the reel spin phase
type State uint8

const (
	Idle State = iota
	Spinning
	Stopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	case Stopping:
		return "stopping"
	default:
		return fmt.Sprintf("state(%d)", s)
	}
}

// Reel is one column. Generation increments on every Spin so effect tasks
// scheduled for an older spin can recognise themselves as stale
type Reel struct {
	Strip      Strip
	IconSize   int
	Offset     int
	State      State
	Target     int
	Generation uint64
}

// New creates an idle reel at offset zero
func New(strip Strip, iconSize int) *Reel {
	return &Reel{Strip: strip, IconSize: iconSize}
}

// Reset snaps the reel back to the top without animation
func (r *Reel) Reset() {
	r.Offset = 0
	r.State = Idle
}

// Spin starts a new generation of motion
func (r *Reel) Spin() uint64 {
	r.Generation++
	r.State = Spinning
	return r.Generation
}

// Stop lands on target and returns the box index and offset
func (r *Reel) Stop(target int) (index, offset int) {
	r.Target = target
	r.State = Stopping
	index = r.Strip.StopIndex(target)
	offset = r.Strip.StopOffset(target, r.IconSize)
	r.Offset = offset
	return index, offset
}

// Settle marks the stop transition finished
func (r *Reel) Settle() {
	if r.State == Stopping {
		r.State = Idle
	}
}

// Winner is the icon visible at the current offset
func (r *Reel) Winner() icon.Icon {
	return r.Strip.At(r.Strip.IndexAt(r.Offset, r.IconSize))
}
