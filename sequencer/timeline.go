package sequencer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/particle"
)

// Event is one scene call stamped with sequencer time
type Event struct {
	At     time.Duration
	Reel   int
	Index  int
	Kind   string
	Detail string
	// Particles is the burst size for emit events
	Particles int
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6dms reel=%d %s", e.At.Milliseconds(), e.Reel, e.Kind)
	if e.Detail != "" {
		b.WriteString(" " + e.Detail)
	}
	if e.Particles > 0 {
		fmt.Fprintf(&b, " n=%d", e.Particles)
	}
	return b.String()
}

// Timeline is an ordered event log
type Timeline []Event

// Filter returns the events of one kind
func (tl Timeline) Filter(kind string) Timeline {
	var out Timeline
	for _, e := range tl {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the first event of kind carrying detail
func (tl Timeline) Find(kind, detail string) (Event, bool) {
	for _, e := range tl {
		if e.Kind == kind && e.Detail == detail {
			return e, true
		}
	}
	return Event{}, false
}

// Recorder is a Scene that logs every call against a time function
type Recorder struct {
	mu     sync.Mutex
	now    func() time.Duration
	events Timeline
}

// NewRecorder stamps events with now, typically Sequencer.Now
func NewRecorder(now func() time.Duration) *Recorder {
	return &Recorder{now: now}
}

// Bind sets the time function after construction
func (r *Recorder) Bind(now func() time.Duration) {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
}

// Events returns a copy of the log
func (r *Recorder) Events() Timeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(Timeline, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.now != nil {
		e.At = r.now()
	}
	r.events = append(r.events, e)
}

func (r *Recorder) Phase(p Phase, reel int) {
	r.add(Event{Reel: reel, Kind: "phase", Detail: p.String()})
}

func (r *Recorder) Start(reel int) {
	r.add(Event{Reel: reel, Kind: "start"})
}

func (r *Recorder) Stop(reel, index, offset int, winner string) {
	r.add(Event{Reel: reel, Index: index, Kind: "stop", Detail: fmt.Sprintf("%s offset=%d", winner, offset)})
}

func (r *Recorder) Overlay(reel, index int) {
	r.add(Event{Reel: reel, Index: index, Kind: "overlay"})
}

func (r *Recorder) AddClass(reel, index int, class string) {
	r.add(Event{Reel: reel, Index: index, Kind: "add", Detail: class})
}

func (r *Recorder) RemoveClass(reel, index int, class string) {
	r.add(Event{Reel: reel, Index: index, Kind: "remove", Detail: class})
}

func (r *Recorder) AddMark(reel, index int, class string) {
	r.add(Event{Reel: reel, Index: index, Kind: "mark", Detail: class})
}

func (r *Recorder) Emit(reel, index int, ps []particle.Particle) {
	kind := ""
	if len(ps) > 0 {
		kind = ps[0].Kind.String()
	}
	r.add(Event{Reel: reel, Index: index, Kind: "emit", Detail: kind, Particles: len(ps)})
}

// Plan plays cycles on a virtual clock with winners drawn from rng and
// returns every scene event, without rendering anything
func Plan(cfg config.Config, strips [][]icon.Icon, table *effect.Table, rng Source, cycles int) (Timeline, error) {
	rec := NewRecorder(nil)
	seq, err := New(cfg, strips, table, rng, &VirtualClock{}, rec)
	if err != nil {
		return nil, err
	}
	rec.Bind(seq.Now)

	ctx := context.Background()
	for c := 0; c < cycles; c++ {
		if err := seq.RunCycle(ctx); err != nil {
			return nil, err
		}
	}
	return rec.Events(), nil
}
