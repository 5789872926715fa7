// Package sequencer drives the reels through their start, hold, stop and wait
// phases and fires each winner's effect steps on a generation-checked queue.
package sequencer

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/particle"
	"github.com/lixenwraith/haa-logo/reel"
)

// Sequencer is single-goroutine: Run owns every field
type Sequencer struct {
	timing config.Timing
	reels  []*reel.Reel

	table   *effect.Table
	emitter *particle.Emitter
	rng     Source
	clock   Clock
	scene   Scene

	now   time.Duration
	queue taskQueue
	seq   uint64
	cycle int
}

// New creates a sequencer over one icon list per reel
func New(cfg config.Config, strips [][]icon.Icon, table *effect.Table, rng Source, clock Clock, scene Scene) (*Sequencer, error) {
	if len(strips) == 0 {
		return nil, fmt.Errorf("sequencer: no reels")
	}
	reels := make([]*reel.Reel, len(strips))
	for i, icons := range strips {
		if len(icons) == 0 {
			return nil, fmt.Errorf("sequencer: reel %d: %w", i, icon.ErrAssetMissing)
		}
		reels[i] = reel.New(reel.NewStrip(icons), cfg.Visual.IconSize)
	}

	return &Sequencer{
		timing:  cfg.Timing,
		reels:   reels,
		table:   table,
		emitter: particle.NewEmitter(cfg.Particles, rng),
		rng:     rng,
		clock:   clock,
		scene:   scene,
	}, nil
}

// Reels exposes the reel models, read-only outside Run
func (s *Sequencer) Reels() []*reel.Reel {
	return s.reels
}

// Now is the virtual time elapsed since the first cycle started
func (s *Sequencer) Now() time.Duration {
	return s.now
}

// Cycles is the number of completed cycles
func (s *Sequencer) Cycles() int {
	return s.cycle
}

// CycleLength is one full loop for this reel count
func (s *Sequencer) CycleLength() time.Duration {
	n := time.Duration(len(s.reels))
	t := s.timing
	return n*t.StartDelay + t.SpinBase + n*t.StopDelay + t.Wait
}

// Run loops cycles until ctx is cancelled and returns ctx.Err()
func (s *Sequencer) Run(ctx context.Context) error {
	s.scene.Phase(Idle, -1)
	for {
		if err := s.RunCycle(ctx); err != nil {
			return err
		}
	}
}

// RunCycle plays exactly one cycle. Effect tasks still pending at its end
// stay queued for the next cycle, where Start invalidates them per reel
func (s *Sequencer) RunCycle(ctx context.Context) error {
	n := len(s.reels)

	for i := 0; i < n; i++ {
		s.start(i)
		if err := s.wait(ctx, s.timing.StartDelay); err != nil {
			return err
		}
	}

	s.scene.Phase(Holding, -1)
	if err := s.wait(ctx, s.timing.SpinBase); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		s.stop(i)
		if err := s.wait(ctx, s.timing.StopDelay); err != nil {
			return err
		}
	}

	s.scene.Phase(Waiting, -1)
	if err := s.wait(ctx, s.timing.Wait); err != nil {
		return err
	}

	s.cycle++
	log.WithFields(log.Fields{"cycle": s.cycle, "at": s.now}).Debug("Cycle complete")
	return nil
}

func (s *Sequencer) start(i int) {
	r := s.reels[i]
	r.Reset()
	gen := r.Spin()

	s.scene.Phase(Starting, i)
	s.scene.Start(i)
	log.WithFields(log.Fields{"reel": i, "gen": gen, "at": s.now}).Debug("Reel start")
}

func (s *Sequencer) stop(i int) {
	r := s.reels[i]
	target := s.rng.Intn(r.Strip.Count())
	index, offset := r.Stop(target)
	winner := r.Winner().Name

	s.scene.Phase(Stopping, i)
	s.scene.Stop(i, index, offset, winner)
	s.after(s.timing.StopTransition, i, "settle", r.Settle)

	desc, ok := s.table.Match(winner)
	log.WithFields(log.Fields{
		"reel":   i,
		"winner": winner,
		"effect": desc.Kind,
		"at":     s.now,
	}).Debug("Reel stop")
	if !ok {
		return
	}

	if desc.Overlay {
		s.scene.Overlay(i, index)
	}

	remaining := time.Duration(len(s.reels)-i)*s.timing.StopDelay + s.timing.Wait
	for _, ts := range desc.Schedule(remaining) {
		step := ts.Step
		s.after(ts.Delay, i, step.Action.String()+" "+step.Class, func() {
			s.apply(i, index, step)
		})
	}
}

func (s *Sequencer) apply(i, index int, step effect.Step) {
	switch step.Action {
	case effect.AddClass:
		s.scene.AddClass(i, index, step.Class)
	case effect.RemoveClass:
		s.scene.RemoveClass(i, index, step.Class)
	case effect.Mark:
		s.scene.AddMark(i, index, step.Class)
	case effect.Emit:
		if step.Burst != nil {
			s.scene.Emit(i, index, s.emitter.Spawn(*step.Burst))
		}
	}
}

// after queues fn to run d from now, bound to reel i's current generation
func (s *Sequencer) after(d time.Duration, i int, label string, fn func()) {
	s.seq++
	s.queue.push(&task{
		due:   s.now + d,
		seq:   s.seq,
		reel:  i,
		gen:   s.reels[i].Generation,
		label: label,
		run:   fn,
	})
}

// wait advances virtual time by d, firing every task due on the way
func (s *Sequencer) wait(ctx context.Context, d time.Duration) error {
	end := s.now + d
	for {
		next := s.queue.peek()
		if next == nil || next.due > end {
			break
		}
		if err := s.sleepUntil(ctx, next.due); err != nil {
			return err
		}
		t := s.queue.pop()
		if t.gen != s.reels[t.reel].Generation {
			log.WithFields(log.Fields{"reel": t.reel, "task": t.label, "gen": t.gen}).Debug("Stale task dropped")
			continue
		}
		t.run()
	}
	return s.sleepUntil(ctx, end)
}

func (s *Sequencer) sleepUntil(ctx context.Context, at time.Duration) error {
	if at > s.now {
		if err := s.clock.Sleep(ctx, at-s.now); err != nil {
			return err
		}
		s.now = at
	}
	return ctx.Err()
}
