package preview

import (
	"context"
	"fmt"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/audio"
	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/parameter"
	"github.com/lixenwraith/haa-logo/sequencer"
)

// Options tune a preview run
type Options struct {
	// Seed feeds the winner selection; equal seeds replay equal winners
	Seed int64
	// Sound is optional; nil runs silent
	Sound *audio.Player
	// Table overrides the default effect table
	Table *effect.Table
	// Source replaces the seeded winner source when set
	Source sequencer.Source
}

// Run drives the sequencer on the wall clock and draws the scene on screen
// until the user quits or ctx is done. The screen must be initialized; the
// caller finalizes it
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config, strips [][]icon.Icon, opts Options) error {
	var sound Sound
	if opts.Sound != nil {
		sound = opts.Sound
	}
	table := opts.Table
	if table == nil {
		table = effect.Default(cfg.Timing)
	}

	scene := NewScene(cfg, strips, sound)
	var rng sequencer.Source = rand.New(rand.NewSource(opts.Seed))
	if opts.Source != nil {
		rng = opts.Source
	}
	seq, err := sequencer.New(cfg, strips, table, rng, sequencer.WallClock{}, scene)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		// Report panics through done so the caller can restore the terminal
		defer func() {
			if r := recover(); r != nil {
				log.WithField("stack", string(debug.Stack())).Error("preview sequencer panicked")
				done <- fmt.Errorf("sequencer panic: %v", r)
			}
		}()
		done <- seq.Run(ctx)
	}()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.PreviewFrameInterval) // ~60 FPS
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			if err != nil && ctx.Err() == nil {
				return err
			}
			log.WithField("cycles", seq.Cycles()).Debug("preview sequencer stopped")
			return nil

		case ev := <-events:
			if !handleInput(screen, ev, opts.Sound) {
				cancel()
			}

		case <-ticker.C:
			scene.Draw(screen, footer(opts.Sound))
			screen.Show()
		}
	}
}

// handleInput returns false when the user asked to quit
func handleInput(screen tcell.Screen, ev tcell.Event, sound *audio.Player) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'm', 'M':
				if sound != nil {
					on := sound.Toggle()
					log.WithField("enabled", on).Debug("sound toggled")
				}
			}
		}

	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

func footer(sound *audio.Player) string {
	switch {
	case sound == nil:
		return "[q] quit"
	case sound.Enabled():
		return "[m] sound on  [q] quit"
	default:
		return "[m] sound off  [q] quit"
	}
}
