// Package watch regenerates the logo on a cron schedule, picking up icon edits
// without rerunning the generator by hand.
package watch

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/page"
)

// BuildFunc performs one rebuild and reports whether the output changed
type BuildFunc func() (bool, error)

// Stats counts rebuild outcomes
type Stats struct {
	Builds int
	Writes int
	Errors int
}

// Watcher runs a BuildFunc on a schedule
type Watcher struct {
	cron  *cron.Cron
	spec  string
	build BuildFunc

	mu    sync.Mutex
	stats Stats
}

// New validates spec and registers build. Runs never overlap; a tick that
// arrives while a build is still going is skipped
func New(spec string, build BuildFunc) (*Watcher, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	w := &Watcher{cron: c, spec: spec, build: build}

	if _, err := c.AddFunc(spec, w.Trigger); err != nil {
		return nil, fmt.Errorf("watch schedule %q: %w", spec, err)
	}
	return w, nil
}

// ForConfig schedules page.Build on cfg.Runtime.Watch. Icons are reloaded on
// every tick; the config itself is fixed for the life of the watcher
func ForConfig(cfg config.Config) (*Watcher, error) {
	return New(cfg.Runtime.Watch, func() (bool, error) {
		return page.Build(cfg)
	})
}

// Trigger runs one rebuild now
func (w *Watcher) Trigger() {
	changed, err := w.build()

	w.mu.Lock()
	w.stats.Builds++
	switch {
	case err != nil:
		w.stats.Errors++
	case changed:
		w.stats.Writes++
	}
	w.mu.Unlock()

	if err != nil {
		log.WithError(err).Error("[WATCH] Rebuild failed")
		return
	}
	if changed {
		log.Info("[WATCH] Output updated")
	} else {
		log.Debug("[WATCH] Output unchanged")
	}
}

// Stats returns a copy of the rebuild counters
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run starts the schedule and blocks until ctx is done, then waits for a
// running build to finish
func (w *Watcher) Run(ctx context.Context) error {
	w.cron.Start()
	log.WithField("schedule", w.spec).Info("[WATCH] Scheduler started")

	<-ctx.Done()

	stopped := w.cron.Stop()
	<-stopped.Done()
	log.WithFields(log.Fields{
		"builds": w.Stats().Builds,
		"writes": w.Stats().Writes,
	}).Info("[WATCH] Scheduler stopped")
	return nil
}
