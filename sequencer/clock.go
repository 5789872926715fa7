package sequencer

import (
	"context"
	"sync"
	"time"
)

// Clock blocks the sequencer between events
type Clock interface {
	// Sleep waits for d or until ctx is done, returning ctx.Err() in the latter case
	Sleep(ctx context.Context, d time.Duration) error
}

// WallClock sleeps in real time
type WallClock struct{}

// Sleep waits on a timer without busy looping
func (WallClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// VirtualClock returns immediately and only accumulates the requested time
type VirtualClock struct {
	mu      sync.Mutex
	elapsed time.Duration
}

// Sleep advances virtual time by d
func (c *VirtualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.elapsed += d
	c.mu.Unlock()
	return nil
}

// Elapsed is the total time slept so far
func (c *VirtualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}
