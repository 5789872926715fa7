package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/haa-logo/config"
)

func TestNewRejectsBadSchedule(t *testing.T) {
	if _, err := New("not a schedule", func() (bool, error) { return false, nil }); err == nil {
		t.Fatal("expected schedule parse error")
	}
}

func TestTriggerCounts(t *testing.T) {
	results := []struct {
		changed bool
		err     error
	}{
		{true, nil},
		{false, nil},
		{false, errors.New("boom")},
	}
	var i int
	w, err := New("@every 1h", func() (bool, error) {
		r := results[i]
		i++
		return r.changed, r.err
	})
	if err != nil {
		t.Fatal(err)
	}

	for range results {
		w.Trigger()
	}

	want := Stats{Builds: 3, Writes: 1, Errors: 1}
	if got := w.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestRunFiresOnSchedule(t *testing.T) {
	if testing.Short() {
		t.Skip("waits on the cron tick")
	}
	var calls atomic.Int32
	w, err := New("@every 1s", func() (bool, error) {
		calls.Add(1)
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls.Load() < 1 {
		t.Error("build never ran")
	}
}

func TestForConfigWritesOnlyOnChange(t *testing.T) {
	root := t.TempDir()
	for name, content := range map[string]string{
		"h_reel/human.svg": `<svg viewBox="0 0 10 10"><path d="M1 1"/></svg>`,
		"a_reel/alien.svg": `<svg viewBox="0 0 10 10"><path d="M3 3"/></svg>`,
	} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default()
	cfg.Runtime.AssetsDir = root
	cfg.Runtime.Output = filepath.Join(root, "logo.html")
	cfg.Runtime.Watch = "@every 1h"

	w, err := ForConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	w.Trigger()
	w.Trigger()
	if got := w.Stats(); got.Builds != 2 || got.Writes != 1 || got.Errors != 0 {
		t.Fatalf("after two identical builds Stats() = %+v", got)
	}

	extra := filepath.Join(root, "a_reel", "anchor.svg")
	if err := os.WriteFile(extra, []byte(`<svg viewBox="0 0 10 10"><path d="M4 4"/></svg>`), 0o644); err != nil {
		t.Fatal(err)
	}
	w.Trigger()
	if got := w.Stats(); got.Writes != 2 {
		t.Errorf("new icon should rewrite the output, Stats() = %+v", got)
	}
}
