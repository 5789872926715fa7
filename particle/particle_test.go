package particle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/haa-logo/config"
)

func newTestEmitter(seed int64) *Emitter {
	return NewEmitter(config.Default().Particles, rand.New(rand.NewSource(seed)))
}

func TestSpawnCountBounds(t *testing.T) {
	e := newTestEmitter(1)
	cfg := config.Default().Particles

	tests := []struct {
		kind     Kind
		min, max int
	}{
		{Water, cfg.Water.CountMin, cfg.Water.CountMax},
		{Crumb, cfg.Crumb.CountMin, cfg.Crumb.CountMax},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			seen := make(map[int]bool)
			for i := 0; i < 1000; i++ {
				ps := e.Spawn(Burst{Kind: tt.kind, X: 50, Y: 50, DirY: 1})
				n := len(ps)
				if n < tt.min || n > tt.max {
					t.Fatalf("count %d outside [%d, %d]", n, tt.min, tt.max)
				}
				seen[n] = true
			}
			if !seen[tt.min] || !seen[tt.max] {
				t.Errorf("bounds not reached in 1000 spawns: %v", seen)
			}
		})
	}
}

func TestSpawnWaterShape(t *testing.T) {
	e := newTestEmitter(2)
	cfg := config.Default().Particles

	for _, p := range e.Spawn(Burst{Kind: Water, X: 50, Y: 90, DirY: -1, SpreadX: 40}) {
		if p.Y < cfg.Water.BandMin || p.Y > cfg.Water.BandMin+cfg.Water.BandSpan {
			t.Errorf("water Y %v outside surface band", p.Y)
		}
		if p.TY > -cfg.Water.RiseMin || p.TY < -(cfg.Water.RiseMin+cfg.Water.RiseSpan) {
			t.Errorf("water TY %v not a rise", p.TY)
		}
		if p.Size < cfg.Water.SizeMin || p.Size > cfg.Water.SizeMin+cfg.Water.SizeSpan {
			t.Errorf("water size %v out of range", p.Size)
		}
		if p.X < 50-cfg.JitterX/2 || p.X > 50+cfg.JitterX/2 {
			t.Errorf("water X %v exceeds jitter", p.X)
		}
		if p.Lifetime != cfg.Life {
			t.Errorf("lifetime %v, want %v", p.Lifetime, cfg.Life)
		}
	}
}

func TestSpawnCrumbDirection(t *testing.T) {
	e := newTestEmitter(3)

	for _, p := range e.Spawn(Burst{Kind: Crumb, X: 75, Y: 25, DirY: -1, SpreadX: 15}) {
		if p.TY >= 0 {
			t.Errorf("upward crumb has TY %v", p.TY)
		}
		if p.TX < -15 || p.TX > 15 {
			t.Errorf("crumb TX %v exceeds spread", p.TX)
		}
	}
	for _, p := range e.Spawn(Burst{Kind: Crumb, X: 92, Y: 45, DirY: 1, SpreadX: 30}) {
		if p.TY <= 0 {
			t.Errorf("downward crumb has TY %v", p.TY)
		}
	}
}

func TestSpawnDefaultSpread(t *testing.T) {
	e := newTestEmitter(4)
	spread := config.Default().Particles.DefaultSpread

	for _, p := range e.Spawn(Burst{Kind: Crumb, X: 50, Y: 50, DirY: 1}) {
		if p.TX < -spread || p.TX > spread {
			t.Errorf("TX %v exceeds default spread %v", p.TX, spread)
		}
	}
}

func TestParticleAt(t *testing.T) {
	p := Particle{TX: 10, TY: -20, Lifetime: 400 * time.Millisecond}

	s, ok := p.At(0, 0.5)
	if !ok || s.Opacity != 1 || s.Scale != 1 || s.DX != 0 {
		t.Errorf("start state = %+v, %v", s, ok)
	}

	s, ok = p.At(200*time.Millisecond, 0.5)
	if !ok {
		t.Fatal("particle expired at half life")
	}
	if s.DX != 5 {
		t.Errorf("DX = %v, want 5", s.DX)
	}
	if s.Opacity != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", s.Opacity)
	}
	if s.DY >= 0 || s.DY < -20 {
		t.Errorf("DY = %v out of range", s.DY)
	}

	if _, ok := p.At(400*time.Millisecond, 0.5); ok {
		t.Error("particle alive at end of lifetime")
	}
}

func TestFieldPrunes(t *testing.T) {
	f := NewField(0.5)
	t0 := time.Unix(0, 0)
	life := 400 * time.Millisecond

	f.Add(t0, 0, 1, []Particle{{Lifetime: life}, {Lifetime: life}})
	f.Add(t0.Add(300*time.Millisecond), 1, 1, []Particle{{Lifetime: life}})

	live, states := f.Snapshot(t0.Add(350 * time.Millisecond))
	if len(live) != 3 || len(states) != 3 {
		t.Fatalf("live = %d, want 3", len(live))
	}

	live, _ = f.Snapshot(t0.Add(450 * time.Millisecond))
	if len(live) != 1 || live[0].Reel != 1 {
		t.Fatalf("after first expiry live = %+v", live)
	}

	live, _ = f.Snapshot(t0.Add(time.Second))
	if len(live) != 0 {
		t.Errorf("field not empty: %d", len(live))
	}
}

func TestFieldClear(t *testing.T) {
	f := NewField(0.5)
	t0 := time.Unix(0, 0)
	f.Add(t0, 0, 1, []Particle{{Lifetime: time.Second}})
	f.Add(t0, 2, 1, []Particle{{Lifetime: time.Second}})

	f.Clear(0)
	if f.Len() != 1 {
		t.Errorf("Len = %d, want 1", f.Len())
	}
}
