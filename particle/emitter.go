package particle

import (
	"github.com/lixenwraith/haa-logo/config"
)

// Source is the randomness an emitter draws from; *math/rand.Rand satisfies it
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Emitter turns bursts into particles with randomized trajectories
type Emitter struct {
	cfg config.Particles
	rng Source
}

// NewEmitter creates an emitter bound to the particle configuration
func NewEmitter(cfg config.Particles, rng Source) *Emitter {
	return &Emitter{cfg: cfg, rng: rng}
}

// Count draws the number of particles for one burst of kind, inclusive range
func (e *Emitter) Count(kind Kind) int {
	lo, hi := e.cfg.Crumb.CountMin, e.cfg.Crumb.CountMax
	if kind == Water {
		lo, hi = e.cfg.Water.CountMin, e.cfg.Water.CountMax
	}
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo+1)
}

// Spawn creates every particle of one burst
func (e *Emitter) Spawn(b Burst) []Particle {
	spread := b.SpreadX
	if spread == 0 {
		spread = e.cfg.DefaultSpread
	}

	n := e.Count(b.Kind)
	out := make([]Particle, n)
	for i := range out {
		p := Particle{
			Kind:     b.Kind,
			X:        b.X + (e.rng.Float64()-0.5)*e.cfg.JitterX,
			Lifetime: e.cfg.Life,
		}

		switch b.Kind {
		case Water:
			w := e.cfg.Water
			// Splash rises from a surface band regardless of the origin row
			p.Y = w.BandMin + e.rng.Float64()*w.BandSpan
			angle := (e.rng.Float64() - 0.5) * w.Angle
			p.TX = angle * spread * w.SpreadScale
			p.TY = -(w.RiseMin + e.rng.Float64()*w.RiseSpan)
			p.Size = w.SizeMin + e.rng.Float64()*w.SizeSpan
		default:
			c := e.cfg.Crumb
			p.Y = b.Y + (e.rng.Float64()-0.5)*e.cfg.JitterY
			p.TX = (e.rng.Float64() - 0.5) * spread * 2
			p.TY = (c.FallMin + e.rng.Float64()*c.FallSpan) * float64(dirOrDown(b.DirY))
			p.Size = c.Size
		}

		out[i] = p
	}
	return out
}

func dirOrDown(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}
