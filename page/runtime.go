package page

import (
	"html/template"

	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/parameter"
	"github.com/lixenwraith/haa-logo/particle"
)

// Runtime is the schedule the browser script replays, in milliseconds
type Runtime struct {
	Timing         RuntimeTiming    `json:"timing"`
	ReelCounts     []int            `json:"reel_counts"`
	StopRepetition int              `json:"stop_repetition"`
	Particles      RuntimeParticles `json:"particles"`
	Rules          []RuntimeRule    `json:"rules"`
	Classes        []string         `json:"classes"`
}

type RuntimeTiming struct {
	StartDelay     int64  `json:"start_delay"`
	SpinBase       int64  `json:"spin_base"`
	StopDelay      int64  `json:"stop_delay"`
	Wait           int64  `json:"wait"`
	StopTransition int64  `json:"stop_transition"`
	StopEasing     string `json:"stop_easing"`
}

type RuntimeParticles struct {
	Life          int64        `json:"life"`
	DefaultSpread float64      `json:"default_spread"`
	JitterX       float64      `json:"jitter_x"`
	JitterY       float64      `json:"jitter_y"`
	Water         RuntimeWater `json:"water"`
	Crumb         RuntimeCrumb `json:"crumb"`
}

type RuntimeWater struct {
	CountMin    int     `json:"count_min"`
	CountMax    int     `json:"count_max"`
	BandMin     float64 `json:"band_min"`
	BandSpan    float64 `json:"band_span"`
	Angle       float64 `json:"angle"`
	SpreadScale float64 `json:"spread_scale"`
	RiseMin     float64 `json:"rise_min"`
	RiseSpan    float64 `json:"rise_span"`
	SizeMin     float64 `json:"size_min"`
	SizeSpan    float64 `json:"size_span"`
}

type RuntimeCrumb struct {
	CountMin int     `json:"count_min"`
	CountMax int     `json:"count_max"`
	FallMin  float64 `json:"fall_min"`
	FallSpan float64 `json:"fall_span"`
}

type RuntimeRule struct {
	Match   string        `json:"match"`
	Kind    string        `json:"kind"`
	Overlay bool          `json:"overlay"`
	Steps   []RuntimeStep `json:"steps"`
}

type RuntimeStep struct {
	At     int64           `json:"at"`
	Anchor string          `json:"anchor"`
	Action string          `json:"action"`
	Class  string          `json:"class,omitempty"`
	Burst  *particle.Burst `json:"burst,omitempty"`
}

// NewRuntime flattens the configuration and effect table for the browser
func NewRuntime(cfg config.Config, reelCounts []int, table *effect.Table) Runtime {
	t, p := cfg.Timing, cfg.Particles

	rt := Runtime{
		Timing: RuntimeTiming{
			StartDelay:     t.StartDelay.Milliseconds(),
			SpinBase:       t.SpinBase.Milliseconds(),
			StopDelay:      t.StopDelay.Milliseconds(),
			Wait:           t.Wait.Milliseconds(),
			StopTransition: t.StopTransition.Milliseconds(),
			StopEasing:     t.StopEasing,
		},
		ReelCounts:     reelCounts,
		StopRepetition: parameter.StopRepetition,
		Particles: RuntimeParticles{
			Life:          p.Life.Milliseconds(),
			DefaultSpread: p.DefaultSpread,
			JitterX:       p.JitterX,
			JitterY:       p.JitterY,
			Water: RuntimeWater{
				CountMin:    p.Water.CountMin,
				CountMax:    p.Water.CountMax,
				BandMin:     p.Water.BandMin,
				BandSpan:    p.Water.BandSpan,
				Angle:       p.Water.Angle,
				SpreadScale: p.Water.SpreadScale,
				RiseMin:     p.Water.RiseMin,
				RiseSpan:    p.Water.RiseSpan,
				SizeMin:     p.Water.SizeMin,
				SizeSpan:    p.Water.SizeSpan,
			},
			Crumb: RuntimeCrumb{
				CountMin: p.Crumb.CountMin,
				CountMax: p.Crumb.CountMax,
				FallMin:  p.Crumb.FallMin,
				FallSpan: p.Crumb.FallSpan,
			},
		},
		Classes: table.Classes(),
	}

	for _, r := range table.Rules() {
		rr := RuntimeRule{
			Match:   r.Match,
			Kind:    r.Descriptor.Kind.String(),
			Overlay: r.Descriptor.Overlay,
			Steps:   make([]RuntimeStep, 0, len(r.Descriptor.Steps)),
		}
		for _, s := range r.Descriptor.Steps {
			rr.Steps = append(rr.Steps, RuntimeStep{
				At:     s.At.Milliseconds(),
				Anchor: s.Anchor.String(),
				Action: s.Action.String(),
				Class:  s.Class,
				Burst:  s.Burst,
			})
		}
		rt.Rules = append(rt.Rules, rr)
	}
	return rt
}

// encodeJS marshals v for inline script use. HTML escaping keeps '<' out of
// the script element
func encodeJS(v any) (template.JS, error) {
	s, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(v)
	if err != nil {
		return "", err
	}
	return template.JS(s), nil
}
