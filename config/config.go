// Package config holds the single immutable configuration shared by the page
// generator, the reel sequencer and the terminal preview.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/haa-logo/parameter"
)

// Config is passed by value; nothing mutates it after Load returns
type Config struct {
	Runtime   Runtime      `yaml:"runtime"`
	Visual    Visual       `yaml:"visual"`
	Timing    Timing       `yaml:"timing"`
	Particles Particles    `yaml:"particles"`
	Geometry  Geometry     `yaml:"geometry"`
	Reels     []ReelSource `yaml:"reels"`
}

// Runtime controls where assets come from and where output goes
type Runtime struct {
	AssetsDir string `yaml:"assets_dir" split_words:"true"`
	Output    string `yaml:"output" split_words:"true"`
	Open      bool   `yaml:"open" split_words:"true"`
	LogLevel  string `yaml:"log_level" split_words:"true"`
	// Watch is a cron spec for scheduled rebuilds, empty disables
	Watch string `yaml:"watch" split_words:"true"`
}

// Visual is the logo appearance
type Visual struct {
	IconSize     int     `yaml:"icon_size" split_words:"true"`
	GapSize      int     `yaml:"gap_size" split_words:"true"`
	IconScale    float64 `yaml:"icon_scale" split_words:"true"`
	Background   string  `yaml:"background" split_words:"true"`
	Icon         string  `yaml:"icon" split_words:"true"`
	Heart        string  `yaml:"heart" split_words:"true"`
	Apple        string  `yaml:"apple" split_words:"true"`
	Water        string  `yaml:"water" split_words:"true"`
	AnchorHoverY int     `yaml:"anchor_hover_y" split_words:"true"`
}

// Timing holds the sequencer stagger constants and the per-effect offsets
type Timing struct {
	StartDelay     time.Duration `yaml:"start_delay" split_words:"true"`
	SpinBase       time.Duration `yaml:"spin_base" split_words:"true"`
	StopDelay      time.Duration `yaml:"stop_delay" split_words:"true"`
	Wait           time.Duration `yaml:"wait" split_words:"true"`
	StopTransition time.Duration `yaml:"stop_transition" split_words:"true"`
	StopEasing     string        `yaml:"stop_easing" split_words:"true"`
	SpinLoop       time.Duration `yaml:"spin_loop" split_words:"true"`

	EffectDelay    time.Duration `yaml:"effect_delay" split_words:"true"`
	DropDuration   time.Duration `yaml:"drop_duration" split_words:"true"`
	SmashDuration  time.Duration `yaml:"smash_duration" split_words:"true"`
	SmashImpact    time.Duration `yaml:"smash_impact" split_words:"true"`
	SecondBite     time.Duration `yaml:"second_bite" split_words:"true"`
	BiteSnap       time.Duration `yaml:"bite_snap" split_words:"true"`
	RevealLead     time.Duration `yaml:"reveal_lead" split_words:"true"`
	RevealDuration time.Duration `yaml:"reveal_duration" split_words:"true"`
	StrokeDuration time.Duration `yaml:"stroke_duration" split_words:"true"`
	TraceInterval  time.Duration `yaml:"trace_interval" split_words:"true"`
	PulsePeriod    time.Duration `yaml:"pulse_period" split_words:"true"`
}

// Particles shapes both burst kinds
type Particles struct {
	Life          time.Duration `yaml:"life"`
	EndScale      float64       `yaml:"end_scale"`
	DefaultSpread float64       `yaml:"default_spread"`
	JitterX       float64       `yaml:"jitter_x"`
	JitterY       float64       `yaml:"jitter_y"`
	Water         Water         `yaml:"water"`
	Crumb         Crumb         `yaml:"crumb"`
}

// Water is the round splash particle
type Water struct {
	CountMin    int     `yaml:"count_min"`
	CountMax    int     `yaml:"count_max"`
	BandMin     float64 `yaml:"band_min"`
	BandSpan    float64 `yaml:"band_span"`
	Angle       float64 `yaml:"angle"`
	SpreadScale float64 `yaml:"spread_scale"`
	RiseMin     float64 `yaml:"rise_min"`
	RiseSpan    float64 `yaml:"rise_span"`
	SizeMin     float64 `yaml:"size_min"`
	SizeSpan    float64 `yaml:"size_span"`
}

// Crumb is the angular wedge particle
type Crumb struct {
	CountMin int     `yaml:"count_min"`
	CountMax int     `yaml:"count_max"`
	FallMin  float64 `yaml:"fall_min"`
	FallSpan float64 `yaml:"fall_span"`
	Size     float64 `yaml:"size"`
}

// Geometry positions the overlay shapes injected into the alien and human icons
type Geometry struct {
	AlienEyes AlienEyes `yaml:"alien_eyes"`
	Vitruvian Vitruvian `yaml:"vitruvian"`
}

// AlienEyes is mirrored: the right eye sits at 100 - LeftX
type AlienEyes struct {
	LeftX float64 `yaml:"left_x"`
	Y     float64 `yaml:"y"`
	R     float64 `yaml:"r"`
}

// RightX returns the mirrored horizontal center of the right eye
func (e AlienEyes) RightX() float64 {
	return 100 - e.LeftX
}

// Vitruvian is the circle and square traced over the human icon
type Vitruvian struct {
	CircleX float64 `yaml:"circle_x"`
	CircleY float64 `yaml:"circle_y"`
	CircleR float64 `yaml:"circle_r"`
	RectX   float64 `yaml:"rect_x"`
	RectY   float64 `yaml:"rect_y"`
	RectW   float64 `yaml:"rect_w"`
	RectH   float64 `yaml:"rect_h"`
}

// ReelSource names one reel column and the icon sub-directory it draws from
type ReelSource struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Runtime: Runtime{
			AssetsDir: parameter.DefaultAssetsDir,
			Output:    parameter.DefaultOutput,
			Open:      true,
			LogLevel:  "info",
		},
		Visual: Visual{
			IconSize:     parameter.IconSize,
			GapSize:      parameter.GapSize,
			IconScale:    parameter.IconScale,
			Background:   parameter.BackgroundColor,
			Icon:         parameter.IconColor,
			Heart:        parameter.HeartColor,
			Apple:        parameter.AppleColor,
			Water:        parameter.WaterColor,
			AnchorHoverY: parameter.AnchorHoverY,
		},
		Timing: Timing{
			StartDelay:     parameter.StartDelay,
			SpinBase:       parameter.SpinBase,
			StopDelay:      parameter.StopDelay,
			Wait:           parameter.Wait,
			StopTransition: parameter.StopTransition,
			StopEasing:     parameter.StopEasing,
			SpinLoop:       parameter.SpinLoop,
			EffectDelay:    parameter.EffectDelay,
			DropDuration:   parameter.DropDuration,
			SmashDuration:  parameter.SmashDuration,
			SmashImpact:    parameter.SmashImpact,
			SecondBite:     parameter.SecondBite,
			BiteSnap:       parameter.BiteSnap,
			RevealLead:     parameter.RevealLead,
			RevealDuration: parameter.RevealDuration,
			StrokeDuration: parameter.StrokeDuration,
			TraceInterval:  parameter.TraceInterval,
			PulsePeriod:    parameter.PulsePeriod,
		},
		Particles: Particles{
			Life:          parameter.ParticleLife,
			EndScale:      parameter.ParticleEndScale,
			DefaultSpread: parameter.ParticleDefaultSpread,
			JitterX:       parameter.ParticleJitterX,
			JitterY:       parameter.ParticleJitterY,
			Water: Water{
				CountMin:    parameter.WaterCountMin,
				CountMax:    parameter.WaterCountMax,
				BandMin:     parameter.WaterBandMin,
				BandSpan:    parameter.WaterBandSpan,
				Angle:       parameter.WaterAngle,
				SpreadScale: parameter.WaterSpreadScale,
				RiseMin:     parameter.WaterRiseMin,
				RiseSpan:    parameter.WaterRiseSpan,
				SizeMin:     parameter.WaterSizeMin,
				SizeSpan:    parameter.WaterSizeSpan,
			},
			Crumb: Crumb{
				CountMin: parameter.CrumbCountMin,
				CountMax: parameter.CrumbCountMax,
				FallMin:  parameter.CrumbFallMin,
				FallSpan: parameter.CrumbFallSpan,
				Size:     parameter.CrumbSize,
			},
		},
		Geometry: Geometry{
			AlienEyes: AlienEyes{
				LeftX: parameter.AlienEyeLeftX,
				Y:     parameter.AlienEyeY,
				R:     parameter.AlienEyeRadius,
			},
			Vitruvian: Vitruvian{
				CircleX: parameter.VitruvianCircleX,
				CircleY: parameter.VitruvianCircleY,
				CircleR: parameter.VitruvianCircleR,
				RectX:   parameter.VitruvianRectX,
				RectY:   parameter.VitruvianRectY,
				RectW:   parameter.VitruvianRectW,
				RectH:   parameter.VitruvianRectH,
			},
		},
		Reels: []ReelSource{
			{Name: "h", Dir: "h_reel"},
			{Name: "a", Dir: "a_reel"},
			{Name: "a", Dir: "a_reel"},
		},
	}
}

// CycleLength is one full sequencer loop for the configured reel count
func (c Config) CycleLength() time.Duration {
	n := time.Duration(len(c.Reels))
	t := c.Timing
	return n*t.StartDelay + t.SpinBase + n*t.StopDelay + t.Wait
}

// Validate reports every violated constraint at once
func (c Config) Validate() error {
	var errs []error

	if len(c.Reels) == 0 {
		errs = append(errs, fmt.Errorf("reels: at least one reel required"))
	}
	for i, r := range c.Reels {
		if r.Dir == "" {
			errs = append(errs, fmt.Errorf("reels[%d]: dir is empty", i))
		}
	}

	v := c.Visual
	if v.IconSize <= 0 {
		errs = append(errs, fmt.Errorf("visual.icon_size: must be > 0, got %d", v.IconSize))
	}
	if v.GapSize < 0 {
		errs = append(errs, fmt.Errorf("visual.gap_size: must be >= 0, got %d", v.GapSize))
	}
	if v.IconScale <= 0 || v.IconScale > 1 {
		errs = append(errs, fmt.Errorf("visual.icon_scale: must be in (0, 1], got %g", v.IconScale))
	}
	colors := []struct{ name, value string }{
		{"background", v.Background}, {"icon", v.Icon}, {"heart", v.Heart}, {"apple", v.Apple}, {"water", v.Water},
	}
	for _, c := range colors {
		if c.value == "" {
			errs = append(errs, fmt.Errorf("visual.%s: color is empty", c.name))
		}
	}

	t := c.Timing
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"start_delay", t.StartDelay}, {"spin_base", t.SpinBase}, {"stop_delay", t.StopDelay},
		{"wait", t.Wait}, {"effect_delay", t.EffectDelay}, {"drop_duration", t.DropDuration},
		{"smash_impact", t.SmashImpact}, {"second_bite", t.SecondBite}, {"reveal_lead", t.RevealLead},
		{"trace_interval", t.TraceInterval},
	}
	for _, d := range durations {
		if d.d < 0 {
			errs = append(errs, fmt.Errorf("timing.%s: must be >= 0, got %s", d.name, d.d))
		}
	}
	positive := []struct {
		name string
		d    time.Duration
	}{
		{"stop_transition", t.StopTransition}, {"spin_loop", t.SpinLoop}, {"smash_duration", t.SmashDuration},
		{"bite_snap", t.BiteSnap}, {"reveal_duration", t.RevealDuration}, {"stroke_duration", t.StrokeDuration},
		{"pulse_period", t.PulsePeriod},
	}
	for _, d := range positive {
		if d.d <= 0 {
			errs = append(errs, fmt.Errorf("timing.%s: must be > 0, got %s", d.name, d.d))
		}
	}
	if t.StopEasing == "" {
		errs = append(errs, fmt.Errorf("timing.stop_easing: is empty"))
	}
	if t.TraceInterval < t.StrokeDuration {
		errs = append(errs, fmt.Errorf("timing.trace_interval: %s must not be shorter than stroke_duration %s", t.TraceInterval, t.StrokeDuration))
	}
	if t.RevealLead > t.Wait {
		errs = append(errs, fmt.Errorf("timing.reveal_lead: %s exceeds wait %s", t.RevealLead, t.Wait))
	}

	p := c.Particles
	if p.Life <= 0 {
		errs = append(errs, fmt.Errorf("particles.life: must be > 0, got %s", p.Life))
	}
	if p.Water.CountMin < 1 || p.Water.CountMax < p.Water.CountMin {
		errs = append(errs, fmt.Errorf("particles.water: bad count range [%d, %d]", p.Water.CountMin, p.Water.CountMax))
	}
	if p.Crumb.CountMin < 1 || p.Crumb.CountMax < p.Crumb.CountMin {
		errs = append(errs, fmt.Errorf("particles.crumb: bad count range [%d, %d]", p.Crumb.CountMin, p.Crumb.CountMax))
	}

	return errors.Join(errs...)
}
