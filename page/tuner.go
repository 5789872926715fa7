package page

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/asset"
	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/parameter"
)

// Tuner selects one of the manual tuning pages
type Tuner uint8

const (
	AlienTuner Tuner = iota
	HumanTuner
	MotionTuner
)

var tunerNames = map[string]Tuner{
	"alien":  AlienTuner,
	"human":  HumanTuner,
	"motion": MotionTuner,
}

// ParseTuner maps a page name to its Tuner
func ParseTuner(name string) (Tuner, error) {
	t, ok := tunerNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown tuner page %q (want alien, human or motion)", name)
	}
	return t, nil
}

func (t Tuner) String() string {
	switch t {
	case AlienTuner:
		return "alien"
	case HumanTuner:
		return "human"
	default:
		return "motion"
	}
}

// Output is the default file name of the page
func (t Tuner) Output() string {
	switch t {
	case AlienTuner:
		return parameter.AlienTunerOutput
	case HumanTuner:
		return parameter.HumanTunerOutput
	default:
		return parameter.HumanMotionOutput
	}
}

// Icon is the icon the page works on
func (t Tuner) Icon() string {
	if t == AlienTuner {
		return icon.NameAlien
	}
	return icon.NameHuman
}

type tunerData struct {
	Title   string
	Class   string
	Style   template.CSS
	Markup  template.HTML
	Scale   bool
	Groups  []fieldGroup
	Runtime template.JS
	Script  template.JS
}

type fieldGroup struct {
	Name   string
	Fields []field
}

type field struct {
	ID, Label, Key string
	Min, Max, Step float64
	Value          float64
	Mirror         string
	targets        []tunerTarget
}

type tunerRuntime struct {
	Section string       `json:"section"`
	Fields  []tunerField `json:"fields"`
	Scaled  []string     `json:"scaled"`
}

type tunerField struct {
	ID      string        `json:"id"`
	Key     string        `json:"key"`
	Targets []tunerTarget `json:"targets"`
}

type tunerTarget struct {
	El     string `json:"el"`
	Attr   string `json:"attr"`
	Mirror bool   `json:"mirror,omitempty"`
}

// RenderAlienTuner builds the mirrored eye cover tuner over the alien icon
func RenderAlienTuner(cfg config.Config, alien icon.Icon) ([]byte, error) {
	e := cfg.Geometry.AlienEyes
	markup := icon.StripClose(alien.Markup) +
		fmt.Sprintf(`<circle id="eye-left" class="test-eye" cx="%s%%" cy="%s%%" r="%s%%" />`,
			icon.Pct(e.LeftX), icon.Pct(e.Y), icon.Pct(e.R)) +
		fmt.Sprintf(`<circle id="eye-right" class="test-eye" cx="%s%%" cy="%s%%" r="%s%%" />`,
			icon.Pct(e.RightX()), icon.Pct(e.Y), icon.Pct(e.R)) +
		"</svg>"

	both := func(attr string) []tunerTarget {
		return []tunerTarget{{El: "eye-left", Attr: attr}, {El: "eye-right", Attr: attr}}
	}
	groups := []fieldGroup{{Name: "Eye covers (right eye mirrors)", Fields: []field{
		{ID: "lx", Label: "Left eye X", Key: "left_x", Min: 0, Max: 50, Step: 0.5, Value: e.LeftX,
			Mirror:  fmt.Sprint(e.RightX()),
			targets: []tunerTarget{{El: "eye-left", Attr: "cx"}, {El: "eye-right", Attr: "cx", Mirror: true}}},
		{ID: "ly", Label: "Y", Key: "y", Min: 0, Max: 100, Step: 0.5, Value: e.Y, targets: both("cy")},
		{ID: "lr", Label: "Radius", Key: "r", Min: 0, Max: 50, Step: 0.5, Value: e.R, targets: both("r")},
	}}}

	return renderTuner(tunerData{
		Title:  "Alien Eye Tuner",
		Class:  "alien",
		Markup: template.HTML(markup),
		Scale:  true,
		Groups: groups,
	}, "alien_eyes", []string{"eye-left", "eye-right"})
}

// RenderHumanTuner builds the vitruvian circle and rectangle tuner
func RenderHumanTuner(cfg config.Config, human icon.Icon) ([]byte, error) {
	v := cfg.Geometry.Vitruvian
	markup := icon.StripClose(human.Markup) +
		fmt.Sprintf(`<circle id="v-circle" class="v-shape" cx="%s%%" cy="%s%%" r="%s%%" />`,
			icon.Pct(v.CircleX), icon.Pct(v.CircleY), icon.Pct(v.CircleR)) +
		fmt.Sprintf(`<rect id="v-rect" class="v-shape v-rect" x="%s%%" y="%s%%" width="%s%%" height="%s%%" />`,
			icon.Pct(v.RectX), icon.Pct(v.RectY), icon.Pct(v.RectW), icon.Pct(v.RectH)) +
		"</svg>"

	one := func(el, attr string) []tunerTarget {
		return []tunerTarget{{El: el, Attr: attr}}
	}
	groups := []fieldGroup{
		{Name: "Circle", Fields: []field{
			{ID: "cx", Label: "Center X", Key: "circle_x", Min: 0, Max: 100, Step: 0.5, Value: v.CircleX, targets: one("v-circle", "cx")},
			{ID: "cy", Label: "Center Y", Key: "circle_y", Min: 0, Max: 100, Step: 0.5, Value: v.CircleY, targets: one("v-circle", "cy")},
			{ID: "r", Label: "Radius", Key: "circle_r", Min: 0, Max: 100, Step: 0.5, Value: v.CircleR, targets: one("v-circle", "r")},
		}},
		{Name: "Rectangle", Fields: []field{
			{ID: "rx", Label: "Left", Key: "rect_x", Min: -50, Max: 50, Step: 0.25, Value: v.RectX, targets: one("v-rect", "x")},
			{ID: "ry", Label: "Top", Key: "rect_y", Min: -50, Max: 50, Step: 0.25, Value: v.RectY, targets: one("v-rect", "y")},
			{ID: "rw", Label: "Width", Key: "rect_w", Min: 0, Max: 200, Step: 0.5, Value: v.RectW, targets: one("v-rect", "width")},
			{ID: "rh", Label: "Height", Key: "rect_h", Min: 0, Max: 200, Step: 0.5, Value: v.RectH, targets: one("v-rect", "height")},
		}},
	}

	return renderTuner(tunerData{
		Title:  "Vitruvian Tuner",
		Class:  "human",
		Markup: template.HTML(markup),
		Groups: groups,
	}, "vitruvian", nil)
}

func renderTuner(data tunerData, section string, scaled []string) ([]byte, error) {
	rt := tunerRuntime{Section: section, Scaled: scaled}
	if rt.Scaled == nil {
		rt.Scaled = []string{}
	}
	for _, g := range data.Groups {
		for _, f := range g.Fields {
			rt.Fields = append(rt.Fields, tunerField{ID: f.ID, Key: f.Key, Targets: f.targets})
		}
	}

	js, err := encodeJS(rt)
	if err != nil {
		return nil, fmt.Errorf("tuner %s: %w", section, err)
	}
	data.Runtime = js
	data.Style = template.CSS(asset.TunerStyle)
	data.Script = template.JS(asset.TunerScript)

	var buf bytes.Buffer
	if err := tunerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("tuner %s: %w", section, err)
	}
	return buf.Bytes(), nil
}

type motionData struct {
	Title    string
	RootVars template.CSS
	Style    template.CSS
	Markup   template.HTML
	Runtime  template.JS
	Script   template.JS
}

type motionRuntime struct {
	TraceInterval int64 `json:"trace_interval"`
	FirstPlay     int64 `json:"first_play"`
	Replay        int64 `json:"replay"`
}

// RenderMotion builds the looping stroke debug page with the configured
// vitruvian geometry and trace timing
func RenderMotion(cfg config.Config, human icon.Icon) ([]byte, error) {
	augmented := icon.Augment([]icon.Icon{human}, cfg.Geometry)[0]

	js, err := encodeJS(motionRuntime{
		TraceInterval: cfg.Timing.TraceInterval.Milliseconds(),
		FirstPlay:     parameter.MotionFirstPlay.Milliseconds(),
		Replay:        parameter.MotionReplay.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("motion: %w", err)
	}

	var buf bytes.Buffer
	err = motionTemplate.Execute(&buf, motionData{
		Title:    "Vitruvian Motion",
		RootVars: rootVars(cfg),
		Style:    template.CSS(asset.MotionStyle),
		Markup:   template.HTML(augmented.Markup),
		Runtime:  js,
		Script:   template.JS(asset.MotionScript),
	})
	if err != nil {
		return nil, fmt.Errorf("motion: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderTuner dispatches to the page renderer for t
func RenderTuner(cfg config.Config, t Tuner, ic icon.Icon) ([]byte, error) {
	switch t {
	case AlienTuner:
		return RenderAlienTuner(cfg, ic)
	case HumanTuner:
		return RenderHumanTuner(cfg, ic)
	default:
		return RenderMotion(cfg, ic)
	}
}

// BuildTuner finds the page's icon in the configured reel directories,
// renders the page and writes it to out
func BuildTuner(cfg config.Config, t Tuner, out string) error {
	ic, err := icon.Find(cfg.Runtime.AssetsDir, t.Icon(), reelDirs(cfg)...)
	if err != nil {
		return err
	}

	doc, err := RenderTuner(cfg, t, ic)
	if err != nil {
		return err
	}
	if err := WriteFile(out, doc); err != nil {
		return err
	}

	log.WithFields(log.Fields{"page": t, "path": out}).Info("Tuner page generated")
	return nil
}

// reelDirs lists each configured reel directory once, in reel order
func reelDirs(cfg config.Config) []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, r := range cfg.Reels {
		d := filepath.Clean(r.Dir)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs
}
