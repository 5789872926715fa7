package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/icon"
)

func TestParseTuner(t *testing.T) {
	tests := []struct {
		in      string
		want    Tuner
		wantErr bool
	}{
		{"alien", AlienTuner, false},
		{"Human", HumanTuner, false},
		{"motion", MotionTuner, false},
		{"robot", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTuner(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTuner(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTuner(%q) = %s", tt.in, got)
		}
	}
}

func TestAlienTuner(t *testing.T) {
	cfg := config.Default()
	doc, err := RenderAlienTuner(cfg, icon.Icon{Name: "alien", Markup: `<svg><path d="M0"/></svg>`})
	if err != nil {
		t.Fatalf("RenderAlienTuner: %v", err)
	}
	s := string(doc)

	for _, want := range []string{
		`<circle id="eye-left" class="test-eye" cx="29.5%" cy="60.5%" r="18%" />`,
		`<circle id="eye-right" class="test-eye" cx="70.5%" cy="60.5%" r="18%" />`,
		`id="inp-lx"`,
		`id="anim-scale"`,
		`"section":"alien_eyes"`,
		`"key":"left_x"`,
		`"mirror":true`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("alien tuner missing %s", want)
		}
	}
	if strings.Count(s, "</svg>") != 1 {
		t.Error("svg not closed exactly once")
	}
}

func TestHumanTuner(t *testing.T) {
	cfg := config.Default()
	doc, err := RenderHumanTuner(cfg, icon.Icon{Name: "human", Markup: `<svg><path d="M0"/></svg>`})
	if err != nil {
		t.Fatalf("RenderHumanTuner: %v", err)
	}
	s := string(doc)

	for _, want := range []string{
		`<circle id="v-circle" class="v-shape" cx="50%" cy="50.5%" r="55%" />`,
		`<rect id="v-rect" class="v-shape v-rect" x="2%" y="8%" width="100.5%" height="92%" />`,
		`"section":"vitruvian"`,
		`"key":"rect_h"`,
		`<body class="human">`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("human tuner missing %s", want)
		}
	}
	if strings.Contains(s, `id="anim-scale"`) {
		t.Error("human tuner has the eye scale slider")
	}
}

func TestMotionPage(t *testing.T) {
	cfg := config.Default()
	doc, err := RenderMotion(cfg, icon.Icon{Name: "human", Markup: `<svg><path d="M0"/></svg>`})
	if err != nil {
		t.Fatalf("RenderMotion: %v", err)
	}
	s := string(doc)

	for _, want := range []string{
		`class="v-shape v-circle"`,
		`"trace_interval":1600`,
		`"first_play":500`,
		`"replay":4000`,
		`--stroke-duration: 1600ms;`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("motion page missing %s", want)
		}
	}
}

func TestBuildTuner(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, filepath.Join(dir, "icons"))
	cfg := config.Default()
	cfg.Runtime.AssetsDir = filepath.Join(dir, "icons")

	out := filepath.Join(dir, "alien.html")
	if err := BuildTuner(cfg, AlienTuner, out); err != nil {
		t.Fatalf("BuildTuner: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("tuner not written: %v", err)
	}

	cfg.Runtime.AssetsDir = filepath.Join(dir, "none")
	if err := BuildTuner(cfg, HumanTuner, filepath.Join(dir, "human.html")); err == nil {
		t.Error("expected error for missing human icon")
	}
}

func TestReelDirsDedup(t *testing.T) {
	dirs := reelDirs(config.Default())
	if len(dirs) != 2 || dirs[0] != "h_reel" || dirs[1] != "a_reel" {
		t.Errorf("reelDirs = %v", dirs)
	}
}
