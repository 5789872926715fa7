package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/haa-logo/asset"
)

// TestEmbeddedMatchesDefault verifies the embedded YAML documents exactly the built-in values
func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse([]byte(asset.DefaultConfig))
	if err != nil {
		t.Fatalf("embedded config failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config differs from Default()\n got: %+v\nwant: %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got: %v", err)
	}
}

func TestCycleLength(t *testing.T) {
	cfg := Default()
	// 3*150 + 1000 + 3*400 + 3500
	want := 6150 * time.Millisecond
	if got := cfg.CycleLength(); got != want {
		t.Errorf("CycleLength = %s, want %s", got, want)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	data := []byte(`
timing:
  wait: 2s
visual:
  heart: "#ff0000"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Timing.Wait != 2*time.Second {
		t.Errorf("Wait = %s, want 2s", cfg.Timing.Wait)
	}
	if cfg.Visual.Heart != "#ff0000" {
		t.Errorf("Heart = %q, want #ff0000", cfg.Visual.Heart)
	}
	if cfg.Timing.StopDelay != Default().Timing.StopDelay {
		t.Errorf("StopDelay should keep default, got %s", cfg.Timing.StopDelay)
	}
	if len(cfg.Reels) != 3 {
		t.Errorf("Reels should keep default, got %d", len(cfg.Reels))
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte("timing: [unclosed")); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
	if _, err := Parse([]byte("timing:\n  wait: soon\n")); err == nil {
		t.Error("expected parse error for bad duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no reels", func(c *Config) { c.Reels = nil }, "at least one reel"},
		{"empty dir", func(c *Config) { c.Reels[1].Dir = "" }, "reels[1]"},
		{"icon size", func(c *Config) { c.Visual.IconSize = 0 }, "icon_size"},
		{"icon scale", func(c *Config) { c.Visual.IconScale = 1.5 }, "icon_scale"},
		{"color", func(c *Config) { c.Visual.Heart = "" }, "visual.heart"},
		{"negative wait", func(c *Config) { c.Timing.Wait = -time.Second }, "timing.wait"},
		{"stroke overlap", func(c *Config) { c.Timing.TraceInterval = time.Second }, "trace_interval"},
		{"reveal lead", func(c *Config) { c.Timing.RevealLead = 5 * time.Second }, "reveal_lead"},
		{"water range", func(c *Config) { c.Particles.Water.CountMax = 10 }, "particles.water"},
		{"crumb range", func(c *Config) { c.Particles.Crumb.CountMin = 0 }, "particles.crumb"},
		{"easing", func(c *Config) { c.Timing.StopEasing = "" }, "stop_easing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Reels = append([]ReelSource(nil), cfg.Reels...)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HAA_OUTPUT", "out/logo.html")
	t.Setenv("HAA_OPEN", "false")
	t.Setenv("HAA_TIMING_WAIT", "1500ms")
	t.Setenv("HAA_VISUAL_ICON_SIZE", "64")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Runtime.Output != "out/logo.html" {
		t.Errorf("Output = %q", cfg.Runtime.Output)
	}
	if cfg.Runtime.Open {
		t.Error("Open should be overridden to false")
	}
	if cfg.Timing.Wait != 1500*time.Millisecond {
		t.Errorf("Wait = %s", cfg.Timing.Wait)
	}
	if cfg.Visual.IconSize != 64 {
		t.Errorf("IconSize = %d", cfg.Visual.IconSize)
	}
	// Untouched keys keep their values
	if cfg.Timing.StopDelay != Default().Timing.StopDelay {
		t.Errorf("StopDelay changed without override: %s", cfg.Timing.StopDelay)
	}
}

func TestApplyEnvIgnoresBareKeys(t *testing.T) {
	t.Setenv("OUTPUT", "/tmp/elsewhere.html")
	t.Setenv("WAIT", "1ms")
	t.Setenv("ICON", "red")
	t.Setenv("OPEN", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ANCHOR_HOVER_Y", "3")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("unprefixed variables changed config: output=%q wait=%s icon=%q open=%v level=%q hover=%d",
			cfg.Runtime.Output, cfg.Timing.Wait, cfg.Visual.Icon, cfg.Runtime.Open, cfg.Runtime.LogLevel, cfg.Visual.AnchorHoverY)
	}
}

func TestApplyEnvMultiWordKeys(t *testing.T) {
	t.Setenv("HAA_LOG_LEVEL", "debug")
	t.Setenv("HAA_VISUAL_ANCHOR_HOVER_Y", "-9")
	t.Setenv("HAA_TIMING_STOP_EASING", "linear")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Runtime.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.Runtime.LogLevel)
	}
	if cfg.Visual.AnchorHoverY != -9 {
		t.Errorf("AnchorHoverY = %d", cfg.Visual.AnchorHoverY)
	}
	if cfg.Timing.StopEasing != "linear" {
		t.Errorf("StopEasing = %q", cfg.Timing.StopEasing)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	t.Setenv("HAA_TIMING_WAIT", "forever")
	cfg := Default()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("expected error for unparsable duration override")
	}
}

func TestLoadAutoPriority(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("runtime:\n  output: custom.html\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAuto(custom)
	if err != nil {
		t.Fatalf("LoadAuto(custom) failed: %v", err)
	}
	if cfg.Runtime.Output != "custom.html" {
		t.Errorf("custom path not honored, Output = %q", cfg.Runtime.Output)
	}

	// Env beats file
	t.Setenv("HAA_OUTPUT", "env.html")
	cfg, err = LoadAuto(custom)
	if err != nil {
		t.Fatalf("LoadAuto with env failed: %v", err)
	}
	if cfg.Runtime.Output != "env.html" {
		t.Errorf("env override not honored, Output = %q", cfg.Runtime.Output)
	}
}

func TestLoadAutoMissingCustom(t *testing.T) {
	if _, err := LoadAuto(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadAutoInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("reels: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadAuto(path)
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshaled config failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshaled default config does not parse back to Default()")
	}
}

func TestRightEyeMirrors(t *testing.T) {
	e := AlienEyes{LeftX: 29.5}
	if got := e.RightX(); got != 70.5 {
		t.Errorf("RightX = %g, want 70.5", got)
	}
}
