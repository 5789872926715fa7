package icon

import (
	"strings"
	"testing"

	"github.com/lixenwraith/haa-logo/config"
)

func TestEyeCoversMirror(t *testing.T) {
	got := EyeCovers(config.Default().Geometry)
	want := `<circle class="eye-cover left-eye" cx="29.5%" cy="60.5%" r="18%" fill="white" transform="scale(0)" />` +
		`<circle class="eye-cover right-eye" cx="70.5%" cy="60.5%" r="18%" fill="white" transform="scale(0)" />`
	if got != want {
		t.Errorf("EyeCovers =\n%s\nwant\n%s", got, want)
	}
}

func TestVitruvianShapes(t *testing.T) {
	got := VitruvianShapes(config.Default().Geometry)
	for _, frag := range []string{`cx="50%"`, `cy="50.5%"`, `r="55%"`, `x="2%"`, `width="100.5%"`, `height="92%"`} {
		if !strings.Contains(got, frag) {
			t.Errorf("VitruvianShapes missing %s: %s", frag, got)
		}
	}
	// Circle first, rect second
	if strings.Index(got, "<circle") > strings.Index(got, "<rect") {
		t.Error("circle should precede rect")
	}
}

func TestInjectOverlay(t *testing.T) {
	tests := []struct {
		markup, overlay, want string
	}{
		{"<svg><g/></svg>", "<x/>", "<svg><g/><x/></svg>"},
		{"<svg><svg/></svg>\n", "<x/>", "<svg><svg/><x/></svg>\n"},
		{"<svg>", "<x/>", "<svg>"},
	}
	for _, tt := range tests {
		if got := InjectOverlay(tt.markup, tt.overlay); got != tt.want {
			t.Errorf("InjectOverlay(%q) = %q, want %q", tt.markup, got, tt.want)
		}
	}
}

func TestStripClose(t *testing.T) {
	if got := StripClose("<svg><g/></svg>\n"); got != "<svg><g/>\n" {
		t.Errorf("StripClose = %q", got)
	}
}

func TestAugmentDoesNotMutateInput(t *testing.T) {
	in := []Icon{{Name: "alien", Markup: testSVG}, {Name: "apple", Markup: testSVG}}
	out := Augment(in, config.Default().Geometry)
	if in[0].Markup != testSVG {
		t.Error("input slice mutated")
	}
	if out[0].Markup == testSVG {
		t.Error("alien not augmented")
	}
	if out[1].Markup != testSVG {
		t.Error("apple should pass through unchanged")
	}
}

func TestPct(t *testing.T) {
	cases := map[float64]string{29.5: "29.5", 18: "18", 100.5: "100.5", -0.5: "-0.5"}
	for in, want := range cases {
		if got := Pct(in); got != want {
			t.Errorf("Pct(%g) = %q, want %q", in, got, want)
		}
	}
}
