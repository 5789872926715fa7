package page

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/parameter"
)

type cssVar struct {
	name, value string
}

// rootVars renders the :root block as trusted CSS, one custom property per
// tunable value
func rootVars(cfg config.Config) template.CSS {
	v, t, p := cfg.Visual, cfg.Timing, cfg.Particles
	vars := []cssVar{
		{"size", px(v.IconSize)},
		{"gap", px(v.GapSize)},
		{"icon-scale", icon.Pct(math.Round(v.IconScale*10000)/100) + "%"},
		{"bg-color", v.Background},
		{"icon-color", v.Icon},
		{"heart-color", v.Heart},
		{"apple-color", v.Apple},
		{"water-color", v.Water},
		{"anchor-hover-y", px(v.AnchorHoverY)},
		{"spin-loop", ms(t.SpinLoop)},
		{"spin-shift", icon.Pct(-math.Round(10000/float64(parameter.StripRepeat))/100) + "%"},
		{"drop-duration", ms(t.DropDuration)},
		{"smash-duration", ms(t.SmashDuration)},
		{"pulse-period", ms(t.PulsePeriod)},
		{"bite-snap", ms(t.BiteSnap)},
		{"reveal-duration", ms(t.RevealDuration)},
		{"stroke-duration", ms(t.StrokeDuration)},
		{"particle-life", ms(p.Life)},
		{"particle-end-scale", fmt.Sprint(p.EndScale)},
		{"crumb-size", fmt.Sprintf("%gpx", p.Crumb.Size)},
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, cv := range vars {
		fmt.Fprintf(&b, "    --%s: %s;\n", cv.name, cv.value)
	}
	b.WriteString("}\n")
	return template.CSS(b.String())
}

func px(n int) string {
	return fmt.Sprintf("%dpx", n)
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
