package preview

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/sequencer"
)

// WritePlan prints the scene events of the first cycles for seed, one per
// line. Run with the same seed stops on the same winners
func WritePlan(w io.Writer, cfg config.Config, strips [][]icon.Icon, seed int64, cycles int) error {
	if cycles < 1 {
		return fmt.Errorf("plan: cycles must be >= 1, got %d", cycles)
	}
	tl, err := sequencer.Plan(cfg, strips, effect.Default(cfg.Timing), rand.New(rand.NewSource(seed)), cycles)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "seed %d, %d cycle(s) of %s\n", seed, cycles, cfg.CycleLength())
	for _, e := range tl {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}
