package effect

import (
	"strings"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/particle"
	"github.com/lixenwraith/haa-logo/parameter"
)

// Class names shared by the page stylesheet, the browser runtime and the preview
const (
	ClassOverlay = "active-overlay"
	ClassPopOut  = "pop-out"

	ClassAnchorHover = "anchor-hover-high"
	ClassAnchorDrop  = "anchor-drop"
	ClassHeartbeat   = "heartbeat"
	ClassHammer      = "hammer-action"
	ClassBite1       = "bite-1"
	ClassBite2       = "bite-2"
	ClassAlien       = "alien-action"
	ClassDrawSquare  = "draw-square"
	ClassDrawCircle  = "draw-circle"
)

// Rule pairs a name substring with its descriptor
type Rule struct {
	Match      string
	Descriptor Descriptor
}

// Table is the ordered rule list; the first rule whose Match is contained in
// the icon name wins
type Table struct {
	rules []Rule
}

// NewTable builds a table from explicit rules
func NewTable(rules []Rule) *Table {
	return &Table{rules: rules}
}

// Default builds the stock table from the timing configuration
func Default(t config.Timing) *Table {
	return NewTable(DefaultRules(t))
}

// DefaultRules returns the stock rules in evaluation order
func DefaultRules(t config.Timing) []Rule {
	d := t.EffectDelay
	return []Rule{
		{Match: "anchor", Descriptor: Descriptor{Kind: Drop, Overlay: true, Steps: []Step{
			{At: 0, Action: AddClass, Class: ClassAnchorHover},
			{At: d, Action: RemoveClass, Class: ClassAnchorHover},
			{At: d, Action: AddClass, Class: ClassAnchorDrop},
			{At: d + t.DropDuration, Action: Emit, Burst: &particle.Burst{
				Kind: particle.Water, X: parameter.AnchorSplashX, Y: parameter.AnchorSplashY,
				DirY: -1, SpreadX: parameter.AnchorSplashSpread,
			}},
		}}},
		{Match: "heart", Descriptor: Descriptor{Kind: Pulse, Overlay: true, Steps: []Step{
			{At: d, Action: AddClass, Class: ClassHeartbeat},
		}}},
		{Match: "hammer", Descriptor: Descriptor{Kind: Smash, Overlay: true, Steps: []Step{
			{At: d, Action: AddClass, Class: ClassHammer},
			{At: d + t.SmashImpact, Action: Emit, Burst: &particle.Burst{
				Kind: particle.Crumb, X: parameter.HammerImpactX, Y: parameter.HammerImpactY,
				DirY: 1, SpreadX: parameter.HammerImpactSpread,
			}},
		}}},
		{Match: "apple", Descriptor: Descriptor{Kind: Bite, Steps: []Step{
			{At: d, Action: Mark, Class: ClassBite1},
			{At: d, Action: Emit, Burst: &particle.Burst{
				Kind: particle.Crumb, X: parameter.FirstBiteX, Y: parameter.FirstBiteY,
				DirY: -1, SpreadX: parameter.ParticleDefaultSpread,
			}},
			{At: d + t.SecondBite, Action: Mark, Class: ClassBite2},
			{At: d + t.SecondBite, Action: Emit, Burst: &particle.Burst{
				Kind: particle.Crumb, X: parameter.SecondBiteX, Y: parameter.SecondBiteY,
				DirY: 1, SpreadX: parameter.ParticleDefaultSpread,
			}},
		}}},
		{Match: "alien", Descriptor: Descriptor{Kind: Reveal, Steps: []Step{
			{At: -t.RevealLead, Anchor: AnchorCycleEnd, Action: AddClass, Class: ClassAlien},
		}}},
		{Match: "human", Descriptor: Descriptor{Kind: Trace, Overlay: true, Steps: []Step{
			{At: d, Action: AddClass, Class: ClassDrawSquare},
			{At: d + t.TraceInterval, Action: AddClass, Class: ClassDrawCircle},
		}}},
	}
}

// Match returns the descriptor of the first matching rule
func (t *Table) Match(name string) (Descriptor, bool) {
	for _, r := range t.rules {
		if strings.Contains(name, r.Match) {
			return r.Descriptor, true
		}
	}
	return Descriptor{Kind: None}, false
}

// Rules returns the rules in evaluation order
func (t *Table) Rules() []Rule {
	return t.rules
}

// Classes lists every effect class across the table plus the overlay pair,
// without duplicates and in table order
func (t *Table) Classes() []string {
	out := []string{ClassOverlay, ClassPopOut}
	seen := map[string]bool{ClassOverlay: true, ClassPopOut: true}
	for _, r := range t.rules {
		for _, c := range r.Descriptor.Classes() {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
