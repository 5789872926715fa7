// Package page renders the self-contained logo document and the geometry
// tuning pages, and writes them to disk atomically.
package page

import (
	"bytes"
	"fmt"
	"html/template"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/asset"
	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/effect"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/reel"
)

// Title of the logo document
const Title = "HAA"

type documentData struct {
	Title    string
	RootVars template.CSS
	Style    template.CSS
	Reels    []reelData
	Runtime  template.JS
	Script   template.JS
}

type reelData struct {
	Name  string
	Boxes []boxData
}

type boxData struct {
	Name string
	// Markup is the loaded svg, trusted as-is
	Markup template.HTML
}

// Render produces the logo document for already loaded reels. Output is a
// pure function of its inputs
func Render(cfg config.Config, reels [][]icon.Icon, table *effect.Table) ([]byte, error) {
	if len(reels) != len(cfg.Reels) {
		return nil, fmt.Errorf("render: %d icon lists for %d configured reels", len(reels), len(cfg.Reels))
	}

	data := documentData{
		Title:    Title,
		RootVars: rootVars(cfg),
		Style:    template.CSS(asset.PageStyle),
		Script:   template.JS(asset.PageScript),
	}

	counts := make([]int, len(reels))
	for i, icons := range reels {
		if len(icons) == 0 {
			return nil, fmt.Errorf("render: reel %d: %w", i, icon.ErrAssetMissing)
		}
		counts[i] = len(icons)

		strip := reel.NewStrip(icons)
		rd := reelData{Name: cfg.Reels[i].Name, Boxes: make([]boxData, strip.Len())}
		for idx := range rd.Boxes {
			ic := strip.At(idx)
			rd.Boxes[idx] = boxData{Name: ic.Name, Markup: template.HTML(ic.Markup)}
		}
		data.Reels = append(data.Reels, rd)
	}

	rt, err := encodeJS(NewRuntime(cfg, counts, table))
	if err != nil {
		return nil, fmt.Errorf("render: runtime: %w", err)
	}
	data.Runtime = rt

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate loads every reel from the assets directory and renders the document
func Generate(cfg config.Config) ([]byte, error) {
	reels, err := icon.LoadReels(cfg)
	if err != nil {
		return nil, err
	}

	for i, icons := range reels {
		log.WithFields(log.Fields{
			"reel":  cfg.Reels[i].Name,
			"icons": icon.Names(icons),
		}).Debug("Reel loaded")
	}

	return Render(cfg, reels, effect.Default(cfg.Timing))
}

// Build generates the document and writes it to cfg.Runtime.Output when its
// content differs from what is on disk. It reports whether a write happened
func Build(cfg config.Config) (bool, error) {
	doc, err := Generate(cfg)
	if err != nil {
		return false, err
	}

	changed, err := WriteIfChanged(cfg.Runtime.Output, doc)
	if err != nil {
		return false, err
	}

	log.WithFields(log.Fields{
		"path":    cfg.Runtime.Output,
		"bytes":   len(doc),
		"changed": changed,
	}).Info("Logo generated")
	return changed, nil
}
