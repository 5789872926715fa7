package icon

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/config"
)

const svgExt = ".svg"

// Load scans dir for svg files sorted by filename and returns one Icon per
// unique stem. Unreadable files and files without an <svg> element are
// skipped with a warning. A missing directory yields an empty slice
func Load(dir string) ([]Icon, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.WithField("dir", dir).Warn("Icon directory does not exist, no icons discovered")
		return []Icon{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon directory %s: %w", dir, err)
	}

	// os.ReadDir sorts by filename already, keep it explicit
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	icons := make([]Icon, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if strings.HasPrefix(fileName, ".") || filepath.Ext(fileName) != svgExt {
			continue
		}

		stem := strings.TrimSuffix(fileName, svgExt)
		if seen[stem] {
			log.WithField("file", fileName).Debug("Duplicate icon stem skipped")
			continue
		}

		path := filepath.Join(dir, fileName)
		markup, err := readMarkup(path)
		if err != nil {
			log.WithError(err).Warn("Skipping icon")
			continue
		}

		seen[stem] = true
		icons = append(icons, Icon{Name: stem, Markup: markup})
	}

	log.WithFields(log.Fields{"dir": dir, "count": len(icons)}).Debug("Icons discovered")
	return icons, nil
}

// readMarkup returns the file content when it holds an svg element
func readMarkup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &UnreadableError{Path: path, Err: err}
	}
	content := string(data)
	if !strings.Contains(content, "<svg") {
		return "", &UnreadableError{Path: path, Err: errNoGraphic}
	}
	return content, nil
}

// LoadReels loads and augments the icon list of every configured reel.
// Directories shared by several reels are read once. Any empty reel is an
// ErrAssetMissing and nothing is returned
func LoadReels(cfg config.Config) ([][]Icon, error) {
	cache := make(map[string][]Icon, len(cfg.Reels))
	reels := make([][]Icon, len(cfg.Reels))

	for i, src := range cfg.Reels {
		dir := filepath.Join(cfg.Runtime.AssetsDir, src.Dir)

		icons, ok := cache[dir]
		if !ok {
			loaded, err := Load(dir)
			if err != nil {
				return nil, err
			}
			icons = Augment(loaded, cfg.Geometry)
			cache[dir] = icons
		}

		if len(icons) == 0 {
			return nil, fmt.Errorf("reel %d (%s): no icons in %s: %w", i, src.Name, dir, ErrAssetMissing)
		}
		reels[i] = icons
	}

	return reels, nil
}

// Find locates a single named icon, searching the given sub-directories of
// assetsDir in order. The icon is returned without augmentation
func Find(assetsDir, name string, dirs ...string) (Icon, error) {
	for _, d := range dirs {
		path := filepath.Join(assetsDir, d, name+svgExt)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		markup, err := readMarkup(path)
		if err != nil {
			return Icon{}, err
		}
		return Icon{Name: name, Markup: markup}, nil
	}
	return Icon{}, fmt.Errorf("icon %q not found under %s %v: %w", name, assetsDir, dirs, ErrAssetMissing)
}
