// Package icon loads the svg icons each reel draws from and applies the
// static, name-keyed markup augmentations.
package icon

import (
	"errors"
	"fmt"
)

// Icon is immutable once loaded
type Icon struct {
	// Name is the svg filename stem, used for effect matching
	Name string
	// Markup is the serialized svg element
	Markup string
}

// ErrAssetMissing aborts generation when a required directory or file yields nothing
var ErrAssetMissing = errors.New("asset missing")

// UnreadableError reports a single file that was skipped
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("unreadable asset %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// errNoGraphic marks a file without recognizable svg content
var errNoGraphic = errors.New("no <svg> element")

// Names returns the icon names in order
func Names(icons []Icon) []string {
	names := make([]string, len(icons))
	for i, ic := range icons {
		names[i] = ic.Name
	}
	return names
}
