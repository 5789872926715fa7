// Package reel models one vertical column of icons: the repeated strip, its
// scroll offset and the spin state machine.
package reel

import (
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/parameter"
)

// Strip is the icon list repeated Repeat times end to end
type Strip struct {
	Icons  []icon.Icon
	Repeat int
}

// NewStrip builds a strip with the default repetition count
func NewStrip(icons []icon.Icon) Strip {
	return Strip{Icons: icons, Repeat: parameter.StripRepeat}
}

// Count is the number of distinct icons
func (s Strip) Count() int {
	return len(s.Icons)
}

// Len is the number of icon boxes in the rendered strip
func (s Strip) Len() int {
	return len(s.Icons) * s.Repeat
}

// At returns the icon shown by box idx of the repeated strip
func (s Strip) At(idx int) icon.Icon {
	n := len(s.Icons)
	return s.Icons[((idx%n)+n)%n]
}

// StopIndex is the box a reel lands on for target: always inside the
// StopRepetition copy so neighbours exist above and below
func (s Strip) StopIndex(target int) int {
	return target + s.Count()*parameter.StopRepetition
}

// StopOffset is the vertical translation in px that brings StopIndex(target)
// into the viewport
func (s Strip) StopOffset(target, iconSize int) int {
	return -s.StopIndex(target) * iconSize
}

// IndexAt inverts StopOffset: which box is visible at offset
func (s Strip) IndexAt(offset, iconSize int) int {
	if iconSize <= 0 {
		return 0
	}
	return -offset / iconSize
}
