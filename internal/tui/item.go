// Package tui provides the interactive Bubbletea picker for choosing a preset.
package tui

import (
	"fmt"
	"time"
)

// PresetItem wraps one stored preset to implement the bubbles
// list.DefaultItem interface used by the picker list component.
type PresetItem struct {
	name     string
	path     string
	size     int64
	modified time.Time
}

// NewPresetItem creates a PresetItem from file metadata.
func NewPresetItem(name, path string, size int64, modified time.Time) PresetItem {
	return PresetItem{name: name, path: path, size: size, modified: modified}
}

// Title returns the preset name for list display.
func (i PresetItem) Title() string { return i.name }

// Description returns size and modification time for list display.
func (i PresetItem) Description() string {
	if i.modified.IsZero() {
		return i.path
	}

	return fmt.Sprintf("%d bytes | %s", i.size, i.modified.Format("2006-01-02 15:04"))
}

// FilterValue returns the preset name for fuzzy matching.
func (i PresetItem) FilterValue() string { return i.name }

// Name returns the wrapped preset name.
func (i PresetItem) Name() string { return i.name }
