// Package palette holds the color palette and the current-color selection
// state driven by the dominant raised finger.
package palette

import (
	"fmt"

	"github.com/priyam/huehand/internal/finger"
)

// Entry is one selectable palette color.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// NumEntries is the fixed palette size, one entry per finger.
const NumEntries = 5

// Default palette. Entry 0 (Red) is the startup color. The ids are stable
// identifiers, not display order.
var defaultEntries = [NumEntries]Entry{
	{ID: 0, Name: "Red", Hex: "#E74C3C"},
	{ID: 1, Name: "Green", Hex: "#2ECC71"},
	{ID: 2, Name: "Cyan", Hex: "#1ABC9C"},
	{ID: 3, Name: "Blue", Hex: "#3498DB"},
	{ID: 4, Name: "Magenta", Hex: "#9B59B6"},
}

// fingerEntry binds each finger to the palette entry it selects.
var fingerEntry = map[finger.Finger]int{
	finger.Thumb:  0, // Red
	finger.Index:  2, // Cyan
	finger.Middle: 1, // Green
	finger.Ring:   3, // Blue
	finger.Pinky:  4, // Magenta
}

// Palette is a fixed set of five entries addressable by id or by finger.
type Palette struct {
	entries [NumEntries]Entry
}

// Default returns the built-in palette.
func Default() *Palette {
	return &Palette{entries: defaultEntries}
}

// New builds a palette from exactly NumEntries entries with ids 0..4.
// Used when loading a customized palette from the store.
func New(entries []Entry) (*Palette, error) {
	if len(entries) != NumEntries {
		return nil, fmt.Errorf("palette needs %d entries, got %d", NumEntries, len(entries))
	}

	p := &Palette{}
	seen := [NumEntries]bool{}
	for _, e := range entries {
		if e.ID < 0 || e.ID >= NumEntries {
			return nil, fmt.Errorf("palette entry id %d out of range", e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate palette entry id %d", e.ID)
		}
		seen[e.ID] = true
		p.entries[e.ID] = e
	}
	return p, nil
}

// Entry returns the entry with the given id.
func (p *Palette) Entry(id int) (Entry, error) {
	if id < 0 || id >= NumEntries {
		return Entry{}, fmt.Errorf("palette entry id %d out of range", id)
	}
	return p.entries[id], nil
}

// ForFinger returns the entry a finger selects.
func (p *Palette) ForFinger(f finger.Finger) Entry {
	return p.entries[fingerEntry[f]]
}

// Entries returns all entries in id order.
func (p *Palette) Entries() []Entry {
	return p.entries[:]
}
