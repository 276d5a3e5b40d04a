package palette

import (
	"sync"

	"github.com/priyam/huehand/internal/finger"
)

// Selector owns the single current-color state. It starts on entry 0 and
// transitions only when the dominant finger maps to a different entry, so
// an unchanged selection never re-fires the change callback (the UI
// animation restarts only on real transitions).
//
// The pipeline is the only writer; the mutex covers concurrent readers
// such as HTTP handlers.
type Selector struct {
	palette  *Palette
	current  int
	mu       sync.RWMutex
	onChange func(Entry, finger.Finger)
}

// NewSelector creates a Selector over the given palette, positioned on
// entry 0.
func NewSelector(p *Palette) *Selector {
	if p == nil {
		p = Default()
	}
	return &Selector{palette: p}
}

// OnChange registers the callback fired on every transition. The callback
// runs synchronously on the applying goroutine.
func (s *Selector) OnChange(fn func(entry Entry, by finger.Finger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Current returns the currently selected entry.
func (s *Selector) Current() Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette.entries[s.current]
}

// Palette returns the palette the selector operates on.
func (s *Selector) Palette() *Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette
}

// Apply maps the dominant finger to its palette entry and transitions the
// current state if it differs. Returns the entry now selected and whether
// a transition happened. Applying the same finger twice in a row is a
// no-op the second time.
func (s *Selector) Apply(f finger.Finger) (Entry, bool) {
	s.mu.Lock()

	entry := s.palette.ForFinger(f)
	if entry.ID == s.current {
		s.mu.Unlock()
		return entry, false
	}

	s.current = entry.ID
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(entry, f)
	}
	return entry, true
}

// Reset returns the selector to entry 0 without firing the callback.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = 0
}
