package palette

import (
	"testing"

	"github.com/priyam/huehand/internal/finger"
)

func TestSelector_InitialState(t *testing.T) {
	s := NewSelector(Default())

	current := s.Current()
	if current.ID != 0 {
		t.Errorf("initial entry id = %d, want 0", current.ID)
	}
	if current.Name != "Red" {
		t.Errorf("initial entry name = %q, want %q", current.Name, "Red")
	}
}

func TestSelector_IndexSelectsCyan(t *testing.T) {
	s := NewSelector(Default())

	entry, changed := s.Apply(finger.Index)

	if !changed {
		t.Fatal("applying index on a fresh selector should transition")
	}
	if entry.ID != 2 || entry.Name != "Cyan" {
		t.Errorf("entry = %+v, want Cyan(2)", entry)
	}
	if s.Current().ID != 2 {
		t.Errorf("current id = %d, want 2", s.Current().ID)
	}
}

func TestSelector_Idempotent(t *testing.T) {
	s := NewSelector(Default())

	var fired int
	s.OnChange(func(Entry, finger.Finger) { fired++ })

	if _, changed := s.Apply(finger.Index); !changed {
		t.Fatal("first apply should transition")
	}
	if _, changed := s.Apply(finger.Index); changed {
		t.Error("second apply with same finger should not transition")
	}
	if fired != 1 {
		t.Errorf("onChange fired %d times, want 1", fired)
	}
}

func TestSelector_FullyConnected(t *testing.T) {
	// Any entry can transition to any other: walk every ordered pair.
	fingers := []finger.Finger{
		finger.Thumb, finger.Index, finger.Middle, finger.Ring, finger.Pinky,
	}

	for _, from := range fingers {
		for _, to := range fingers {
			if from == to {
				continue
			}

			s := NewSelector(Default())
			s.Apply(from)

			entry, changed := s.Apply(to)
			if !changed {
				t.Errorf("transition %v -> %v did not happen", from, to)
			}
			if entry != s.Current() {
				t.Errorf("returned entry %+v differs from current %+v", entry, s.Current())
			}
		}
	}
}

func TestSelector_ThumbFromStartIsNoop(t *testing.T) {
	// Thumb maps to entry 0, which is also the initial state.
	s := NewSelector(Default())

	var fired int
	s.OnChange(func(Entry, finger.Finger) { fired++ })

	entry, changed := s.Apply(finger.Thumb)
	if changed {
		t.Error("thumb on a fresh selector should not transition")
	}
	if entry.ID != 0 {
		t.Errorf("entry id = %d, want 0", entry.ID)
	}
	if fired != 0 {
		t.Errorf("onChange fired %d times, want 0", fired)
	}
}

func TestSelector_Reset(t *testing.T) {
	s := NewSelector(Default())
	s.Apply(finger.Pinky)

	s.Reset()
	if s.Current().ID != 0 {
		t.Errorf("current id after reset = %d, want 0", s.Current().ID)
	}
}

func TestPalette_New(t *testing.T) {
	t.Run("valid entries", func(t *testing.T) {
		entries := []Entry{
			{ID: 0, Name: "A", Hex: "#000000"},
			{ID: 1, Name: "B", Hex: "#111111"},
			{ID: 2, Name: "C", Hex: "#222222"},
			{ID: 3, Name: "D", Hex: "#333333"},
			{ID: 4, Name: "E", Hex: "#444444"},
		}
		p, err := New(entries)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		e, err := p.Entry(3)
		if err != nil {
			t.Fatalf("Entry(3) error = %v", err)
		}
		if e.Name != "D" {
			t.Errorf("entry 3 name = %q, want %q", e.Name, "D")
		}
	})

	t.Run("wrong count", func(t *testing.T) {
		if _, err := New([]Entry{{ID: 0}}); err == nil {
			t.Error("expected error for short palette")
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		entries := []Entry{
			{ID: 0}, {ID: 0}, {ID: 2}, {ID: 3}, {ID: 4},
		}
		if _, err := New(entries); err == nil {
			t.Error("expected error for duplicate ids")
		}
	})

	t.Run("id out of range", func(t *testing.T) {
		entries := []Entry{
			{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}, {ID: 7},
		}
		if _, err := New(entries); err == nil {
			t.Error("expected error for out-of-range id")
		}
	})
}

func TestPalette_ForFinger(t *testing.T) {
	p := Default()

	tests := []struct {
		finger finger.Finger
		wantID int
	}{
		{finger.Thumb, 0},
		{finger.Index, 2},
		{finger.Middle, 1},
		{finger.Ring, 3},
		{finger.Pinky, 4},
	}

	for _, tt := range tests {
		t.Run(tt.finger.String(), func(t *testing.T) {
			if got := p.ForFinger(tt.finger); got.ID != tt.wantID {
				t.Errorf("ForFinger(%v).ID = %d, want %d", tt.finger, got.ID, tt.wantID)
			}
		})
	}
}

func TestPalette_EntryOutOfRange(t *testing.T) {
	p := Default()
	if _, err := p.Entry(5); err == nil {
		t.Error("expected error for id 5")
	}
	if _, err := p.Entry(-1); err == nil {
		t.Error("expected error for id -1")
	}
}
