package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	tables := []string{"palette_entries", "transitions", "effects", "settings"}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q should exist after migrations: %v", table, err)
		}
	}
}

func TestNew_SeedsDefaultPalette(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Palette().List()
	if err != nil {
		t.Fatalf("Palette().List() error = %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("seeded entries = %d, want 5", len(entries))
	}

	if entries[0].ID != 0 || entries[0].Name != "Red" {
		t.Errorf("entry 0 = %s(%d), want Red(0)", entries[0].Name, entries[0].ID)
	}
	if entries[2].ID != 2 || entries[2].Name != "Cyan" {
		t.Errorf("entry 2 = %s(%d), want Cyan(2)", entries[2].Name, entries[2].ID)
	}
	if entries[2].Finger != "index" {
		t.Errorf("entry 2 finger = %q, want %q", entries[2].Finger, "index")
	}
}

func TestNew_SeedOnlyOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}

	// Customize an entry, reopen, and check the edit survives.
	e, err := s.Palette().GetByID(0)
	if err != nil {
		t.Fatalf("GetByID(0) error = %v", err)
	}
	e.Name = "Crimson"
	if err := s.Palette().Update(e); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	s.Close()

	s, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	e, err = s.Palette().GetByID(0)
	if err != nil {
		t.Fatalf("GetByID(0) after reopen error = %v", err)
	}
	if e.Name != "Crimson" {
		t.Errorf("entry 0 name after reopen = %q, want %q", e.Name, "Crimson")
	}
}

func TestPaletteRepository_Update(t *testing.T) {
	s := newTestStore(t)

	e, err := s.Palette().GetByID(2)
	if err != nil {
		t.Fatalf("GetByID(2) error = %v", err)
	}

	e.Name = "Teal"
	e.Hex = "#008080"
	if err := s.Palette().Update(e); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := s.Palette().GetByID(2)
	if err != nil {
		t.Fatalf("GetByID(2) error = %v", err)
	}
	if got.Name != "Teal" || got.Hex != "#008080" {
		t.Errorf("entry = %s %s, want Teal #008080", got.Name, got.Hex)
	}
}

func TestPaletteRepository_NotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Palette().GetByID(9); err != ErrNotFound {
		t.Errorf("GetByID(9) error = %v, want ErrNotFound", err)
	}

	missing := &PaletteEntry{ID: 9, Name: "X", Hex: "#FFFFFF"}
	if err := s.Palette().Update(missing); err != ErrNotFound {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestTransitionRepository_RecordAndRecent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Transitions().Record(2, "index"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Transitions().Record(4, "pinky"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	recent, err := s.Transitions().Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d transitions, want 2", len(recent))
	}

	// Most recent first.
	if recent[0].EntryID != 4 || recent[0].Finger != "pinky" {
		t.Errorf("recent[0] = entry %d by %s, want 4 by pinky", recent[0].EntryID, recent[0].Finger)
	}
}

func TestTransitionRepository_Limit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.Transitions().Record(i, "thumb"); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	recent, err := s.Transitions().Recent(3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("recent = %d transitions, want 3", len(recent))
	}
}

func TestTransitionRepository_CountByEntry(t *testing.T) {
	s := newTestStore(t)

	s.Transitions().Record(2, "index")
	s.Transitions().Record(2, "index")
	s.Transitions().Record(0, "thumb")

	counts, err := s.Transitions().CountByEntry()
	if err != nil {
		t.Fatalf("CountByEntry() error = %v", err)
	}
	if counts[2] != 2 || counts[0] != 1 {
		t.Errorf("counts = %v, want {0:1, 2:2}", counts)
	}
}

func TestEffectRepository_CRUD(t *testing.T) {
	s := newTestStore(t)

	effect := &Effect{
		ID:      "effect-1",
		EntryID: 2,
		Name:    "announce",
		Enabled: true,
	}
	if err := s.Effects().Create(effect); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	bound, err := s.Effects().GetByEntryID(2)
	if err != nil {
		t.Fatalf("GetByEntryID(2) error = %v", err)
	}
	if len(bound) != 1 || bound[0].Name != "announce" {
		t.Fatalf("bound = %v, want one 'announce' effect", bound)
	}

	// Disabled effects are not returned for execution.
	disabled := &Effect{ID: "effect-2", EntryID: 2, Name: "silent", Enabled: false}
	if err := s.Effects().Create(disabled); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	bound, _ = s.Effects().GetByEntryID(2)
	if len(bound) != 1 {
		t.Errorf("bound after disabled insert = %d, want 1", len(bound))
	}

	all, err := s.Effects().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all effects = %d, want 2", len(all))
	}

	if err := s.Effects().Delete("effect-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Effects().Delete("effect-1"); err != ErrNotFound {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestSettingRepository_GetSet(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Settings().Get("missing"); err != ErrNotFound {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.Settings().Set("camera_id", "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := s.Settings().Get("camera_id")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "1" {
		t.Errorf("value = %q, want %q", value, "1")
	}

	// Overwrite.
	s.Settings().Set("camera_id", "2")
	value, _ = s.Settings().Get("camera_id")
	if value != "2" {
		t.Errorf("value after overwrite = %q, want %q", value, "2")
	}
}
