package store

// runMigrations executes all schema migrations and seeds the default
// palette when the table is empty.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Palette entries - the five selectable colors, editable via the API
		`CREATE TABLE IF NOT EXISTS palette_entries (
			id INTEGER PRIMARY KEY CHECK(id BETWEEN 0 AND 4),
			name TEXT NOT NULL,
			hex TEXT NOT NULL,
			finger TEXT NOT NULL UNIQUE,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Transitions - append-only log of color changes
		`CREATE TABLE IF NOT EXISTS transitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_id INTEGER NOT NULL REFERENCES palette_entries(id),
			finger TEXT NOT NULL,
			occurred_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Effects - external commands run when an entry becomes current
		`CREATE TABLE IF NOT EXISTS effects (
			id TEXT PRIMARY KEY,
			entry_id INTEGER NOT NULL REFERENCES palette_entries(id),
			name TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '{}',
			enabled INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings - key-value application settings
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_transitions_entry_id ON transitions(entry_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transitions_occurred_at ON transitions(occurred_at)`,
		`CREATE INDEX IF NOT EXISTS idx_effects_entry_id ON effects(entry_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return s.seedPalette()
}

// seedPalette inserts the default five entries on first run.
func (s *Store) seedPalette() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM palette_entries`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		id     int
		name   string
		hex    string
		finger string
	}{
		{0, "Red", "#E74C3C", "thumb"},
		{2, "Cyan", "#1ABC9C", "index"},
		{1, "Green", "#2ECC71", "middle"},
		{3, "Blue", "#3498DB", "ring"},
		{4, "Magenta", "#9B59B6", "pinky"},
	}

	for _, d := range defaults {
		_, err := s.db.Exec(
			`INSERT INTO palette_entries (id, name, hex, finger) VALUES (?, ?, ?, ?)`,
			d.id, d.name, d.hex, d.finger,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
