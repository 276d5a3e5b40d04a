package store

import (
	"database/sql"
	"errors"
	"time"
)

// PaletteEntry is one stored palette color and the finger that selects it.
type PaletteEntry struct {
	ID        int
	Name      string
	Hex       string
	Finger    string
	UpdatedAt time.Time
}

// PaletteRepository provides access to the stored palette.
type PaletteRepository struct {
	db *sql.DB
}

// Palette returns the palette repository for this store.
func (s *Store) Palette() *PaletteRepository {
	return &PaletteRepository{db: s.db}
}

// List returns all palette entries in id order.
func (r *PaletteRepository) List() ([]*PaletteEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, name, hex, finger, updated_at FROM palette_entries ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*PaletteEntry
	for rows.Next() {
		e := &PaletteEntry{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Hex, &e.Finger, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID returns the entry with the given id.
func (r *PaletteRepository) GetByID(id int) (*PaletteEntry, error) {
	e := &PaletteEntry{}
	err := r.db.QueryRow(
		`SELECT id, name, hex, finger, updated_at FROM palette_entries WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Name, &e.Hex, &e.Finger, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Update changes the display name and hex of an entry. The finger binding
// is fixed.
func (r *PaletteRepository) Update(e *PaletteEntry) error {
	e.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE palette_entries SET name = ?, hex = ?, updated_at = ? WHERE id = ?`,
		e.Name, e.Hex, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
