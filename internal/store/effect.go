package store

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Effect is a stored binding between a palette entry and an external
// effect command, run when that entry becomes current.
type Effect struct {
	ID        string
	EntryID   int
	Name      string
	Config    json.RawMessage
	Enabled   bool
	CreatedAt time.Time
}

// EffectRepository provides CRUD operations for effect bindings.
type EffectRepository struct {
	db *sql.DB
}

// Effects returns the effect repository for this store.
func (s *Store) Effects() *EffectRepository {
	return &EffectRepository{db: s.db}
}

// Create inserts a new effect binding.
func (r *EffectRepository) Create(e *Effect) error {
	e.CreatedAt = time.Now()

	config := e.Config
	if config == nil {
		config = json.RawMessage("{}")
	}

	_, err := r.db.Exec(
		`INSERT INTO effects (id, entry_id, name, config, enabled, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.EntryID, e.Name, string(config), e.Enabled, e.CreatedAt,
	)
	return err
}

// GetByEntryID returns all enabled effects bound to a palette entry.
func (r *EffectRepository) GetByEntryID(entryID int) ([]*Effect, error) {
	rows, err := r.db.Query(
		`SELECT id, entry_id, name, config, enabled, created_at
		 FROM effects WHERE entry_id = ? AND enabled = 1`,
		entryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEffects(rows)
}

// List returns all effect bindings.
func (r *EffectRepository) List() ([]*Effect, error) {
	rows, err := r.db.Query(
		`SELECT id, entry_id, name, config, enabled, created_at
		 FROM effects ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEffects(rows)
}

// Delete removes an effect binding by id.
func (r *EffectRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM effects WHERE id = ?`, id)
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

func scanEffects(rows *sql.Rows) ([]*Effect, error) {
	var effects []*Effect
	for rows.Next() {
		e := &Effect{}
		var config string
		var enabled int

		if err := rows.Scan(&e.ID, &e.EntryID, &e.Name, &config, &enabled, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.Config = json.RawMessage(config)
		e.Enabled = enabled == 1
		effects = append(effects, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return effects, nil
}
