package store

import (
	"database/sql"
	"time"
)

// Transition is one logged color change.
type Transition struct {
	ID         int64
	EntryID    int
	Finger     string
	OccurredAt time.Time
}

// TransitionRepository provides access to the transition log.
type TransitionRepository struct {
	db *sql.DB
}

// Transitions returns the transition repository for this store.
func (s *Store) Transitions() *TransitionRepository {
	return &TransitionRepository{db: s.db}
}

// Record appends a transition to the log.
func (r *TransitionRepository) Record(entryID int, finger string) error {
	_, err := r.db.Exec(
		`INSERT INTO transitions (entry_id, finger, occurred_at) VALUES (?, ?, ?)`,
		entryID, finger, time.Now(),
	)
	return err
}

// Recent returns the newest transitions, most recent first. A non-positive
// limit defaults to 50.
func (r *TransitionRepository) Recent(limit int) ([]*Transition, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, entry_id, finger, occurred_at FROM transitions
		 ORDER BY occurred_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transitions []*Transition
	for rows.Next() {
		tr := &Transition{}
		if err := rows.Scan(&tr.ID, &tr.EntryID, &tr.Finger, &tr.OccurredAt); err != nil {
			return nil, err
		}
		transitions = append(transitions, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transitions, nil
}

// CountByEntry returns how many transitions landed on each entry id.
func (r *TransitionRepository) CountByEntry() (map[int]int, error) {
	rows, err := r.db.Query(
		`SELECT entry_id, COUNT(*) FROM transitions GROUP BY entry_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var entryID, count int
		if err := rows.Scan(&entryID, &count); err != nil {
			return nil, err
		}
		counts[entryID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
