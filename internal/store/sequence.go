package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Statements that set up the single-row counter table.
var sequenceSetup = []struct {
	what string
	stmt string
}{
	{"create sequence table", `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`},
	{"seed sequence", `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`},
}

const takeSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`

// sequenceCounter numbers records across all three tables. Listings sort on
// this number rather than timestamps, which can collide or go backwards.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, s := range sequenceSetup {
		if _, err := db.Exec(s.stmt); err != nil {
			return nil, fmt.Errorf("%s: %w", s.what, err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next claims a number. Values start at 1 and are never reused, even if the
// insert that claimed one later fails.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var n int64
	if err := sc.db.QueryRowContext(ctx, takeSequence).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
