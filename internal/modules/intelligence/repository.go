package intelligence

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository persists intelligence snapshots so dashboard reads don't
// re-aggregate the full run history.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new snapshot repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "intelligence").Logger(),
	}
}

// Save stores a summary as the newest snapshot.
func (r *Repository) Save(summary Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal intelligence summary: %w", err)
	}

	_, err = r.db.Exec(
		"INSERT INTO intelligence_snapshots (payload, created_at) VALUES (?, ?)",
		string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert intelligence snapshot: %w", err)
	}
	return nil
}

// Latest returns the newest snapshot, or nil when none exists yet.
func (r *Repository) Latest() (*Snapshot, error) {
	var (
		snap    Snapshot
		payload string
	)

	err := r.db.QueryRow(`
		SELECT id, payload, created_at FROM intelligence_snapshots
		ORDER BY id DESC LIMIT 1`).
		Scan(&snap.ID, &payload, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest intelligence snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &snap.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intelligence snapshot %d: %w", snap.ID, err)
	}
	return &snap, nil
}

// Prune deletes all but the newest keep snapshots.
func (r *Repository) Prune(keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := r.db.Exec(`
		DELETE FROM intelligence_snapshots
		WHERE id NOT IN (SELECT id FROM intelligence_snapshots ORDER BY id DESC LIMIT ?)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune intelligence snapshots: %w", err)
	}
	return nil
}
