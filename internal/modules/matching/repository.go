package matching

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

// Repository persists match runs
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new match run repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "match_runs").Logger(),
	}
}

// Save inserts a completed match run.
func (r *Repository) Save(run MatchRun) error {
	topMatches, err := json.Marshal(run.Ranked.TopMatches)
	if err != nil {
		return fmt.Errorf("failed to marshal top matches: %w", err)
	}
	nearestMisses, err := json.Marshal(run.Ranked.NearestMisses)
	if err != nil {
		return fmt.Errorf("failed to marshal nearest misses: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO match_runs (id, client_id, client_name, top_matches, nearest_misses,
			top_score, strong_match_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.ClientID, run.ClientName, string(topMatches), string(nearestMisses),
		run.TopScore, run.StrongMatchCount, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match run %s: %w", run.ID, err)
	}

	r.log.Debug().Str("id", run.ID).Int64("client_id", run.ClientID).Msg("Match run saved")
	return nil
}

// Get returns a full match run by id, or nil if it does not exist.
func (r *Repository) Get(id string) (*MatchRun, error) {
	var (
		run                       MatchRun
		topMatches, nearestMisses string
	)

	err := r.db.QueryRow(`
		SELECT id, client_id, client_name, top_matches, nearest_misses,
			top_score, strong_match_count, created_at
		FROM match_runs WHERE id = ?`, id).
		Scan(&run.ID, &run.ClientID, &run.ClientName, &topMatches, &nearestMisses,
			&run.TopScore, &run.StrongMatchCount, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query match run %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(topMatches), &run.Ranked.TopMatches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top matches for run %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(nearestMisses), &run.Ranked.NearestMisses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nearest misses for run %s: %w", id, err)
	}

	return &run, nil
}

// List returns run summaries, newest first. A zero clientID lists runs for
// all clients.
func (r *Repository) List(clientID int64, limit int) ([]RunSummary, error) {
	query := `SELECT id, client_id, client_name, top_score, strong_match_count, created_at
		FROM match_runs`
	args := []interface{}{}
	if clientID > 0 {
		query += " WHERE client_id = ?"
		args = append(args, clientID)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.TopScore,
			&s.StrongMatchCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AllResults streams every stored match result (top matches and nearest
// misses alike) for aggregate analysis.
func (r *Repository) AllResults() ([]appetite.MatchResult, error) {
	rows, err := r.db.Query("SELECT top_matches, nearest_misses FROM match_runs")
	if err != nil {
		return nil, fmt.Errorf("failed to query match run results: %w", err)
	}
	defer rows.Close()

	var out []appetite.MatchResult
	for rows.Next() {
		var topMatches, nearestMisses string
		if err := rows.Scan(&topMatches, &nearestMisses); err != nil {
			return nil, fmt.Errorf("failed to scan match run results: %w", err)
		}

		var batch []appetite.MatchResult
		if err := json.Unmarshal([]byte(topMatches), &batch); err == nil {
			out = append(out, batch...)
		}
		batch = nil
		if err := json.Unmarshal([]byte(nearestMisses), &batch); err == nil {
			out = append(out, batch...)
		}
	}
	return out, rows.Err()
}
