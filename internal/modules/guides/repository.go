package guides

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

// Repository handles underwriter appetite guide database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new guide repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "guides").Logger(),
	}
}

// guideColumns avoids SELECT * so schema additions don't break scans
const guideColumns = `id, underwriter_name, target_sectors, specialty_focus, geographic_coverage,
risk_appetite, minimum_premium, maximum_premium, exclusions, notes, active, created_at, updated_at`

// List returns all guides, optionally restricted to active ones, ordered by
// underwriter name.
func (r *Repository) List(activeOnly bool) ([]AppetiteGuide, error) {
	query := "SELECT " + guideColumns + " FROM underwriter_appetites"
	if activeOnly {
		query += " WHERE active = 1"
	}
	query += " ORDER BY underwriter_name COLLATE NOCASE"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query appetite guides: %w", err)
	}
	defer rows.Close()

	var out []AppetiteGuide
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appetite guide: %w", err)
		}
		out = append(out, guide)
	}
	return out, rows.Err()
}

// Get returns a guide by id, or nil if it does not exist.
func (r *Repository) Get(id int64) (*AppetiteGuide, error) {
	rows, err := r.db.Query("SELECT "+guideColumns+" FROM underwriter_appetites WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query appetite guide %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	guide, err := scanGuide(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan appetite guide %d: %w", id, err)
	}
	return &guide, nil
}

// Create inserts a new guide and returns its id. The record is sanitized at
// this boundary so the scorer always sees clean data.
func (r *Repository) Create(guide AppetiteGuide) (int64, error) {
	guide.AppetiteRecord = appetite.SanitizeRecord(guide.AppetiteRecord)
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.Exec(`
		INSERT INTO underwriter_appetites
			(underwriter_name, target_sectors, specialty_focus, geographic_coverage,
			 risk_appetite, minimum_premium, maximum_premium, exclusions, notes, active,
			 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		guide.UnderwriterName,
		marshalList(guide.TargetSectors),
		marshalList(guide.SpecialtyFocus),
		marshalList(guide.GeographicCoverage),
		guide.RiskAppetite,
		guide.MinimumPremium,
		guide.MaximumPremium,
		marshalList(guide.Exclusions),
		guide.Notes,
		guide.Active,
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert appetite guide: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read appetite guide id: %w", err)
	}

	r.log.Debug().Int64("id", id).Str("underwriter", guide.UnderwriterName).Msg("Appetite guide created")
	return id, nil
}

// Update replaces a guide's fields. Returns false if the id does not exist.
func (r *Repository) Update(id int64, guide AppetiteGuide) (bool, error) {
	guide.AppetiteRecord = appetite.SanitizeRecord(guide.AppetiteRecord)
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.Exec(`
		UPDATE underwriter_appetites SET
			underwriter_name = ?, target_sectors = ?, specialty_focus = ?,
			geographic_coverage = ?, risk_appetite = ?, minimum_premium = ?,
			maximum_premium = ?, exclusions = ?, notes = ?, active = ?, updated_at = ?
		WHERE id = ?`,
		guide.UnderwriterName,
		marshalList(guide.TargetSectors),
		marshalList(guide.SpecialtyFocus),
		marshalList(guide.GeographicCoverage),
		guide.RiskAppetite,
		guide.MinimumPremium,
		guide.MaximumPremium,
		marshalList(guide.Exclusions),
		guide.Notes,
		guide.Active,
		now,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update appetite guide %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result for guide %d: %w", id, err)
	}
	return affected > 0, nil
}

// Delete removes a guide. Returns false if the id does not exist.
func (r *Repository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec("DELETE FROM underwriter_appetites WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete appetite guide %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result for guide %d: %w", id, err)
	}
	return affected > 0, nil
}

func scanGuide(rows *sql.Rows) (AppetiteGuide, error) {
	var (
		guide                          AppetiteGuide
		sectors, focus, coverage, excl string
		minPremium, maxPremium         sql.NullFloat64
	)

	err := rows.Scan(
		&guide.ID,
		&guide.UnderwriterName,
		&sectors,
		&focus,
		&coverage,
		&guide.RiskAppetite,
		&minPremium,
		&maxPremium,
		&excl,
		&guide.Notes,
		&guide.Active,
		&guide.CreatedAt,
		&guide.UpdatedAt,
	)
	if err != nil {
		return guide, err
	}

	guide.TargetSectors = unmarshalList(sectors)
	guide.SpecialtyFocus = unmarshalList(focus)
	guide.GeographicCoverage = unmarshalList(coverage)
	guide.Exclusions = unmarshalList(excl)
	if minPremium.Valid {
		guide.MinimumPremium = &minPremium.Float64
	}
	if maxPremium.Valid {
		guide.MaximumPremium = &maxPremium.Float64
	}

	return guide, nil
}

// marshalList stores string sets as JSON text columns
func marshalList(entries []string) string {
	if len(entries) == 0 {
		return "[]"
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// unmarshalList tolerates malformed column content by returning nil
func unmarshalList(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}
