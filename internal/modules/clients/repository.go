package clients

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles client profile database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new client repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "clients").Logger(),
	}
}

const clientColumns = `id, name, industry, revenue_band, risk_profile, jurisdiction, created_at, updated_at`

// List returns all client records ordered by name.
func (r *Repository) List() ([]ClientRecord, error) {
	rows, err := r.db.Query("SELECT " + clientColumns + " FROM client_profiles ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("failed to query client profiles: %w", err)
	}
	defer rows.Close()

	var out []ClientRecord
	for rows.Next() {
		var c ClientRecord
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.RevenueBand, &c.RiskProfile,
			&c.Jurisdiction, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client profile: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get returns a client by id, or nil if it does not exist.
func (r *Repository) Get(id int64) (*ClientRecord, error) {
	var c ClientRecord
	err := r.db.QueryRow("SELECT "+clientColumns+" FROM client_profiles WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Industry, &c.RevenueBand, &c.RiskProfile,
			&c.Jurisdiction, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query client profile %d: %w", id, err)
	}
	return &c, nil
}

// Create inserts a new client record and returns its id.
func (r *Repository) Create(c ClientRecord) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.Exec(`
		INSERT INTO client_profiles (name, industry, revenue_band, risk_profile, jurisdiction, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Industry, c.RevenueBand, c.RiskProfile, c.Jurisdiction, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read client profile id: %w", err)
	}

	r.log.Debug().Int64("id", id).Str("name", c.Name).Msg("Client profile created")
	return id, nil
}

// Update replaces a client's fields. Returns false if the id does not exist.
func (r *Repository) Update(id int64, c ClientRecord) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.Exec(`
		UPDATE client_profiles SET
			name = ?, industry = ?, revenue_band = ?, risk_profile = ?, jurisdiction = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Industry, c.RevenueBand, c.RiskProfile, c.Jurisdiction, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to update client profile %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result for client %d: %w", id, err)
	}
	return affected > 0, nil
}

// Delete removes a client record. Returns false if the id does not exist.
func (r *Repository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec("DELETE FROM client_profiles WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete client profile %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result for client %d: %w", id, err)
	}
	return affected > 0, nil
}
