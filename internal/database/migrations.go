package database

import "fmt"

// schema contains the full table definitions. Statements are idempotent so
// Migrate can run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS underwriter_appetites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		underwriter_name TEXT NOT NULL UNIQUE,
		target_sectors TEXT NOT NULL DEFAULT '[]',
		specialty_focus TEXT NOT NULL DEFAULT '[]',
		geographic_coverage TEXT NOT NULL DEFAULT '[]',
		risk_appetite TEXT NOT NULL DEFAULT '',
		minimum_premium REAL,
		maximum_premium REAL,
		exclusions TEXT NOT NULL DEFAULT '[]',
		notes TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS client_profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		industry TEXT NOT NULL DEFAULT '',
		revenue_band TEXT NOT NULL DEFAULT '',
		risk_profile TEXT NOT NULL DEFAULT '',
		jurisdiction TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS match_runs (
		id TEXT PRIMARY KEY,
		client_id INTEGER NOT NULL,
		client_name TEXT NOT NULL DEFAULT '',
		top_matches TEXT NOT NULL DEFAULT '[]',
		nearest_misses TEXT NOT NULL DEFAULT '[]',
		top_score INTEGER NOT NULL DEFAULT 0,
		strong_match_count INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_match_runs_client ON match_runs(client_id)`,

	`CREATE INDEX IF NOT EXISTS idx_match_runs_created ON match_runs(created_at)`,

	`CREATE TABLE IF NOT EXISTS intelligence_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		payload TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

// Migrate creates or updates the schema
func (db *DB) Migrate() error {
	for _, stmt := range schema {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed for %s: %w", db.name, err)
		}
	}
	return nil
}
