package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndMigrate(t *testing.T) {
	db, err := New(Config{
		Path: filepath.Join(t.TempDir(), "broker.db"),
		Name: "broker",
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "broker", db.Name())
	assert.True(t, filepath.IsAbs(db.Path()))

	// Migrations are idempotent, so a second run must not fail.
	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())

	for _, table := range []string{"underwriter_appetites", "client_profiles", "match_runs", "intelligence_snapshots"} {
		var name string
		err := db.Conn().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "expected table %s to exist", table)
	}
}

func TestBuildConnectionString(t *testing.T) {
	standard := buildConnectionString("/tmp/a.db", ProfileStandard)
	assert.True(t, strings.HasPrefix(standard, "/tmp/a.db?_pragma=journal_mode(WAL)"))
	assert.Contains(t, standard, "synchronous(NORMAL)")
	assert.Contains(t, standard, "foreign_keys(1)")

	cache := buildConnectionString("/tmp/b.db", ProfileCache)
	assert.Contains(t, cache, "synchronous(OFF)")
	assert.Contains(t, cache, "auto_vacuum(FULL)")
}
