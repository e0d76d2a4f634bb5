package clients

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE client_profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			industry TEXT NOT NULL DEFAULT '',
			revenue_band TEXT NOT NULL DEFAULT '',
			risk_profile TEXT NOT NULL DEFAULT '',
			jurisdiction TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	require.NoError(t, err)

	return db
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	id, err := repo.Create(ClientRecord{
		Name:        "Brightline Ltd",
		Industry:    "technology",
		RevenueBand: "1-5m",
		RiskProfile: "medium",
	})
	require.NoError(t, err)

	record, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Brightline Ltd", record.Name)
	assert.Equal(t, "technology", record.Industry)
	assert.Equal(t, "1-5m", record.RevenueBand)
	assert.Equal(t, "medium", record.RiskProfile)
	assert.Empty(t, record.Jurisdiction)
}

func TestRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	record, err := repo.Get(42)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	id, err := repo.Create(ClientRecord{Name: "Brightline Ltd"})
	require.NoError(t, err)

	ok, err := repo.Update(id, ClientRecord{Name: "Brightline Group", Industry: "retail"})
	require.NoError(t, err)
	assert.True(t, ok)

	record, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Brightline Group", record.Name)
	assert.Equal(t, "retail", record.Industry)

	ok, err = repo.Delete(id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientRecord_Profile(t *testing.T) {
	record := ClientRecord{
		Name:        "Brightline Ltd",
		Industry:    " Technology ",
		RevenueBand: " £1-5M ",
		RiskProfile: " Medium ",
	}

	profile := record.Profile("UK")

	assert.Equal(t, "Technology", profile.Industry)
	assert.Equal(t, "1-5m", profile.RevenueBand)
	assert.Equal(t, "medium", profile.RiskProfile)
	assert.Equal(t, "UK", profile.Jurisdiction)

	record.Jurisdiction = "Ireland"
	assert.Equal(t, "Ireland", record.Profile("UK").Jurisdiction)
}
