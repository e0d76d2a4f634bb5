package guides

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE underwriter_appetites (
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
		)
	`)
	require.NoError(t, err)

	return db
}

func testGuide(name string) AppetiteGuide {
	minPremium := 10000.0
	return AppetiteGuide{
		AppetiteRecord: appetite.AppetiteRecord{
			UnderwriterName:    name,
			TargetSectors:      []string{"Technology", "Retail"},
			SpecialtyFocus:     []string{"Cyber"},
			GeographicCoverage: []string{"UK"},
			RiskAppetite:       "moderate",
			MinimumPremium:     &minPremium,
			Exclusions:         []string{"Mining"},
		},
		Notes:  "prefers clean claims history",
		Active: true,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	log := zerolog.New(nil).Level(zerolog.Disabled)
	repo := NewRepository(db, log)

	id, err := repo.Create(testGuide("Acme Underwriting"))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	guide, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, guide)

	assert.Equal(t, "Acme Underwriting", guide.UnderwriterName)
	assert.Equal(t, []string{"Technology", "Retail"}, guide.TargetSectors)
	assert.Equal(t, []string{"Cyber"}, guide.SpecialtyFocus)
	assert.Equal(t, []string{"UK"}, guide.GeographicCoverage)
	assert.Equal(t, "moderate", guide.RiskAppetite)
	require.NotNil(t, guide.MinimumPremium)
	assert.Equal(t, 10000.0, *guide.MinimumPremium)
	assert.Nil(t, guide.MaximumPremium)
	assert.Equal(t, []string{"Mining"}, guide.Exclusions)
	assert.True(t, guide.Active)
	assert.NotEmpty(t, guide.CreatedAt)
}

func TestRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	guide, err := repo.Get(999)
	require.NoError(t, err)
	assert.Nil(t, guide)
}

func TestRepository_ListActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	active := testGuide("Active UW")
	inactive := testGuide("Dormant UW")
	inactive.Active = false

	_, err := repo.Create(active)
	require.NoError(t, err)
	_, err = repo.Create(inactive)
	require.NoError(t, err)

	all, err := repo.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := repo.List(true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "Active UW", activeOnly[0].UnderwriterName)
}

func TestRepository_ListOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	for _, name := range []string{"zeta Syndicate", "Alpha Mutual", "beta Re"} {
		_, err := repo.Create(testGuide(name))
		require.NoError(t, err)
	}

	all, err := repo.List(false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alpha Mutual", all[0].UnderwriterName)
	assert.Equal(t, "beta Re", all[1].UnderwriterName)
	assert.Equal(t, "zeta Syndicate", all[2].UnderwriterName)
}

func TestRepository_CreateSanitizesRecord(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	guide := testGuide("  Messy UW  ")
	guide.TargetSectors = []string{" Tech ", "tech", ""}

	id, err := repo.Create(guide)
	require.NoError(t, err)

	stored, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Messy UW", stored.UnderwriterName)
	assert.Equal(t, []string{"Tech"}, stored.TargetSectors)
}

func TestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	id, err := repo.Create(testGuide("Acme Underwriting"))
	require.NoError(t, err)

	updated := testGuide("Acme Underwriting")
	updated.RiskAppetite = "aggressive"
	updated.Active = false

	ok, err := repo.Update(id, updated)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "aggressive", stored.RiskAppetite)
	assert.False(t, stored.Active)

	ok, err = repo.Update(999, updated)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))

	id, err := repo.Create(testGuide("Acme Underwriting"))
	require.NoError(t, err)

	ok, err := repo.Delete(id)
	require.NoError(t, err)
	assert.True(t, ok)

	guide, err := repo.Get(id)
	require.NoError(t, err)
	assert.Nil(t, guide)

	ok, err = repo.Delete(id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecords(t *testing.T) {
	guideList := []AppetiteGuide{testGuide("A"), testGuide("B")}

	records := Records(guideList)

	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].UnderwriterName)
	assert.Equal(t, "B", records[1].UnderwriterName)
}
