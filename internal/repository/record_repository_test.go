package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/borough-records-go/internal/database"
	"github.com/jengzang/borough-records-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(db))
	return db
}

func TestRecordRepository_RoundTrip(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t))

	in := []models.RawRecord{
		{
			Date:    "2022-01-02",
			Borough: "Brent",
			Measurements: models.Measurements{
				TransitGMR: models.Int(-45),
				NewDeaths:  models.Int(3),
			},
		},
		{Date: "2022-01-01", Borough: "Camden"},
	}
	require.NoError(t, repo.InsertBatch(in))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	out, err := repo.Records()
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.False(t, out[1].NewDeaths.Valid, "NULL columns scan as absent")
}

func TestRecordRepository_DeleteAll(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t))
	require.NoError(t, repo.InsertBatch([]models.RawRecord{{Date: "2022-01-01", Borough: "Brent"}}))
	require.NoError(t, repo.DeleteAll())

	out, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, out)
}
