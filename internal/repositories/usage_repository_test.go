package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marryday/internal/models/db_models"
	"marryday/internal/testutil"
)

func TestUsageRepository_CountForDay_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUsageRepository(db)
	account := testutil.TestAccount(t, db)

	count, err := repo.CountForDay(context.Background(), account.ID, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUsageRepository_Increment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUsageRepository(db)
	account := testutil.TestAccount(t, db)

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Increment(context.Background(), account.ID, "2026-08-29"))

		count, err := repo.CountForDay(context.Background(), account.ID, "2026-08-29")
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	var rows int64
	require.NoError(t, db.Model(&db_models.AIUsage{}).Where("account_id = ?", account.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows, "increments land on one row per day")
}

func TestUsageRepository_Increment_DaysAreIndependent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUsageRepository(db)
	account := testutil.TestAccount(t, db)

	require.NoError(t, repo.Increment(context.Background(), account.ID, "2026-08-29"))
	require.NoError(t, repo.Increment(context.Background(), account.ID, "2026-08-30"))

	count, err := repo.CountForDay(context.Background(), account.ID, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
