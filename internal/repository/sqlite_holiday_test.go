package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayRepo_UpsertAndList(t *testing.T) {
	repo := NewSQLiteHolidayRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.Holiday{Date: "2025-05-05", Name: "こどもの日"}, "file"))
	require.NoError(t, repo.Upsert(ctx, domain.Holiday{Date: "2025-01-01", Name: "New Year"}, "file"))
	require.NoError(t, repo.Upsert(ctx, domain.Holiday{Date: "2025-01-01", Name: "元日"}, "google"))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Holiday{
		{Date: "2025-01-01", Name: "元日"},
		{Date: "2025-05-05", Name: "こどもの日"},
	}, all)

	ranged, err := repo.ListRange(ctx, "2025-02-01", "2025-05-05")
	require.NoError(t, err)
	assert.Equal(t, []domain.Holiday{{Date: "2025-05-05", Name: "こどもの日"}}, ranged)
}

func TestHolidayRepo_DeleteRange(t *testing.T) {
	repo := NewSQLiteHolidayRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, h := range []domain.Holiday{
		{Date: "2024-12-31", Name: "年末休日"},
		{Date: "2025-01-01", Name: "元日"},
		{Date: "2025-12-23", Name: "天皇誕生日"},
	} {
		require.NoError(t, repo.Upsert(ctx, h, "defaults"))
	}

	n, err := repo.DeleteRange(ctx, "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Holiday{{Date: "2024-12-31", Name: "年末休日"}}, all)
}
