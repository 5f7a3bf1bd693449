package implementation

import (
	"context"
	"testing"
	"time"

	"bookmarkhub-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionEnsure_CreatedOnceThenNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPartitionRepository(db)
	ctx := context.Background()

	seg := entity.BookmarkPartition{
		Name:     "bookmarks_y2026m09",
		StartsAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	created, err := repo.Ensure(ctx, &seg)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Ensure(ctx, &seg)
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPartitionFindAll_OrderedByStart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPartitionRepository(db)
	ctx := context.Background()

	later := entity.BookmarkPartition{
		Name:     "bookmarks_y2026m10",
		StartsAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	earlier := entity.BookmarkPartition{
		Name:     "bookmarks_y2026m09",
		StartsAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := repo.Ensure(ctx, &later)
	require.NoError(t, err)
	_, err = repo.Ensure(ctx, &earlier)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "bookmarks_y2026m09", all[0].Name)
	assert.Equal(t, "bookmarks_y2026m10", all[1].Name)
}
