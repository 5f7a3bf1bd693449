package implementation

import (
	"context"
	"testing"

	"bookmarkhub-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceBookmarkUpsert_RepeatAndReactivate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpaceBookmarkRepository(db)
	ctx := context.Background()

	spaceId := uuid.New()
	bookmarkId := uuid.New()

	require.NoError(t, repo.Upsert(ctx, spaceId, bookmarkId))
	require.NoError(t, repo.Upsert(ctx, spaceId, bookmarkId))

	removed, err := repo.SoftRemove(ctx, spaceId, bookmarkId)
	require.NoError(t, err)
	assert.True(t, removed)

	require.NoError(t, repo.Upsert(ctx, spaceId, bookmarkId))

	memberships, err := repo.FindActiveBySpace(ctx, spaceId)
	require.NoError(t, err)
	assert.Len(t, memberships, 1)

	var total int64
	require.NoError(t, db.Unscoped().Model(&model.SpaceBookmark{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestSpaceBookmarkSoftRemove_RepeatNoOps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpaceBookmarkRepository(db)
	ctx := context.Background()

	spaceId := uuid.New()
	bookmarkId := uuid.New()
	require.NoError(t, repo.Upsert(ctx, spaceId, bookmarkId))

	removed, err := repo.SoftRemove(ctx, spaceId, bookmarkId)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.SoftRemove(ctx, spaceId, bookmarkId)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = repo.SoftRemove(ctx, uuid.New(), bookmarkId)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSpaceBookmarkFindActiveByBookmarkIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpaceBookmarkRepository(db)
	ctx := context.Background()

	spaceA := uuid.New()
	spaceB := uuid.New()
	bookmarkId := uuid.New()
	otherBookmark := uuid.New()

	require.NoError(t, repo.Upsert(ctx, spaceA, bookmarkId))
	require.NoError(t, repo.Upsert(ctx, spaceB, bookmarkId))
	require.NoError(t, repo.Upsert(ctx, spaceA, otherBookmark))

	_, err := repo.SoftRemove(ctx, spaceB, bookmarkId)
	require.NoError(t, err)

	memberships, err := repo.FindActiveByBookmarkIDs(ctx, []uuid.UUID{bookmarkId})
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, spaceA, memberships[0].SpaceId)

	empty, err := repo.FindActiveByBookmarkIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
