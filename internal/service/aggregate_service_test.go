package service

import (
	"context"
	"testing"

	"bookmarkhub-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full read-model lifecycle: collect a bookmark, file it into a space,
// drop it again, refreshing between each step and checking what the user sees.
func TestAggregateLifecycle(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	caller := uuid.New()

	created, err := s.bookmarks.Insert(ctx, caller, insertRequest("https://example.com/a"))
	require.NoError(t, err)

	// A second insert of the same URL converges on the same id.
	again, err := s.bookmarks.Insert(ctx, caller, insertRequest("https://example.com/a"))
	require.NoError(t, err)
	require.True(t, again.Deduplicated)
	require.Equal(t, created.Id, again.Id)

	require.NoError(t, s.bookmarks.AddToCollection(ctx, caller, created.Id))
	require.NoError(t, s.aggregates.Refresh(ctx))

	rows, err := s.aggregates.GetActiveBookmarksWithSpaces(ctx, caller)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.Id, rows[0].BookmarkId)
	assert.Empty(t, rows[0].Spaces)

	space, err := s.spaces.Create(ctx, caller, &dto.CreateSpaceRequest{Name: "Reading"})
	require.NoError(t, err)
	require.NoError(t, s.spaces.AddBookmark(ctx, caller, space.Id, created.Id))

	// The snapshot is stale until the next refresh.
	rows, err = s.aggregates.GetActiveBookmarksWithSpaces(ctx, caller)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Spaces)

	require.NoError(t, s.aggregates.Refresh(ctx))
	rows, err = s.aggregates.GetActiveBookmarksWithSpaces(ctx, caller)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Spaces, 1)
	assert.Equal(t, "Reading", rows[0].Spaces[0].SpaceName)

	require.NoError(t, s.bookmarks.RemoveFromCollection(ctx, caller, created.Id))
	require.NoError(t, s.aggregates.Refresh(ctx))

	rows, err = s.aggregates.GetActiveBookmarksWithSpaces(ctx, caller)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAggregateRead_FallsBackToLiveBeforeFirstRefresh(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	caller := uuid.New()

	created, err := s.bookmarks.Insert(ctx, caller, insertRequest("https://example.com/a"))
	require.NoError(t, err)
	require.NoError(t, s.bookmarks.AddToCollection(ctx, caller, created.Id))

	// No snapshot exists yet; the read composes the stores directly.
	rows, err := s.aggregates.GetActiveBookmarksWithSpaces(ctx, caller)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.Id, rows[0].BookmarkId)
}

func TestAggregateRead_DeletedSpaceDropsFromRows(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	caller := uuid.New()

	created, err := s.bookmarks.Insert(ctx, caller, insertRequest("https://example.com/a"))
	require.NoError(t, err)
	require.NoError(t, s.bookmarks.AddToCollection(ctx, caller, created.Id))

	space, err := s.spaces.Create(ctx, caller, &dto.CreateSpaceRequest{Name: "Reading"})
	require.NoError(t, err)
	require.NoError(t, s.spaces.AddBookmark(ctx, caller, space.Id, created.Id))
	require.NoError(t, s.spaces.Delete(ctx, caller, space.Id))

	require.NoError(t, s.aggregates.Refresh(ctx))

	rows, err := s.aggregates.GetActiveBookmarksWithSpaces(ctx, caller)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Spaces)
}

func TestMaintenanceRun_ReportsSnapshotVersion(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	resp, err := s.maintenance.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.SnapshotVersion)
	assert.Equal(t, 2, resp.Partitions)
	assert.NotEmpty(t, resp.Duration)

	resp, err = s.maintenance.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.SnapshotVersion)
	assert.Equal(t, 2, resp.Partitions)
}
