package aggregate

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookmarkhub-be/internal/apperr"
	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	index      *Index
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Bookmark{},
		&model.UserBookmark{},
		&model.UserSpace{},
		&model.SpaceBookmark{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	uowFactory := unitofwork.NewRepositoryFactory(db)
	return &fixture{
		db:         db,
		uowFactory: uowFactory,
		index:      NewIndex(uowFactory, nil),
	}
}

func (f *fixture) seedBookmark(t *testing.T, ctx context.Context, url string) uuid.UUID {
	t.Helper()
	b := entity.Bookmark{
		Id:         uuid.New(),
		Title:      "Page",
		SourceURL:  url,
		SourceType: "article",
		CreatedAt:  time.Now(),
	}
	uow := f.uowFactory.NewUnitOfWork(ctx)
	_, err := uow.BookmarkRepository().InsertOrGet(ctx, &b)
	require.NoError(t, err)
	return b.Id
}

func (f *fixture) seedSpace(t *testing.T, ctx context.Context, userId uuid.UUID, name string) uuid.UUID {
	t.Helper()
	s := entity.UserSpace{
		Id:        uuid.New(),
		UserId:    userId,
		SpaceName: name,
		CreatedAt: time.Now(),
	}
	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.SpaceRepository().Create(ctx, &s))
	return s.Id
}

func TestIndexQuery_UnavailableBeforeFirstRefresh(t *testing.T) {
	f := setupFixture(t)

	_, err := f.index.Query(uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
	assert.Equal(t, int64(0), f.index.Version())
}

func TestIndexRefresh_BuildsRowsWithSpaces(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	userId := uuid.New()
	bookmarkId := f.seedBookmark(t, ctx, "https://example.com/a")
	spaceId := f.seedSpace(t, ctx, userId, "Reading")

	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, userId, bookmarkId))
	require.NoError(t, uow.SpaceBookmarkRepository().Upsert(ctx, spaceId, bookmarkId))

	require.NoError(t, f.index.Refresh(ctx))
	assert.Equal(t, int64(1), f.index.Version())

	rows, err := f.index.Query(userId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, bookmarkId, rows[0].BookmarkId)
	assert.Equal(t, "https://example.com/a", rows[0].SourceURL)
	require.Len(t, rows[0].Spaces, 1)
	assert.Equal(t, "Reading", rows[0].Spaces[0].SpaceName)

	other, err := f.index.Query(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestIndexRefresh_SnapshotIsStaleUntilNextRefresh(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	userId := uuid.New()
	bookmarkId := f.seedBookmark(t, ctx, "https://example.com/a")
	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, userId, bookmarkId))

	require.NoError(t, f.index.Refresh(ctx))

	// A write after the refresh is invisible to snapshot reads.
	_, err := uow.UserBookmarkRepository().SoftRemove(ctx, userId, bookmarkId)
	require.NoError(t, err)

	rows, err := f.index.Query(userId)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, f.index.Refresh(ctx))
	assert.Equal(t, int64(2), f.index.Version())

	rows, err = f.index.Query(userId)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestIndexRefresh_TombstonedSpaceMembershipInvisible(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	userId := uuid.New()
	bookmarkId := f.seedBookmark(t, ctx, "https://example.com/a")
	spaceId := f.seedSpace(t, ctx, userId, "Reading")

	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, userId, bookmarkId))
	require.NoError(t, uow.SpaceBookmarkRepository().Upsert(ctx, spaceId, bookmarkId))
	require.NoError(t, uow.SpaceRepository().SoftDelete(ctx, spaceId))

	require.NoError(t, f.index.Refresh(ctx))

	// The membership row is still active in the store, but the space is
	// tombstoned so the join drops it.
	rows, err := f.index.Query(userId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Spaces)
}

func TestIndexRefresh_SpaceListIgnoresSpaceOwnership(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	bookmarkId := f.seedBookmark(t, ctx, "https://example.com/a")
	bobSpace := f.seedSpace(t, ctx, bob, "Bob's Space")

	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, alice, bookmarkId))
	require.NoError(t, uow.SpaceBookmarkRepository().Upsert(ctx, bobSpace, bookmarkId))

	require.NoError(t, f.index.Refresh(ctx))

	rows, err := f.index.Query(alice)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Spaces, 1)
	assert.Equal(t, bobSpace, rows[0].Spaces[0].SpaceId)
}

func TestIndexQueryLive_ReflectsCurrentStoreState(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	userId := uuid.New()
	bookmarkId := f.seedBookmark(t, ctx, "https://example.com/a")
	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, userId, bookmarkId))

	rows, err := f.index.QueryLive(ctx, userId)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = uow.UserBookmarkRepository().SoftRemove(ctx, userId, bookmarkId)
	require.NoError(t, err)

	rows, err = f.index.QueryLive(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestIndexRefresh_OverlappingRefreshUnavailable(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	userId := uuid.New()
	bookmarkId := f.seedBookmark(t, ctx, "https://example.com/a")
	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, userId, bookmarkId))
	require.NoError(t, f.index.Refresh(ctx))

	// Hold the refresh lock as a running rebuild would.
	f.index.refreshMu.Lock()

	err := f.index.Refresh(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnavailable)

	// The prior snapshot stays readable throughout.
	rows, qerr := f.index.Query(userId)
	require.NoError(t, qerr)
	assert.Len(t, rows, 1)
	assert.Equal(t, int64(1), f.index.Version())

	f.index.refreshMu.Unlock()

	require.NoError(t, f.index.Refresh(ctx))
	assert.Equal(t, int64(2), f.index.Version())
}

func TestIndexQuery_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	userId := uuid.New()
	first := f.seedBookmark(t, ctx, "https://example.com/1")
	second := f.seedBookmark(t, ctx, "https://example.com/2")
	uow := f.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, userId, first))
	require.NoError(t, f.index.Refresh(ctx))
	require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, userId, second))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				rows, err := f.index.Query(userId)
				if err != nil {
					t.Errorf("query: %v", err)
					return
				}
				// A reader sees version 1 (one row) or version 2 (two rows),
				// never anything in between.
				if len(rows) != 1 && len(rows) != 2 {
					t.Errorf("partial snapshot observed: %d rows", len(rows))
					return
				}
			}
		}()
	}

	require.NoError(t, f.index.Refresh(ctx))
	close(stop)
	wg.Wait()

	rows, err := f.index.Query(userId)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
