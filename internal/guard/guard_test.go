package guard

import (
	"context"
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

func setupGuard(t *testing.T) (*Guard, unitofwork.RepositoryFactory) {
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
	return NewGuard(uowFactory), uowFactory
}

func TestRequireBookmarkRead(t *testing.T) {
	g, uowFactory := setupGuard(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	callerId := uuid.New()
	bookmarkId := uuid.New()

	t.Run("denied without a claim", func(t *testing.T) {
		err := g.RequireBookmarkRead(ctx, callerId, bookmarkId)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("allowed with an active claim", func(t *testing.T) {
		require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, callerId, bookmarkId))
		assert.NoError(t, g.RequireBookmarkRead(ctx, callerId, bookmarkId))
	})

	t.Run("denied again after the claim is tombstoned", func(t *testing.T) {
		_, err := uow.UserBookmarkRepository().SoftRemove(ctx, callerId, bookmarkId)
		require.NoError(t, err)
		err = g.RequireBookmarkRead(ctx, callerId, bookmarkId)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("a claim never transfers between users", func(t *testing.T) {
		other := uuid.New()
		require.NoError(t, uow.UserBookmarkRepository().Upsert(ctx, callerId, bookmarkId))
		err := g.RequireBookmarkRead(ctx, other, bookmarkId)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})
}

func TestRequireSpaceOwner(t *testing.T) {
	g, uowFactory := setupGuard(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	owner := uuid.New()
	space := entity.UserSpace{
		Id:        uuid.New(),
		UserId:    owner,
		SpaceName: "Reading",
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.SpaceRepository().Create(ctx, &space))

	t.Run("owner passes", func(t *testing.T) {
		assert.NoError(t, g.RequireSpaceOwner(ctx, owner, space.Id))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := g.RequireSpaceOwner(ctx, uuid.New(), space.Id)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("unknown space is not found", func(t *testing.T) {
		err := g.RequireSpaceOwner(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("tombstoned space is not found even for the owner", func(t *testing.T) {
		require.NoError(t, uow.SpaceRepository().SoftDelete(ctx, space.Id))
		err := g.RequireSpaceOwner(ctx, owner, space.Id)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
