package guard

import (
	"context"

	"bookmarkhub-be/internal/apperr"
	"bookmarkhub-be/internal/repository/specification"
	"bookmarkhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Guard enforces the visibility policy at the data-access boundary. Services
// call it on every entry point; controllers are never trusted with it.
//
// Policy: a bookmark is readable only through an active claim on it; a space
// and its memberships are touchable by the owning user only.
type Guard struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGuard(uowFactory unitofwork.RepositoryFactory) *Guard {
	return &Guard{uowFactory: uowFactory}
}

// RequireBookmarkRead denies unless the caller holds an active UserBookmark
// referencing the bookmark.
func (g *Guard) RequireBookmarkRead(ctx context.Context, callerId, bookmarkId uuid.UUID) error {
	uow := g.uowFactory.NewUnitOfWork(ctx)
	ok, err := uow.UserBookmarkRepository().ExistsActive(ctx, callerId, bookmarkId)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden("caller %s has no active claim on bookmark %s", callerId, bookmarkId)
	}
	return nil
}

// RequireSpaceOwner denies unless the caller owns the (still active) space.
// A space that does not exist surfaces as NotFound so callers cannot probe
// ownership of arbitrary ids.
func (g *Guard) RequireSpaceOwner(ctx context.Context, callerId, spaceId uuid.UUID) error {
	uow := g.uowFactory.NewUnitOfWork(ctx)
	space, err := uow.SpaceRepository().FindOne(ctx, specification.ByID{ID: spaceId})
	if err != nil {
		return err
	}
	if space == nil {
		return apperr.NotFound("space %s", spaceId)
	}
	if space.UserId != callerId {
		return apperr.Forbidden("caller %s does not own space %s", callerId, spaceId)
	}
	return nil
}
