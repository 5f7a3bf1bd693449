package contract

import (
	"context"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SpaceBookmarkRepository owns the membership of bookmarks in spaces, with
// the same tombstone lifecycle as UserBookmarkRepository keyed on
// (space_id, bookmark_id).
type SpaceBookmarkRepository interface {
	Upsert(ctx context.Context, spaceId, bookmarkId uuid.UUID) error
	SoftRemove(ctx context.Context, spaceId, bookmarkId uuid.UUID) (bool, error)
	FindActiveByBookmarkIDs(ctx context.Context, bookmarkIds []uuid.UUID) ([]*entity.SpaceBookmark, error)
	FindActiveBySpace(ctx context.Context, spaceId uuid.UUID) ([]*entity.SpaceBookmark, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SpaceBookmark, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
