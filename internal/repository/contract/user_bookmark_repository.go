package contract

import (
	"context"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

// UserBookmarkRepository owns the mutable per-user membership of bookmarks.
// Rows are never physically deleted; removal sets the tombstone and Upsert
// clears it again.
type UserBookmarkRepository interface {
	// Upsert creates the association, reactivates a tombstoned one, or
	// refreshes updated_at on one that is already active. Idempotent.
	Upsert(ctx context.Context, userId, bookmarkId uuid.UUID) error
	// SoftRemove tombstones an active association. Returns false when there
	// was nothing active to remove; that is a no-op, not an error.
	SoftRemove(ctx context.Context, userId, bookmarkId uuid.UUID) (bool, error)
	ExistsActive(ctx context.Context, userId, bookmarkId uuid.UUID) (bool, error)
	FindActiveByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UserBookmark, error)
	// FindAllActive feeds full aggregate rebuilds; it spans every user.
	FindAllActive(ctx context.Context) ([]*entity.UserBookmark, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserBookmark, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
