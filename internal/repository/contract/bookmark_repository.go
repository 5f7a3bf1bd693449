package contract

import (
	"context"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/repository/specification"
)

// BookmarkRepository is the append-only content store. There is no Update and
// no Delete: bookmark records are write-once and shared across users.
type BookmarkRepository interface {
	// InsertOrGet creates the record, or resolves to the existing one when a
	// bookmark with the same source URL already exists. The entity is
	// overwritten with the winning row either way. Returns true when the
	// record already existed.
	InsertOrGet(ctx context.Context, bookmark *entity.Bookmark) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
