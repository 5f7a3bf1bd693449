package unitofwork

import (
	"context"

	"bookmarkhub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BookmarkRepository() contract.BookmarkRepository
	UserBookmarkRepository() contract.UserBookmarkRepository
	SpaceRepository() contract.SpaceRepository
	SpaceBookmarkRepository() contract.SpaceBookmarkRepository
	PartitionRepository() contract.PartitionRepository
}
