package contract

import (
	"context"

	"bookmarkhub-be/internal/entity"
)

// PartitionRepository records which time-range segments of the bookmarks
// table exist. The registry itself is storage-engine neutral; segment DDL is
// the partition manager's concern.
type PartitionRepository interface {
	// Ensure registers the segment if absent. Returns true when the row was
	// created by this call.
	Ensure(ctx context.Context, partition *entity.BookmarkPartition) (bool, error)
	FindAll(ctx context.Context) ([]*entity.BookmarkPartition, error)
}
