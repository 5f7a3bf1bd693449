package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpaceRef is the slice element attached to an AggregateRow: one active
// membership of the bookmark in an active space.
type SpaceRef struct {
	SpaceId     uuid.UUID
	SpaceName   string
	Description string
}

// AggregateRow is the denormalized per-user view of one active bookmark and
// the active spaces it belongs to. Rows carry no independent truth: they are
// rebuilt wholesale on every refresh and are stale in between.
type AggregateRow struct {
	UserId      uuid.UUID
	BookmarkId  uuid.UUID
	Title       string
	Description string
	ImageURL    string
	SourceURL   string
	SourceType  string
	CreatedAt   time.Time
	Spaces      []SpaceRef
}
