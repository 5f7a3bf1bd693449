package entity

import (
	"time"

	"github.com/google/uuid"
)

type SpaceBookmark struct {
	SpaceId    uuid.UUID
	BookmarkId uuid.UUID
	CreatedAt  time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
