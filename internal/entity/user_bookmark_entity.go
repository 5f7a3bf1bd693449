package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserBookmark struct {
	UserId     uuid.UUID
	BookmarkId uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
