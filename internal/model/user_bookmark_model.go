package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBookmark is a user's claim on a bookmark. The composite primary key is
// the serialization point for concurrent Add/Remove on the same pair: at most
// one row per (user, bookmark) ever exists, cycling between active and
// tombstoned via DeletedAt.
type UserBookmark struct {
	UserId     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BookmarkId uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (UserBookmark) TableName() string {
	return "user_bookmarks"
}
