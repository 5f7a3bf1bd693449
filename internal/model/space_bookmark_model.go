package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpaceBookmark ties a bookmark into a space, same tombstone lifecycle as
// UserBookmark keyed on (space_id, bookmark_id).
type SpaceBookmark struct {
	SpaceId    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BookmarkId uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (SpaceBookmark) TableName() string {
	return "space_bookmarks"
}
