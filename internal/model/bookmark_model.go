package model

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark rows are write-once. There is deliberately no UpdatedAt and no
// DeletedAt: the record is an immutable fact about a source URL, and identity
// is a pure function of SourceURL (see BookmarkRepository.InsertOrGet).
type Bookmark struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	SourceURL   string    `gorm:"type:text;uniqueIndex;not null"`
	SourceType  string    `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
