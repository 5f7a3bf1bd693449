package model

import "time"

// BookmarkPartition registers a calendar-month segment of the bookmarks
// table. Segments are a maintenance concern only: they never participate in
// dedup or read paths.
type BookmarkPartition struct {
	Name      string    `gorm:"type:varchar(64);primaryKey"`
	StartsAt  time.Time `gorm:"not null"`
	EndsAt    time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BookmarkPartition) TableName() string {
	return "bookmark_partitions"
}
