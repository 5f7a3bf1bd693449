package entity

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id          uuid.UUID
	Title       string
	Description string
	ImageURL    string
	SourceURL   string
	SourceType  string
	CreatedAt   time.Time
}
