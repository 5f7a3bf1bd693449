package dto

import (
	"time"

	"github.com/google/uuid"
)

type InsertBookmarkRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	SourceURL   string `json:"source_url" validate:"required,url"`
	SourceType  string `json:"source_type" validate:"required,max=50"`
}

type InsertBookmarkResponse struct {
	Id uuid.UUID `json:"id"`
	// Deduplicated reports that the source URL was already known and the
	// existing id was returned. This is the designed success path, not an
	// error.
	Deduplicated bool `json:"deduplicated"`
}

type ShowBookmarkResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	SourceURL   string    `json:"source_url"`
	SourceType  string    `json:"source_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type CollectionItemResponse struct {
	BookmarkId  uuid.UUID `json:"bookmark_id"`
	CollectedAt time.Time `json:"collected_at"`
}

type SpaceRefResponse struct {
	SpaceId     uuid.UUID `json:"space_id"`
	SpaceName   string    `json:"space_name"`
	Description string    `json:"description"`
}

type AggregateRowResponse struct {
	BookmarkId  uuid.UUID          `json:"bookmark_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url"`
	SourceURL   string             `json:"source_url"`
	SourceType  string             `json:"source_type"`
	CreatedAt   time.Time          `json:"created_at"`
	Spaces      []SpaceRefResponse `json:"spaces"`
}
