package service

import (
	"context"
	"errors"

	"bookmarkhub-be/internal/aggregate"
	"bookmarkhub-be/internal/apperr"
	"bookmarkhub-be/internal/dto"
	"bookmarkhub-be/internal/entity"

	"github.com/google/uuid"
)

type IAggregateService interface {
	Refresh(ctx context.Context) error
	// GetActiveBookmarksWithSpaces serves from the latest snapshot and falls
	// back to the live join when no snapshot is available.
	GetActiveBookmarksWithSpaces(ctx context.Context, callerId uuid.UUID) ([]*dto.AggregateRowResponse, error)
	QueryLive(ctx context.Context, callerId uuid.UUID) ([]*dto.AggregateRowResponse, error)
}

type aggregateService struct {
	index *aggregate.Index
}

func NewAggregateService(index *aggregate.Index) IAggregateService {
	return &aggregateService{index: index}
}

func (c *aggregateService) Refresh(ctx context.Context) error {
	return c.index.Refresh(ctx)
}

func (c *aggregateService) GetActiveBookmarksWithSpaces(ctx context.Context, callerId uuid.UUID) ([]*dto.AggregateRowResponse, error) {
	rows, err := c.index.Query(callerId)
	if err != nil {
		if errors.Is(err, apperr.ErrUnavailable) {
			return c.QueryLive(ctx, callerId)
		}
		return nil, err
	}
	return mapAggregateRows(rows), nil
}

func (c *aggregateService) QueryLive(ctx context.Context, callerId uuid.UUID) ([]*dto.AggregateRowResponse, error) {
	rows, err := c.index.QueryLive(ctx, callerId)
	if err != nil {
		return nil, err
	}
	return mapAggregateRows(rows), nil
}

func mapAggregateRows(rows []*entity.AggregateRow) []*dto.AggregateRowResponse {
	result := make([]*dto.AggregateRowResponse, 0, len(rows))
	for _, r := range rows {
		spaces := make([]dto.SpaceRefResponse, 0, len(r.Spaces))
		for _, s := range r.Spaces {
			spaces = append(spaces, dto.SpaceRefResponse{
				SpaceId:     s.SpaceId,
				SpaceName:   s.SpaceName,
				Description: s.Description,
			})
		}
		result = append(result, &dto.AggregateRowResponse{
			BookmarkId:  r.BookmarkId,
			Title:       r.Title,
			Description: r.Description,
			ImageURL:    r.ImageURL,
			SourceURL:   r.SourceURL,
			SourceType:  r.SourceType,
			CreatedAt:   r.CreatedAt,
			Spaces:      spaces,
		})
	}
	return result
}
