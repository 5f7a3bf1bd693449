package service

import (
	"context"
	"time"

	"bookmarkhub-be/internal/apperr"
	"bookmarkhub-be/internal/dto"
	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/guard"
	"bookmarkhub-be/internal/partition"
	"bookmarkhub-be/internal/pkg/logger"
	"bookmarkhub-be/internal/repository/specification"
	"bookmarkhub-be/internal/repository/unitofwork"
	"bookmarkhub-be/pkg/events"
	pktNats "bookmarkhub-be/pkg/nats"

	"github.com/google/uuid"
)

type IBookmarkService interface {
	Insert(ctx context.Context, callerId uuid.UUID, req *dto.InsertBookmarkRequest) (*dto.InsertBookmarkResponse, error)
	Show(ctx context.Context, callerId uuid.UUID, id uuid.UUID) (*dto.ShowBookmarkResponse, error)
	AddToCollection(ctx context.Context, callerId uuid.UUID, bookmarkId uuid.UUID) error
	RemoveFromCollection(ctx context.Context, callerId uuid.UUID, bookmarkId uuid.UUID) error
	ListCollection(ctx context.Context, callerId uuid.UUID) ([]*dto.CollectionItemResponse, error)
}

type bookmarkService struct {
	uowFactory       unitofwork.RepositoryFactory
	partitionManager *partition.Manager
	accessGuard      *guard.Guard
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewBookmarkService(
	uowFactory unitofwork.RepositoryFactory,
	partitionManager *partition.Manager,
	accessGuard *guard.Guard,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IBookmarkService {
	return &bookmarkService{
		uowFactory:       uowFactory,
		partitionManager: partitionManager,
		accessGuard:      accessGuard,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// Insert resolves the request to exactly one bookmark id per source URL.
// A duplicate URL returns the existing id with Deduplicated set; it is the
// success path, never an error.
func (c *bookmarkService) Insert(ctx context.Context, callerId uuid.UUID, req *dto.InsertBookmarkRequest) (*dto.InsertBookmarkResponse, error) {
	now := time.Now()

	// Segments bound maintenance cost only; a failure here must not block
	// the write.
	if err := c.partitionManager.EnsurePartitionFor(ctx, now); err != nil && c.logger != nil {
		c.logger.Warn("bookmark", "Failed to ensure bookmark segment", map[string]interface{}{
			"error": err.Error(),
		})
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	bookmark := entity.Bookmark{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SourceURL:   req.SourceURL,
		SourceType:  req.SourceType,
		CreatedAt:   now,
	}

	deduplicated, err := uow.BookmarkRepository().InsertOrGet(ctx, &bookmark)
	if err != nil {
		return nil, err
	}

	if !deduplicated && c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "BOOKMARK_CREATED",
			Data: map[string]interface{}{
				"bookmark_id": bookmark.Id,
				"source_url":  bookmark.SourceURL,
				"caller_id":   callerId,
			},
			OccurredAt: time.Now(),
		}
		// Events are auxiliary; a publish failure never fails the request.
		if err := c.eventPublisher.Publish(ctx, evt); err != nil && c.logger != nil {
			c.logger.Warn("bookmark", "Failed to publish BOOKMARK_CREATED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.InsertBookmarkResponse{
		Id:           bookmark.Id,
		Deduplicated: deduplicated,
	}, nil
}

func (c *bookmarkService) Show(ctx context.Context, callerId uuid.UUID, id uuid.UUID) (*dto.ShowBookmarkResponse, error) {
	if err := c.accessGuard.RequireBookmarkRead(ctx, callerId, id); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	bookmark, err := uow.BookmarkRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperr.NotFound("bookmark %s", id)
	}

	return &dto.ShowBookmarkResponse{
		Id:          bookmark.Id,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		ImageURL:    bookmark.ImageURL,
		SourceURL:   bookmark.SourceURL,
		SourceType:  bookmark.SourceType,
		CreatedAt:   bookmark.CreatedAt,
	}, nil
}

func (c *bookmarkService) AddToCollection(ctx context.Context, callerId uuid.UUID, bookmarkId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	bookmark, err := uow.BookmarkRepository().FindOne(ctx, specification.ByID{ID: bookmarkId})
	if err != nil {
		return err
	}
	if bookmark == nil {
		return apperr.NotFound("bookmark %s", bookmarkId)
	}

	return uow.UserBookmarkRepository().Upsert(ctx, callerId, bookmarkId)
}

// RemoveFromCollection tombstones the caller's claim. Removing an absent or
// already-removed claim is a no-op so client retries stay simple.
func (c *bookmarkService) RemoveFromCollection(ctx context.Context, callerId uuid.UUID, bookmarkId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	_, err := uow.UserBookmarkRepository().SoftRemove(ctx, callerId, bookmarkId)
	return err
}

func (c *bookmarkService) ListCollection(ctx context.Context, callerId uuid.UUID) ([]*dto.CollectionItemResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	associations, err := uow.UserBookmarkRepository().FindActiveByUser(ctx, callerId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CollectionItemResponse, 0, len(associations))
	for _, a := range associations {
		result = append(result, &dto.CollectionItemResponse{
			BookmarkId:  a.BookmarkId,
			CollectedAt: a.CreatedAt,
		})
	}
	return result, nil
}
