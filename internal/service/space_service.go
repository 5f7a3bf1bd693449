package service

import (
	"context"
	"time"

	"bookmarkhub-be/internal/apperr"
	"bookmarkhub-be/internal/dto"
	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/guard"
	"bookmarkhub-be/internal/pkg/logger"
	"bookmarkhub-be/internal/repository/specification"
	"bookmarkhub-be/internal/repository/unitofwork"
	"bookmarkhub-be/pkg/events"
	pktNats "bookmarkhub-be/pkg/nats"

	"github.com/google/uuid"
)

type ISpaceService interface {
	Create(ctx context.Context, callerId uuid.UUID, req *dto.CreateSpaceRequest) (*dto.CreateSpaceResponse, error)
	Rename(ctx context.Context, callerId uuid.UUID, req *dto.RenameSpaceRequest) error
	UpdateDescription(ctx context.Context, callerId uuid.UUID, req *dto.UpdateSpaceDescriptionRequest) error
	Delete(ctx context.Context, callerId uuid.UUID, id uuid.UUID) error
	GetAll(ctx context.Context, callerId uuid.UUID) ([]*dto.GetAllSpaceResponse, error)
	AddBookmark(ctx context.Context, callerId uuid.UUID, spaceId, bookmarkId uuid.UUID) error
	RemoveBookmark(ctx context.Context, callerId uuid.UUID, spaceId, bookmarkId uuid.UUID) error
}

type spaceService struct {
	uowFactory     unitofwork.RepositoryFactory
	accessGuard    *guard.Guard
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewSpaceService(
	uowFactory unitofwork.RepositoryFactory,
	accessGuard *guard.Guard,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISpaceService {
	return &spaceService{
		uowFactory:     uowFactory,
		accessGuard:    accessGuard,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Create fails with Conflict when the caller already has an ACTIVE space
// under that name. The declared unique index spans tombstoned rows too; the
// check here is deliberately scoped to active ones.
func (c *spaceService) Create(ctx context.Context, callerId uuid.UUID, req *dto.CreateSpaceRequest) (*dto.CreateSpaceResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.SpaceRepository().Count(ctx,
		specification.UserOwnedBy{UserID: callerId},
		specification.BySpaceName{Name: req.Name},
	)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("space name %q already in use", req.Name)
	}

	space := entity.UserSpace{
		Id:          uuid.New(),
		UserId:      callerId,
		SpaceName:   req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := uow.SpaceRepository().Create(ctx, &space); err != nil {
		return nil, err
	}

	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SPACE_CREATED",
			Data: map[string]interface{}{
				"space_id": space.Id,
				"user_id":  callerId,
				"name":     space.SpaceName,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil && c.logger != nil {
			c.logger.Warn("space", "Failed to publish SPACE_CREATED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.CreateSpaceResponse{Id: space.Id}, nil
}

func (c *spaceService) Rename(ctx context.Context, callerId uuid.UUID, req *dto.RenameSpaceRequest) error {
	if err := c.accessGuard.RequireSpaceOwner(ctx, callerId, req.Id); err != nil {
		return err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	space, err := uow.SpaceRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if space == nil {
		return apperr.NotFound("space %s", req.Id)
	}
	if space.SpaceName == req.Name {
		return nil
	}

	count, err := uow.SpaceRepository().Count(ctx,
		specification.UserOwnedBy{UserID: callerId},
		specification.BySpaceName{Name: req.Name},
	)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("space name %q already in use", req.Name)
	}

	space.SpaceName = req.Name
	return uow.SpaceRepository().Update(ctx, space)
}

func (c *spaceService) UpdateDescription(ctx context.Context, callerId uuid.UUID, req *dto.UpdateSpaceDescriptionRequest) error {
	if err := c.accessGuard.RequireSpaceOwner(ctx, callerId, req.Id); err != nil {
		return err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	space, err := uow.SpaceRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if space == nil {
		return apperr.NotFound("space %s", req.Id)
	}

	space.Description = req.Description
	return uow.SpaceRepository().Update(ctx, space)
}

// Delete tombstones the space. Memberships stay in place; they become
// invisible through the active-filter join.
func (c *spaceService) Delete(ctx context.Context, callerId uuid.UUID, id uuid.UUID) error {
	if err := c.accessGuard.RequireSpaceOwner(ctx, callerId, id); err != nil {
		return err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.SpaceRepository().SoftDelete(ctx, id)
}

func (c *spaceService) GetAll(ctx context.Context, callerId uuid.UUID) ([]*dto.GetAllSpaceResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	spaces, err := uow.SpaceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: callerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetAllSpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		result = append(result, &dto.GetAllSpaceResponse{
			Id:          s.Id,
			Name:        s.SpaceName,
			Description: s.Description,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return result, nil
}

func (c *spaceService) AddBookmark(ctx context.Context, callerId uuid.UUID, spaceId, bookmarkId uuid.UUID) error {
	if err := c.accessGuard.RequireSpaceOwner(ctx, callerId, spaceId); err != nil {
		return err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	bookmark, err := uow.BookmarkRepository().FindOne(ctx, specification.ByID{ID: bookmarkId})
	if err != nil {
		return err
	}
	if bookmark == nil {
		return apperr.NotFound("bookmark %s", bookmarkId)
	}

	return uow.SpaceBookmarkRepository().Upsert(ctx, spaceId, bookmarkId)
}

func (c *spaceService) RemoveBookmark(ctx context.Context, callerId uuid.UUID, spaceId, bookmarkId uuid.UUID) error {
	if err := c.accessGuard.RequireSpaceOwner(ctx, callerId, spaceId); err != nil {
		return err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	_, err := uow.SpaceBookmarkRepository().SoftRemove(ctx, spaceId, bookmarkId)
	return err
}
