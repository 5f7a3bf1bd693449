package implementation

import (
	"context"
	"errors"

	"bookmarkhub-be/internal/apperr"
	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/mapper"
	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/internal/repository/contract"
	"bookmarkhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpaceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserSpaceMapper
}

func NewSpaceRepository(db *gorm.DB) contract.SpaceRepository {
	return &SpaceRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserSpaceMapper(),
	}
}

func (r *SpaceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create surfaces a unique-index hit as Conflict. The index spans tombstoned
// rows too, so a soft-deleted space still occupies its name at this level even
// when the service's active-scoped check passed.
func (r *SpaceRepositoryImpl) Create(ctx context.Context, space *entity.UserSpace) error {
	m := r.mapper.ToModel(space)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("space name %q already in use", space.SpaceName)
		}
		return err
	}
	*space = *r.mapper.ToEntity(m)
	return nil
}

func (r *SpaceRepositoryImpl) Update(ctx context.Context, space *entity.UserSpace) error {
	m := r.mapper.ToModel(space)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("space name %q already in use", space.SpaceName)
		}
		return err
	}
	*space = *r.mapper.ToEntity(m)
	return nil
}

func (r *SpaceRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserSpace{}, id).Error
}

func (r *SpaceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSpace, error) {
	var m model.UserSpace
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SpaceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSpace, error) {
	var models []*model.UserSpace
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SpaceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserSpace{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
