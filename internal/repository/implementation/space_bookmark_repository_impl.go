package implementation

import (
	"context"
	"errors"
	"time"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/mapper"
	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/internal/repository/contract"
	"bookmarkhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SpaceBookmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SpaceBookmarkMapper
}

func NewSpaceBookmarkRepository(db *gorm.DB) contract.SpaceBookmarkRepository {
	return &SpaceBookmarkRepositoryImpl{
		db:     db,
		mapper: mapper.NewSpaceBookmarkMapper(),
	}
}

func (r *SpaceBookmarkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SpaceBookmarkRepositoryImpl) Upsert(ctx context.Context, spaceId, bookmarkId uuid.UUID) error {
	m := &model.SpaceBookmark{
		SpaceId:    spaceId,
		BookmarkId: bookmarkId,
		CreatedAt:  time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "space_id"}, {Name: "bookmark_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"deleted_at": nil,
		}),
	}).Create(m).Error
}

func (r *SpaceBookmarkRepositoryImpl) SoftRemove(ctx context.Context, spaceId, bookmarkId uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.SpaceBookmark{}).
		Where("space_id = ? AND bookmark_id = ?", spaceId, bookmarkId).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SpaceBookmarkRepositoryImpl) FindActiveByBookmarkIDs(ctx context.Context, bookmarkIds []uuid.UUID) ([]*entity.SpaceBookmark, error) {
	if len(bookmarkIds) == 0 {
		return []*entity.SpaceBookmark{}, nil
	}
	var models []*model.SpaceBookmark
	err := r.db.WithContext(ctx).
		Where("bookmark_id IN ?", bookmarkIds).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SpaceBookmarkRepositoryImpl) FindActiveBySpace(ctx context.Context, spaceId uuid.UUID) ([]*entity.SpaceBookmark, error) {
	var models []*model.SpaceBookmark
	err := r.db.WithContext(ctx).
		Where("space_id = ?", spaceId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SpaceBookmarkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SpaceBookmark, error) {
	var m model.SpaceBookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SpaceBookmarkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SpaceBookmark{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
