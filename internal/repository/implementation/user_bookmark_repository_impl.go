package implementation

import (
	"context"
	"errors"
	"time"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/mapper"
	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/internal/repository/contract"
	"bookmarkhub-be/internal/repository/scope"
	"bookmarkhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserBookmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserBookmarkMapper
}

func NewUserBookmarkRepository(db *gorm.DB) contract.UserBookmarkRepository {
	return &UserBookmarkRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserBookmarkMapper(),
	}
}

func (r *UserBookmarkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert resolves concurrent Add/Add and Add after Remove on the composite
// key in one statement: insert, or on conflict clear the tombstone and bump
// updated_at. The row count per key never exceeds one.
func (r *UserBookmarkRepositoryImpl) Upsert(ctx context.Context, userId, bookmarkId uuid.UUID) error {
	now := time.Now()
	m := &model.UserBookmark{
		UserId:     userId,
		BookmarkId: bookmarkId,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "bookmark_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"deleted_at": nil,
			"updated_at": now,
		}),
	}).Create(m).Error
}

func (r *UserBookmarkRepositoryImpl) SoftRemove(ctx context.Context, userId, bookmarkId uuid.UUID) (bool, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.UserBookmark{}).
		Where("user_id = ? AND bookmark_id = ?", userId, bookmarkId).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	// Zero rows means the association was absent or already tombstoned; the
	// default scope keeps tombstoned rows out of the update, so the first
	// remove wins its timestamp and repeats are no-ops.
	return res.RowsAffected > 0, nil
}

func (r *UserBookmarkRepositoryImpl) ExistsActive(ctx context.Context, userId, bookmarkId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserBookmark{}).
		Where("user_id = ? AND bookmark_id = ?", userId, bookmarkId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserBookmarkRepositoryImpl) FindActiveByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UserBookmark, error) {
	var models []*model.UserBookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Scopes(scope.OrderByCreatedDesc).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserBookmarkRepositoryImpl) FindAllActive(ctx context.Context) ([]*entity.UserBookmark, error) {
	var models []*model.UserBookmark
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserBookmarkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserBookmark, error) {
	var m model.UserBookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserBookmarkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserBookmark{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
