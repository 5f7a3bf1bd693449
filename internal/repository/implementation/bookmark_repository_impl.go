package implementation

import (
	"context"
	"errors"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/mapper"
	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/internal/repository/contract"
	"bookmarkhub-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookmarkMapper
}

func NewBookmarkRepository(db *gorm.DB) contract.BookmarkRepository {
	return &BookmarkRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookmarkMapper(),
	}
}

func (r *BookmarkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// InsertOrGet is a single atomic insert-or-fetch on source_url, never a
// read-then-write race: concurrent inserts of the same URL converge on one
// row and the loser reads the winner's id back.
func (r *BookmarkRepositoryImpl) InsertOrGet(ctx context.Context, bookmark *entity.Bookmark) (bool, error) {
	m := r.mapper.ToModel(bookmark)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_url"}},
		DoNothing: true,
	}).Create(m)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		var existing model.Bookmark
		if err := r.db.WithContext(ctx).Where("source_url = ?", m.SourceURL).First(&existing).Error; err != nil {
			return false, err
		}
		*bookmark = *r.mapper.ToEntity(&existing)
		return true, nil
	}
	*bookmark = *r.mapper.ToEntity(m)
	return false, nil
}

func (r *BookmarkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error) {
	var m model.Bookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookmarkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	var models []*model.Bookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookmarkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Bookmark{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
