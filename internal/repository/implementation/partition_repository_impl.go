package implementation

import (
	"context"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/mapper"
	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PartitionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookmarkPartitionMapper
}

func NewPartitionRepository(db *gorm.DB) contract.PartitionRepository {
	return &PartitionRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookmarkPartitionMapper(),
	}
}

func (r *PartitionRepositoryImpl) Ensure(ctx context.Context, partition *entity.BookmarkPartition) (bool, error) {
	m := &model.BookmarkPartition{
		Name:     partition.Name,
		StartsAt: partition.StartsAt,
		EndsAt:   partition.EndsAt,
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PartitionRepositoryImpl) FindAll(ctx context.Context) ([]*entity.BookmarkPartition, error) {
	var models []*model.BookmarkPartition
	err := r.db.WithContext(ctx).
		Order("starts_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
