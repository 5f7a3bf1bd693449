package mapper

import (
	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/model"
)

type BookmarkPartitionMapper struct{}

func NewBookmarkPartitionMapper() *BookmarkPartitionMapper {
	return &BookmarkPartitionMapper{}
}

func (m *BookmarkPartitionMapper) ToEntity(p *model.BookmarkPartition) *entity.BookmarkPartition {
	if p == nil {
		return nil
	}

	return &entity.BookmarkPartition{
		Name:      p.Name,
		StartsAt:  p.StartsAt,
		EndsAt:    p.EndsAt,
		CreatedAt: p.CreatedAt,
	}
}

func (m *BookmarkPartitionMapper) ToEntities(rows []*model.BookmarkPartition) []*entity.BookmarkPartition {
	entities := make([]*entity.BookmarkPartition, len(rows))
	for i, p := range rows {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
