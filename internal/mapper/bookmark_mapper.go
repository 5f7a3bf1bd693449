package mapper

import (
	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/model"
)

type BookmarkMapper struct{}

func NewBookmarkMapper() *BookmarkMapper {
	return &BookmarkMapper{}
}

func (m *BookmarkMapper) ToEntity(b *model.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}

	return &entity.Bookmark{
		Id:          b.Id,
		Title:       b.Title,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		SourceURL:   b.SourceURL,
		SourceType:  b.SourceType,
		CreatedAt:   b.CreatedAt,
	}
}

func (m *BookmarkMapper) ToModel(b *entity.Bookmark) *model.Bookmark {
	if b == nil {
		return nil
	}

	return &model.Bookmark{
		Id:          b.Id,
		Title:       b.Title,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		SourceURL:   b.SourceURL,
		SourceType:  b.SourceType,
		CreatedAt:   b.CreatedAt,
	}
}

func (m *BookmarkMapper) ToEntities(bookmarks []*model.Bookmark) []*entity.Bookmark {
	entities := make([]*entity.Bookmark, len(bookmarks))
	for i, b := range bookmarks {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
