package mapper

import (
	"time"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/model"

	"gorm.io/gorm"
)

type SpaceBookmarkMapper struct{}

func NewSpaceBookmarkMapper() *SpaceBookmarkMapper {
	return &SpaceBookmarkMapper{}
}

func (m *SpaceBookmarkMapper) ToEntity(sb *model.SpaceBookmark) *entity.SpaceBookmark {
	if sb == nil {
		return nil
	}

	var deletedAt *time.Time
	if sb.DeletedAt.Valid {
		t := sb.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.SpaceBookmark{
		SpaceId:    sb.SpaceId,
		BookmarkId: sb.BookmarkId,
		CreatedAt:  sb.CreatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  sb.DeletedAt.Valid,
	}
}

func (m *SpaceBookmarkMapper) ToModel(sb *entity.SpaceBookmark) *model.SpaceBookmark {
	if sb == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if sb.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *sb.DeletedAt, Valid: true}
	} else if sb.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.SpaceBookmark{
		SpaceId:    sb.SpaceId,
		BookmarkId: sb.BookmarkId,
		CreatedAt:  sb.CreatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *SpaceBookmarkMapper) ToEntities(rows []*model.SpaceBookmark) []*entity.SpaceBookmark {
	entities := make([]*entity.SpaceBookmark, len(rows))
	for i, sb := range rows {
		entities[i] = m.ToEntity(sb)
	}
	return entities
}
