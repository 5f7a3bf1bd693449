package mapper

import (
	"time"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/model"

	"gorm.io/gorm"
)

type UserBookmarkMapper struct{}

func NewUserBookmarkMapper() *UserBookmarkMapper {
	return &UserBookmarkMapper{}
}

func (m *UserBookmarkMapper) ToEntity(ub *model.UserBookmark) *entity.UserBookmark {
	if ub == nil {
		return nil
	}

	var deletedAt *time.Time
	if ub.DeletedAt.Valid {
		t := ub.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !ub.UpdatedAt.IsZero() {
		t := ub.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserBookmark{
		UserId:     ub.UserId,
		BookmarkId: ub.BookmarkId,
		CreatedAt:  ub.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  ub.DeletedAt.Valid,
	}
}

func (m *UserBookmarkMapper) ToModel(ub *entity.UserBookmark) *model.UserBookmark {
	if ub == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if ub.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *ub.DeletedAt, Valid: true}
	} else if ub.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if ub.UpdatedAt != nil {
		updatedAt = *ub.UpdatedAt
	}

	return &model.UserBookmark{
		UserId:     ub.UserId,
		BookmarkId: ub.BookmarkId,
		CreatedAt:  ub.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *UserBookmarkMapper) ToEntities(rows []*model.UserBookmark) []*entity.UserBookmark {
	entities := make([]*entity.UserBookmark, len(rows))
	for i, ub := range rows {
		entities[i] = m.ToEntity(ub)
	}
	return entities
}
