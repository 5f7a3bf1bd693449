package mapper

import (
	"time"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/model"

	"gorm.io/gorm"
)

type UserSpaceMapper struct{}

func NewUserSpaceMapper() *UserSpaceMapper {
	return &UserSpaceMapper{}
}

func (m *UserSpaceMapper) ToEntity(s *model.UserSpace) *entity.UserSpace {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserSpace{
		Id:          s.Id,
		UserId:      s.UserId,
		SpaceName:   s.SpaceName,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   s.DeletedAt.Valid,
	}
}

func (m *UserSpaceMapper) ToModel(s *entity.UserSpace) *model.UserSpace {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.UserSpace{
		Id:          s.Id,
		UserId:      s.UserId,
		SpaceName:   s.SpaceName,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *UserSpaceMapper) ToEntities(rows []*model.UserSpace) []*entity.UserSpace {
	entities := make([]*entity.UserSpace, len(rows))
	for i, s := range rows {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
