package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSpace is a user-owned named collection. The unique index spans
// (user_id, space_name) as declared and does NOT exclude tombstoned rows, so
// a soft-deleted space still occupies its name at the index level; the
// service-level conflict check is scoped to active rows only.
type UserSpace struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uidx_user_space_name,priority:1"`
	SpaceName   string         `gorm:"type:varchar(255);not null;uniqueIndex:uidx_user_space_name,priority:2"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (UserSpace) TableName() string {
	return "user_spaces"
}
