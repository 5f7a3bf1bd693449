package model

import (
	"time"

	"github.com/google/uuid"
)

// User rows are created and updated by the external identity provider; this
// service only reads them and never deletes them. Carried for FK integrity
// and migration tooling.
type User struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	AvatarURL *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
