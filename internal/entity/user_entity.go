package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	FullName  string
	Email     string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
