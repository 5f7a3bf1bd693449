package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserSpace struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	SpaceName   string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
