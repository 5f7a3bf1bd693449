package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSpaceRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type CreateSpaceResponse struct {
	Id uuid.UUID `json:"id"`
}

type RenameSpaceRequest struct {
	Id   uuid.UUID `json:"-"`
	Name string    `json:"name" validate:"required,max=255"`
}

type UpdateSpaceDescriptionRequest struct {
	Id          uuid.UUID `json:"-"`
	Description string    `json:"description"`
}

type GetAllSpaceResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
