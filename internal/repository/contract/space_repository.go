package contract

import (
	"context"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SpaceRepository interface {
	Create(ctx context.Context, space *entity.UserSpace) error
	Update(ctx context.Context, space *entity.UserSpace) error
	// SoftDelete tombstones the space; its memberships stay in place but drop
	// out of every active-filter join.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSpace, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSpace, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
