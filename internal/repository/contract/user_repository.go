package contract

import (
	"context"

	"notetaking-web/internal/entity"
	"notetaking-web/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	// Delete removes the row; the owner's notes go with it through the
	// ON DELETE CASCADE foreign key. Returns the number of users removed.
	Delete(ctx context.Context, id uint) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
