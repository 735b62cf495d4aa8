package repository

import (
	"context"

	"github.com/twotier/userapi/internal/domain/entity"
)

// UserUpdate carries the fields of a partial update. Nil means "leave unchanged";
// at least one field must be set.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
