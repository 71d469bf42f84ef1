package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	FindUser(ctx context.Context, id int64) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) error
}
