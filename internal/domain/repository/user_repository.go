package repository

import (
	"context"

	"github.com/blueverse/blueverse-api/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the interface for staff user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
