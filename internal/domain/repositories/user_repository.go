package repositories

import (
	"context"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
)

// UserRepository defines user persistence operations
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	List(ctx context.Context, filter ListFilter) ([]*entities.User, int64, error)
}
