package repositories

import (
	"context"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
)

// LoanTypeRepository defines loan product catalog operations
type LoanTypeRepository interface {
	Create(ctx context.Context, lt *entities.LoanType) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanType, error)
	List(ctx context.Context) ([]*entities.LoanType, error)
}
