package repositories

import (
	"context"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
)

// ListFilter carries the common listing parameters every list endpoint
// accepts. Zero values mean "no constraint".
type ListFilter struct {
	Search        string
	Status        string
	SortField     string
	SortDirection string
	Limit         int
	Offset        int
}

// LoanApplicationRepository defines loan application persistence operations
type LoanApplicationRepository interface {
	Create(ctx context.Context, app *entities.LoanApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanApplication, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error)
	Update(ctx context.Context, app *entities.LoanApplication) error
	List(ctx context.Context, filter ListFilter) ([]*entities.LoanApplication, int64, error)
	CountPendingByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
