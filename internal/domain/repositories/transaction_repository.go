package repositories

import (
	"context"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
)

// TransactionRepository defines ledger persistence operations.
// Transactions are append-only; there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error)
	GetByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]*entities.Transaction, int64, error)
}
