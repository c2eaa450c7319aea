package usecases

import (
	"context"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
	domainRepos "loanflow.backend/internal/domain/repositories"
)

// TransactionUsecase serves read-only ledger views. Writes happen only
// inside the application lifecycle.
type TransactionUsecase struct {
	txRepo domainRepos.TransactionRepository
}

func NewTransactionUsecase(txRepo domainRepos.TransactionRepository) *TransactionUsecase {
	return &TransactionUsecase{txRepo: txRepo}
}

// ListByUser returns a customer's own transactions.
func (uc *TransactionUsecase) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	return uc.txRepo.GetByUserID(ctx, userID, limit, offset)
}

// ListByApplication returns the ledger for one application.
func (uc *TransactionUsecase) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entities.Transaction, error) {
	return uc.txRepo.GetByApplicationID(ctx, applicationID)
}

// List returns transactions for the admin listing.
func (uc *TransactionUsecase) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Transaction, int64, error) {
	return uc.txRepo.List(ctx, filter)
}
