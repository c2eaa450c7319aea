package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loanflow.backend/internal/domain/entities"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/internal/infrastructure/models"
)

// transactionSortFields whitelists sortable columns for ledger listings.
var transactionSortFields = map[string]string{
	"amount":          "amount",
	"transactionDate": "transaction_date",
	"type":            "type",
	"createdAt":       "created_at",
}

// TransactionRepositoryImpl implements TransactionRepository
type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepositoryImpl {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		ID:              tx.ID,
		UserID:          tx.UserID,
		ApplicationID:   tx.ApplicationID,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		BalanceAfter:    tx.BalanceAfter,
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate,
		Status:          string(tx.Status),
		CreatedAt:       time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *TransactionRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("transaction_date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var ms []models.Transaction
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return r.toEntities(ms), total, nil
}

func (r *TransactionRepositoryImpl) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("transaction_date ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TransactionRepositoryImpl) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Transaction, int64, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("description LIKE ? OR type LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(orderClause(transactionSortFields, filter.SortField, filter.SortDirection))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var ms []models.Transaction
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return r.toEntities(ms), total, nil
}

func (r *TransactionRepositoryImpl) toEntities(ms []models.Transaction) []*entities.Transaction {
	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		m := ms[i]
		txs = append(txs, &entities.Transaction{
			ID:              m.ID,
			UserID:          m.UserID,
			ApplicationID:   m.ApplicationID,
			Type:            entities.TransactionType(m.Type),
			Amount:          m.Amount,
			BalanceAfter:    m.BalanceAfter,
			Description:     m.Description,
			TransactionDate: m.TransactionDate,
			Status:          entities.TransactionStatus(m.Status),
			CreatedAt:       m.CreatedAt,
		})
	}
	return txs
}
