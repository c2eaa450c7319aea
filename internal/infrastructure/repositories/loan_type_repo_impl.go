package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/infrastructure/models"
)

// LoanTypeRepositoryImpl implements LoanTypeRepository
type LoanTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepositoryImpl {
	return &LoanTypeRepositoryImpl{db: db}
}

func (r *LoanTypeRepositoryImpl) Create(ctx context.Context, lt *entities.LoanType) error {
	m := &models.LoanType{
		ID:               lt.ID,
		Name:             lt.Name,
		Description:      lt.Description,
		MinAmount:        lt.MinAmount,
		MaxAmount:        lt.MaxAmount,
		MinTermMonths:    lt.MinTermMonths,
		MaxTermMonths:    lt.MaxTermMonths,
		BaseInterestRate: lt.BaseInterestRate,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *LoanTypeRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanType, error) {
	var m models.LoanType
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *LoanTypeRepositoryImpl) List(ctx context.Context) ([]*entities.LoanType, error) {
	var ms []models.LoanType
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	types := make([]*entities.LoanType, 0, len(ms))
	for i := range ms {
		types = append(types, r.toEntity(&ms[i]))
	}
	return types, nil
}

func (r *LoanTypeRepositoryImpl) toEntity(m *models.LoanType) *entities.LoanType {
	return &entities.LoanType{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		MinAmount:        m.MinAmount,
		MaxAmount:        m.MaxAmount,
		MinTermMonths:    m.MinTermMonths,
		MaxTermMonths:    m.MaxTermMonths,
		BaseInterestRate: m.BaseInterestRate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
