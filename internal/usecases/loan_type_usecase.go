package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/pkg/logger"
	"loanflow.backend/pkg/redis"
	"loanflow.backend/pkg/utils"
)

const loanTypeCacheKey = "loan_types:all"

// LoanTypeUsecase serves the loan product catalog. The list is
// cache-aside in redis; cache failures degrade to the database.
type LoanTypeUsecase struct {
	loanTypeRepo domainRepos.LoanTypeRepository
}

func NewLoanTypeUsecase(loanTypeRepo domainRepos.LoanTypeRepository) *LoanTypeUsecase {
	return &LoanTypeUsecase{loanTypeRepo: loanTypeRepo}
}

// List returns the catalog, preferring the redis copy.
func (uc *LoanTypeUsecase) List(ctx context.Context) ([]*entities.LoanType, error) {
	if cached, err := redis.Get(ctx, loanTypeCacheKey); err == nil && cached != "" {
		var types []*entities.LoanType
		if err := json.Unmarshal([]byte(cached), &types); err == nil {
			return types, nil
		}
		// Poisoned cache entry; fall through to the database.
		_ = redis.Del(ctx, loanTypeCacheKey)
	}

	types, err := uc.loanTypeRepo.List(ctx)
	if err != nil {
		return nil, errors.InternalError(err)
	}

	if payload, err := json.Marshal(types); err == nil {
		if err := redis.Set(ctx, loanTypeCacheKey, payload, LoanTypeCacheTTL); err != nil {
			logger.Warn(ctx, "loan type cache write failed", zap.Error(err))
		}
	}

	return types, nil
}

// GetByID returns a single loan product.
func (uc *LoanTypeUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanType, error) {
	lt, err := uc.loanTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("loan type not found")
	}
	return lt, nil
}

// Create seeds a loan product and invalidates the cached catalog.
func (uc *LoanTypeUsecase) Create(ctx context.Context, input *entities.CreateLoanTypeInput) (*entities.LoanType, error) {
	if input.MinAmount > input.MaxAmount {
		return nil, errors.NewValidationError(map[string]string{"minAmount": "Minimum amount exceeds maximum"})
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return nil, errors.NewValidationError(map[string]string{"minTermMonths": "Minimum term exceeds maximum"})
	}

	lt := &entities.LoanType{
		ID:               utils.GenerateUUIDv7(),
		Name:             input.Name,
		Description:      input.Description,
		MinAmount:        input.MinAmount,
		MaxAmount:        input.MaxAmount,
		MinTermMonths:    input.MinTermMonths,
		MaxTermMonths:    input.MaxTermMonths,
		BaseInterestRate: input.BaseInterestRate,
	}

	if err := uc.loanTypeRepo.Create(ctx, lt); err != nil {
		return nil, errors.InternalError(err)
	}

	if err := redis.Del(ctx, loanTypeCacheKey); err != nil {
		logger.Warn(ctx, "loan type cache invalidation failed", zap.Error(err))
	}

	return lt, nil
}
