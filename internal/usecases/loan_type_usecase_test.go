package usecases_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/usecases"
)

func TestLoanTypeList_CacheMissFillsCache(t *testing.T) {
	mr := setupTestRedis(t)

	loanTypeRepo := new(MockLoanTypeRepository)
	uc := usecases.NewLoanTypeUsecase(loanTypeRepo)

	catalog := []*entities.LoanType{testLoanType(uuid.New())}
	loanTypeRepo.On("List", mockAnything).Return(catalog, nil).Once()

	types, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 1)

	// The catalog landed in redis
	cached, err := mr.Get("loan_types:all")
	require.NoError(t, err)
	var fromCache []*entities.LoanType
	require.NoError(t, json.Unmarshal([]byte(cached), &fromCache))
	assert.Equal(t, catalog[0].ID, fromCache[0].ID)

	// Second call is served from the cache, not the repository
	types, err = uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 1)
	loanTypeRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestLoanTypeList_PoisonedCacheFallsThrough(t *testing.T) {
	mr := setupTestRedis(t)
	mr.Set("loan_types:all", "{not json")

	loanTypeRepo := new(MockLoanTypeRepository)
	uc := usecases.NewLoanTypeUsecase(loanTypeRepo)

	catalog := []*entities.LoanType{testLoanType(uuid.New())}
	loanTypeRepo.On("List", mockAnything).Return(catalog, nil).Once()

	types, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 1)
	loanTypeRepo.AssertExpectations(t)
}

func TestLoanTypeCreate_InvalidatesCache(t *testing.T) {
	mr := setupTestRedis(t)
	mr.Set("loan_types:all", `[]`)

	loanTypeRepo := new(MockLoanTypeRepository)
	uc := usecases.NewLoanTypeUsecase(loanTypeRepo)

	loanTypeRepo.On("Create", mockAnything, mockAnything).Return(nil)

	lt, err := uc.Create(context.Background(), &entities.CreateLoanTypeInput{
		Name:             "Vehicle Loan",
		MinAmount:        5000,
		MaxAmount:        50000,
		MinTermMonths:    6,
		MaxTermMonths:    60,
		BaseInterestRate: 14,
	})

	require.NoError(t, err)
	assert.Equal(t, "Vehicle Loan", lt.Name)
	assert.NotEqual(t, uuid.Nil, lt.ID)
	assert.False(t, mr.Exists("loan_types:all"))
}

func TestLoanTypeCreate_RejectsInvertedBounds(t *testing.T) {
	setupTestRedis(t)

	loanTypeRepo := new(MockLoanTypeRepository)
	uc := usecases.NewLoanTypeUsecase(loanTypeRepo)

	_, err := uc.Create(context.Background(), &entities.CreateLoanTypeInput{
		Name:             "Broken",
		MinAmount:        50000,
		MaxAmount:        5000,
		MinTermMonths:    6,
		MaxTermMonths:    60,
		BaseInterestRate: 14,
	})

	var validationErr *errors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "minAmount")
	loanTypeRepo.AssertNotCalled(t, "Create")
}

func TestLoanTypeGetByID(t *testing.T) {
	loanTypeRepo := new(MockLoanTypeRepository)
	uc := usecases.NewLoanTypeUsecase(loanTypeRepo)

	id := uuid.New()
	loanTypeRepo.On("GetByID", mockAnything, id).Return(testLoanType(id), nil)

	lt, err := uc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, lt.ID)

	missing := uuid.New()
	loanTypeRepo.On("GetByID", mockAnything, missing).Return(nil, assert.AnError)

	_, err = uc.GetByID(context.Background(), missing)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
