package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"loanflow.backend/internal/domain/entities"
	domainRepos "loanflow.backend/internal/domain/repositories"
)

var mockAnything = mock.Anything

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock LoanTypeRepository
type MockLoanTypeRepository struct {
	mock.Mock
}

func (m *MockLoanTypeRepository) Create(ctx context.Context, lt *entities.LoanType) error {
	args := m.Called(ctx, lt)
	return args.Error(0)
}

func (m *MockLoanTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LoanType), args.Error(1)
}

func (m *MockLoanTypeRepository) List(ctx context.Context) ([]*entities.LoanType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LoanType), args.Error(1)
}

// Mock LoanApplicationRepository
type MockLoanApplicationRepository struct {
	mock.Mock
}

func (m *MockLoanApplicationRepository) Create(ctx context.Context, app *entities.LoanApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockLoanApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LoanApplication), args.Error(1)
}

func (m *MockLoanApplicationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LoanApplication), args.Error(1)
}

func (m *MockLoanApplicationRepository) Update(ctx context.Context, app *entities.LoanApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockLoanApplicationRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.LoanApplication, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.LoanApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockLoanApplicationRepository) CountPendingByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Transaction, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Transaction), args.Get(1).(int64), args.Error(2)
}

// completeUser returns a user passing every completeness check.
func completeUser(id uuid.UUID) *entities.User {
	return &entities.User{
		ID:             id,
		FirstName:      "Thabo",
		LastName:       "Mokoena",
		Email:          "thabo@example.com",
		Phone:          "+27111234567",
		IDNumber:       "8001015009087",
		Employer:       "Acme Ltd",
		Role:           entities.UserRoleUser,
		BankingDetails: `{"bankName":"FNB","accountType":"Cheque","accountNumber":"62000000001","accountName":"T Mokoena"}`,
	}
}

// validDraft returns a draft passing every wizard step.
func validDraft(loanTypeID uuid.UUID) *entities.ApplicationDraft {
	return &entities.ApplicationDraft{
		LoanTypeID:      loanTypeID.String(),
		LoanAmount:      "10000",
		LoanTermMonths:  "12",
		Purpose:         "Personal",
		EmploymentType:  "Full-time",
		PaymentSchedule: "Monthly",
		AgreeToTerms:    true,
	}
}

// testLoanType returns a catalog entry wide enough for the valid draft.
func testLoanType(id uuid.UUID) *entities.LoanType {
	return &entities.LoanType{
		ID:               id,
		Name:             "Personal Loan",
		MinAmount:        1000,
		MaxAmount:        50000,
		MinTermMonths:    1,
		MaxTermMonths:    60,
		BaseInterestRate: 12.5,
	}
}
