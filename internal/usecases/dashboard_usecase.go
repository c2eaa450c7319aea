package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
)

// NextPayment pairs the earliest upcoming due date with that loan's
// monthly payment.
type NextPayment struct {
	DueDate        time.Time `json:"dueDate"`
	Amount         float64   `json:"amount"`
	ApplicationID  uuid.UUID `json:"applicationId"`
	FormattedValue string    `json:"formatted,omitempty"`
}

// Dashboard is the aggregated customer overview payload.
type Dashboard struct {
	ActiveLoanCount    int                       `json:"activeLoanCount"`
	TotalBalance       float64                   `json:"totalBalance"`
	AvailableCredit    float64                   `json:"availableCredit"`
	EligibilityScore   int                       `json:"eligibilityScore"`
	NextPayment        *NextPayment              `json:"nextPayment,omitempty"`
	Applications       []*entities.LoanApplication `json:"applications"`
	RecentTransactions []*entities.Transaction   `json:"recentTransactions"`
}

// DashboardUsecase aggregates a customer's loans, balances and
// eligibility into one payload.
type DashboardUsecase struct {
	appRepo       domainRepos.LoanApplicationRepository
	txRepo        domainRepos.TransactionRepository
	creditCeiling float64
}

func NewDashboardUsecase(appRepo domainRepos.LoanApplicationRepository, txRepo domainRepos.TransactionRepository, creditCeiling float64) *DashboardUsecase {
	if creditCeiling <= 0 {
		creditCeiling = DefaultCreditCeiling
	}
	return &DashboardUsecase{
		appRepo:       appRepo,
		txRepo:        txRepo,
		creditCeiling: creditCeiling,
	}
}

// EligibilityScore is the three-tier heuristic over active loan count
// and utilization against the credit ceiling.
func EligibilityScore(activeLoans int, totalBalance, creditCeiling float64) int {
	switch {
	case activeLoans <= 1 && totalBalance < creditCeiling/2:
		return EligibilityScoreHigh
	case activeLoans <= 2 && totalBalance < 0.75*creditCeiling:
		return EligibilityScoreMedium
	default:
		return EligibilityScoreLow
	}
}

// Get builds the dashboard for a customer.
func (uc *DashboardUsecase) Get(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	apps, err := uc.appRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.InternalError(err)
	}

	now := time.Now()
	var (
		activeCount  int
		totalBalance float64
		next         *NextPayment
	)

	for _, app := range apps {
		if !app.Status.IsActive() {
			continue
		}
		activeCount++

		if app.Status == entities.ApplicationStatusApproved || app.Status == entities.ApplicationStatusDisbursed {
			// Legacy rows may lack a remaining balance; the committed
			// amount stands in for it.
			balance := app.RemainingBalance
			if balance == 0 {
				balance = app.LoanAmount
			}
			totalBalance += balance
		}

		if app.NextPaymentDate != nil && app.NextPaymentDate.After(now) {
			if next == nil || app.NextPaymentDate.Before(next.DueDate) {
				next = &NextPayment{
					DueDate:       *app.NextPaymentDate,
					Amount:        app.MonthlyPayment,
					ApplicationID: app.ID,
				}
			}
		}
	}

	availableCredit := uc.creditCeiling - totalBalance
	if availableCredit < 0 {
		availableCredit = 0
	}

	recent, _, err := uc.txRepo.GetByUserID(ctx, userID, 5, 0)
	if err != nil {
		return nil, errors.InternalError(err)
	}

	return &Dashboard{
		ActiveLoanCount:    activeCount,
		TotalBalance:       totalBalance,
		AvailableCredit:    availableCredit,
		EligibilityScore:   EligibilityScore(activeCount, totalBalance, uc.creditCeiling),
		NextPayment:        next,
		Applications:       apps,
		RecentTransactions: recent,
	}, nil
}
