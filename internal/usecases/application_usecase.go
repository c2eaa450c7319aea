package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/pkg/logger"
	"loanflow.backend/pkg/utils"
)

// ApplicationUsecase orchestrates the loan application lifecycle:
// intake validation, submission gating, admin status transitions and
// repayment recording.
type ApplicationUsecase struct {
	appRepo      domainRepos.LoanApplicationRepository
	loanTypeRepo domainRepos.LoanTypeRepository
	userRepo     domainRepos.UserRepository
	txRepo       domainRepos.TransactionRepository
	uow          domainRepos.UnitOfWork
}

func NewApplicationUsecase(
	appRepo domainRepos.LoanApplicationRepository,
	loanTypeRepo domainRepos.LoanTypeRepository,
	userRepo domainRepos.UserRepository,
	txRepo domainRepos.TransactionRepository,
	uow domainRepos.UnitOfWork,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:      appRepo,
		loanTypeRepo: loanTypeRepo,
		userRepo:     userRepo,
		txRepo:       txRepo,
		uow:          uow,
	}
}

// ProfileIncompleteError blocks submission until the profile carries
// every required field.
type ProfileIncompleteError struct {
	MissingFields []string `json:"missingFields"`
}

func (e *ProfileIncompleteError) Error() string {
	return errors.ErrProfileIncomplete.Error()
}

func (e *ProfileIncompleteError) Unwrap() error {
	return errors.ErrProfileIncomplete
}

// ValidateStep validates only the fields owned by the given wizard step
// (1-4) and returns field-scoped messages. An empty map means the step
// may advance. Unknown steps validate nothing.
func ValidateStep(step int, draft *entities.ApplicationDraft) map[string]string {
	fieldErrors := map[string]string{}

	switch step {
	case 1:
		if strings.TrimSpace(draft.LoanTypeID) == "" {
			fieldErrors["loanTypeId"] = "Please select a loan type"
		}
		if strings.TrimSpace(draft.LoanAmount) == "" {
			fieldErrors["loanAmount"] = "Loan amount is required"
		} else if amount, ok := ParseAmount(draft.LoanAmount); !ok {
			fieldErrors["loanAmount"] = "Loan amount must be a number"
		} else if amount < MinLoanAmount || amount > MaxLoanAmount {
			fieldErrors["loanAmount"] = fmt.Sprintf("Loan amount must be between %.0f and %.0f", MinLoanAmount, MaxLoanAmount)
		}
	case 2:
		if strings.TrimSpace(draft.LoanTermMonths) == "" {
			fieldErrors["loanTermMonths"] = "Loan term is required"
		} else if term, ok := ParseTermMonths(draft.LoanTermMonths); !ok {
			fieldErrors["loanTermMonths"] = "Loan term must be a number"
		} else if term < MinTermMonths || term > MaxTermMonths {
			fieldErrors["loanTermMonths"] = fmt.Sprintf("Loan term must be between %d and %d months", MinTermMonths, MaxTermMonths)
		}
		if strings.TrimSpace(draft.Purpose) == "" {
			fieldErrors["purpose"] = "Please select a purpose"
		}
	case 3:
		if strings.TrimSpace(draft.PaymentSchedule) == "" {
			fieldErrors["paymentSchedule"] = "Please select a payment schedule"
		}
		if strings.TrimSpace(draft.EmploymentType) == "" {
			fieldErrors["employmentType"] = "Please select an employment type"
		}
	case 4:
		if !draft.AgreeToTerms {
			fieldErrors["agreeToTerms"] = "You must agree to the terms and conditions"
		}
	}

	return fieldErrors
}

// validateDraft runs every step's validation and merges the results.
func validateDraft(draft *entities.ApplicationDraft) map[string]string {
	fieldErrors := map[string]string{}
	for step := 1; step <= 4; step++ {
		for field, msg := range ValidateStep(step, draft) {
			fieldErrors[field] = msg
		}
	}
	return fieldErrors
}

// Create validates the full draft, gates on profile completeness and on
// the pending-application cap, checks the selected loan type's bounds
// and persists a pending application with its derived display figures.
func (uc *ApplicationUsecase) Create(ctx context.Context, userID uuid.UUID, draft *entities.ApplicationDraft) (*entities.LoanApplication, error) {
	if fieldErrors := validateDraft(draft); len(fieldErrors) > 0 {
		return nil, errors.NewValidationError(fieldErrors)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("user not found")
	}

	completeness := CheckCompleteness(user)
	if !completeness.Complete {
		return nil, &ProfileIncompleteError{MissingFields: completeness.MissingFields}
	}

	pending, err := uc.appRepo.CountPendingByUserID(ctx, userID)
	if err != nil {
		return nil, errors.InternalError(err)
	}
	if pending >= MaxPendingApplications {
		return nil, errors.UnprocessableEntity(
			"an application is already awaiting review",
			errors.ErrAlreadyExists,
		)
	}

	loanTypeID, err := uuid.Parse(draft.LoanTypeID)
	if err != nil {
		return nil, errors.NewValidationError(map[string]string{"loanTypeId": "Invalid loan type"})
	}

	loanType, err := uc.loanTypeRepo.GetByID(ctx, loanTypeID)
	if err != nil {
		return nil, errors.NewValidationError(map[string]string{"loanTypeId": "Unknown loan type"})
	}

	amount, _ := ParseAmount(draft.LoanAmount)
	term, _ := ParseTermMonths(draft.LoanTermMonths)

	if amount < loanType.MinAmount || amount > loanType.MaxAmount {
		return nil, errors.NewValidationError(map[string]string{
			"loanAmount": fmt.Sprintf("%s loans must be between %.0f and %.0f", loanType.Name, loanType.MinAmount, loanType.MaxAmount),
		})
	}
	if term < loanType.MinTermMonths || term > loanType.MaxTermMonths {
		return nil, errors.NewValidationError(map[string]string{
			"loanTermMonths": fmt.Sprintf("%s loans run between %d and %d months", loanType.Name, loanType.MinTermMonths, loanType.MaxTermMonths),
		})
	}

	totalPayable := EstimateTotalPayable(amount, loanType.BaseInterestRate)

	app := &entities.LoanApplication{
		ID:              utils.GenerateUUIDv7(),
		UserID:          userID,
		LoanTypeID:      loanType.ID,
		LoanAmount:      amount,
		LoanTermMonths:  term,
		InterestRate:    loanType.BaseInterestRate,
		Purpose:         draft.Purpose,
		EmploymentType:  draft.EmploymentType,
		PaymentSchedule: draft.PaymentSchedule,
		Status:          entities.ApplicationStatusPending,
		ApplicationDate: time.Now(),
		MonthlyPayment:  EstimateFlatMonthlyPayment(amount, loanType.BaseInterestRate, term),
		TotalPayable:    totalPayable,
		TotalInterest:   totalPayable - amount,
	}

	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, errors.InternalError(err)
	}

	logger.Info(ctx, "loan application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("amount", amount),
	)

	return app, nil
}

// Get returns an application, enforcing ownership unless the caller is
// an admin.
func (uc *ApplicationUsecase) Get(ctx context.Context, id, callerID uuid.UUID, callerRole entities.UserRole) (*entities.LoanApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("application not found")
	}
	if callerRole != entities.UserRoleAdmin && app.UserID != callerID {
		return nil, errors.Forbidden("application does not belong to user")
	}
	return app, nil
}

// ListByUser returns a customer's own applications.
func (uc *ApplicationUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error) {
	return uc.appRepo.GetByUserID(ctx, userID)
}

// List returns applications for the admin listing.
func (uc *ApplicationUsecase) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.LoanApplication, int64, error) {
	return uc.appRepo.List(ctx, filter)
}

// UpdateStatus performs an admin status transition. Transitions outside
// the legal table are rejected; rejected requires a reason and
// disbursed requires a parseable amount. Disbursement writes the
// application update and the ledger entry in one unit of work.
func (uc *ApplicationUsecase) UpdateStatus(ctx context.Context, adminID, appID uuid.UUID, input *entities.UpdateStatusInput) (*entities.LoanApplication, error) {
	target := entities.ApplicationStatus(strings.ToLower(strings.TrimSpace(input.Status)))
	if !target.IsValid() {
		return nil, errors.NewValidationError(map[string]string{"status": "Unknown status"})
	}

	app, err := uc.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, errors.NotFound("application not found")
	}

	if !app.Status.CanTransitionTo(target) {
		return nil, errors.UnprocessableEntity(
			fmt.Sprintf("cannot transition from %s to %s", app.Status, target),
			errors.ErrIllegalTransition,
		)
	}

	now := time.Now()

	switch target {
	case entities.ApplicationStatusApproved:
		app.Status = target
		app.ApprovedBy = &adminID
		app.ApprovedDate = &now
		app.TotalPayable = EstimateTotalPayable(app.LoanAmount, app.InterestRate)
		app.TotalInterest = app.TotalPayable - app.LoanAmount
		app.MonthlyPayment = EstimateFlatMonthlyPayment(app.LoanAmount, app.InterestRate, app.LoanTermMonths)

	case entities.ApplicationStatusRejected:
		if strings.TrimSpace(input.RejectionReason) == "" {
			return nil, errors.NewValidationError(map[string]string{"rejectionReason": "Rejection reason is required"})
		}
		app.Status = target
		app.RejectionReason = input.RejectionReason

	case entities.ApplicationStatusDisbursed:
		amount, ok := ParseAmount(input.DisbursedAmount)
		if !ok || amount <= 0 {
			return nil, errors.NewValidationError(map[string]string{"disbursedAmount": "Disbursed amount must be a number"})
		}
		app.Status = target
		app.DisbursedAmount = amount
		app.DisbursedDate = &now
		app.RemainingBalance = app.TotalPayable
		next := now.AddDate(0, RepaymentInterval, 0)
		app.NextPaymentDate = &next

		err := uc.uow.Do(ctx, func(txCtx context.Context) error {
			if err := uc.appRepo.Update(txCtx, app); err != nil {
				return err
			}
			return uc.txRepo.Create(txCtx, &entities.Transaction{
				ID:              utils.GenerateUUIDv7(),
				UserID:          app.UserID,
				ApplicationID:   app.ID,
				Type:            entities.TransactionTypeDisbursement,
				Amount:          amount,
				BalanceAfter:    app.RemainingBalance,
				Description:     "Loan disbursement",
				TransactionDate: now,
				Status:          entities.TransactionStatusCompleted,
			})
		})
		if err != nil {
			return nil, errors.InternalError(err)
		}

		logger.Info(ctx, "loan disbursed",
			zap.String("application_id", app.ID.String()),
			zap.Float64("amount", amount),
		)
		return app, nil

	case entities.ApplicationStatusCompleted:
		// Settled outside the repayment flow; nothing further is owed
		// or scheduled.
		app.Status = target
		app.RemainingBalance = 0
		app.NextPaymentDate = nil

	case entities.ApplicationStatusDefaulted:
		// The outstanding balance stands, but no payment is expected.
		app.Status = target
		app.NextPaymentDate = nil
	}

	if err := uc.appRepo.Update(ctx, app); err != nil {
		return nil, errors.InternalError(err)
	}

	logger.Info(ctx, "application status updated",
		zap.String("application_id", app.ID.String()),
		zap.String("status", string(app.Status)),
		zap.String("admin_id", adminID.String()),
	)

	return app, nil
}

// RecordRepayment records a repayment against a disbursed application:
// appends the ledger entry, decrements the remaining balance, advances
// the next payment date and completes the loan when the balance reaches
// zero. All writes share one unit of work.
func (uc *ApplicationUsecase) RecordRepayment(ctx context.Context, appID uuid.UUID, input *entities.RecordRepaymentInput) (*entities.LoanApplication, error) {
	amount, ok := ParseAmount(input.Amount)
	if !ok || amount <= 0 {
		return nil, errors.NewValidationError(map[string]string{"amount": "Repayment amount must be a positive number"})
	}

	app, err := uc.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, errors.NotFound("application not found")
	}

	if app.Status != entities.ApplicationStatusDisbursed {
		return nil, errors.UnprocessableEntity(
			fmt.Sprintf("cannot record repayment on a %s application", app.Status),
			errors.ErrIllegalTransition,
		)
	}

	now := time.Now()

	app.RemainingBalance -= amount
	if app.RemainingBalance <= 0 {
		app.RemainingBalance = 0
		app.Status = entities.ApplicationStatusCompleted
		app.NextPaymentDate = nil
	} else {
		next := now.AddDate(0, RepaymentInterval, 0)
		app.NextPaymentDate = &next
	}

	description := input.Description
	if description == "" {
		description = "Loan repayment"
	}

	err = uc.uow.Do(ctx, func(txCtx context.Context) error {
		if err := uc.appRepo.Update(txCtx, app); err != nil {
			return err
		}
		return uc.txRepo.Create(txCtx, &entities.Transaction{
			ID:              utils.GenerateUUIDv7(),
			UserID:          app.UserID,
			ApplicationID:   app.ID,
			Type:            entities.TransactionTypeRepayment,
			Amount:          amount,
			BalanceAfter:    app.RemainingBalance,
			Description:     description,
			TransactionDate: now,
			Status:          entities.TransactionStatusCompleted,
		})
	})
	if err != nil {
		return nil, errors.InternalError(err)
	}

	logger.Info(ctx, "repayment recorded",
		zap.String("application_id", app.ID.String()),
		zap.Float64("amount", amount),
		zap.Float64("remaining_balance", app.RemainingBalance),
	)

	return app, nil
}
