package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loanflow.backend/internal/domain/entities"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/internal/infrastructure/models"
)

// applicationSortFields whitelists sortable columns for application listings.
var applicationSortFields = map[string]string{
	"loanAmount":      "loan_amount",
	"applicationDate": "application_date",
	"status":          "status",
	"createdAt":       "created_at",
}

// orderClause builds a safe ORDER BY from a whitelist. Unknown fields
// fall back to created_at DESC.
func orderClause(fields map[string]string, sortField, sortDirection string) string {
	col, ok := fields[sortField]
	if !ok {
		return "created_at DESC"
	}
	dir := "ASC"
	if strings.EqualFold(sortDirection, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

// LoanApplicationRepositoryImpl implements LoanApplicationRepository
type LoanApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewLoanApplicationRepository(db *gorm.DB) *LoanApplicationRepositoryImpl {
	return &LoanApplicationRepositoryImpl{db: db}
}

func (r *LoanApplicationRepositoryImpl) Create(ctx context.Context, app *entities.LoanApplication) error {
	m := r.toModel(app)
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *LoanApplicationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanApplication, error) {
	var m models.LoanApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *LoanApplicationRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error) {
	var ms []models.LoanApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	apps := make([]*entities.LoanApplication, 0, len(ms))
	for i := range ms {
		apps = append(apps, r.toEntity(&ms[i]))
	}
	return apps, nil
}

func (r *LoanApplicationRepositoryImpl) Update(ctx context.Context, app *entities.LoanApplication) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.LoanApplication{}).
		Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"status":            string(app.Status),
			"rejection_reason":  app.RejectionReason,
			"approved_by":       app.ApprovedBy,
			"approved_date":     app.ApprovedDate,
			"disbursed_amount":  app.DisbursedAmount,
			"disbursed_date":    app.DisbursedDate,
			"monthly_payment":   app.MonthlyPayment,
			"total_payable":     app.TotalPayable,
			"total_interest":    app.TotalInterest,
			"remaining_balance": app.RemainingBalance,
			"next_payment_date": app.NextPaymentDate,
			"updated_at":        time.Now(),
		}).Error
}

func (r *LoanApplicationRepositoryImpl) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.LoanApplication, int64, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).Model(&models.LoanApplication{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("purpose LIKE ? OR status LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(orderClause(applicationSortFields, filter.SortField, filter.SortDirection))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var ms []models.LoanApplication
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	apps := make([]*entities.LoanApplication, 0, len(ms))
	for i := range ms {
		apps = append(apps, r.toEntity(&ms[i]))
	}
	return apps, total, nil
}

func (r *LoanApplicationRepositoryImpl) CountPendingByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.LoanApplication{}).
		Where("user_id = ? AND status = ?", userID, string(entities.ApplicationStatusPending)).
		Count(&count).Error
	return count, err
}

func (r *LoanApplicationRepositoryImpl) toModel(app *entities.LoanApplication) *models.LoanApplication {
	return &models.LoanApplication{
		ID:               app.ID,
		UserID:           app.UserID,
		LoanTypeID:       app.LoanTypeID,
		LoanAmount:       app.LoanAmount,
		LoanTermMonths:   app.LoanTermMonths,
		InterestRate:     app.InterestRate,
		Purpose:          app.Purpose,
		EmploymentType:   app.EmploymentType,
		PaymentSchedule:  app.PaymentSchedule,
		Status:           string(app.Status),
		ApplicationDate:  app.ApplicationDate,
		RejectionReason:  app.RejectionReason,
		ApprovedBy:       app.ApprovedBy,
		ApprovedDate:     app.ApprovedDate,
		DisbursedAmount:  app.DisbursedAmount,
		DisbursedDate:    app.DisbursedDate,
		MonthlyPayment:   app.MonthlyPayment,
		TotalPayable:     app.TotalPayable,
		TotalInterest:    app.TotalInterest,
		RemainingBalance: app.RemainingBalance,
		NextPaymentDate:  app.NextPaymentDate,
	}
}

func (r *LoanApplicationRepositoryImpl) toEntity(m *models.LoanApplication) *entities.LoanApplication {
	return &entities.LoanApplication{
		ID:               m.ID,
		UserID:           m.UserID,
		LoanTypeID:       m.LoanTypeID,
		LoanAmount:       m.LoanAmount,
		LoanTermMonths:   m.LoanTermMonths,
		InterestRate:     m.InterestRate,
		Purpose:          m.Purpose,
		EmploymentType:   m.EmploymentType,
		PaymentSchedule:  m.PaymentSchedule,
		Status:           entities.ApplicationStatus(m.Status),
		ApplicationDate:  m.ApplicationDate,
		RejectionReason:  m.RejectionReason,
		ApprovedBy:       m.ApprovedBy,
		ApprovedDate:     m.ApprovedDate,
		DisbursedAmount:  m.DisbursedAmount,
		DisbursedDate:    m.DisbursedDate,
		MonthlyPayment:   m.MonthlyPayment,
		TotalPayable:     m.TotalPayable,
		TotalInterest:    m.TotalInterest,
		RemainingBalance: m.RemainingBalance,
		NextPaymentDate:  m.NextPaymentDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
