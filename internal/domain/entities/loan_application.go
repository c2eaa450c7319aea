package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents the lifecycle status of a loan application
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusDisbursed ApplicationStatus = "disbursed"
	ApplicationStatusCompleted ApplicationStatus = "completed"
	ApplicationStatusDefaulted ApplicationStatus = "defaulted"

	// Legacy statuses still present in migrated rows. Never produced by
	// this service but recognized when partitioning active loans.
	ApplicationStatusCancelled  ApplicationStatus = "cancelled"
	ApplicationStatusProcessing ApplicationStatus = "processing"
)

// legalTransitions is the closed transition table for application status.
var legalTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:   {ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusApproved:  {ApplicationStatusDisbursed},
	ApplicationStatusDisbursed: {ApplicationStatusCompleted, ApplicationStatusDefaulted},
}

// IsValid reports whether s is a status this service can produce.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected,
		ApplicationStatusDisbursed, ApplicationStatusCompleted, ApplicationStatusDefaulted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> target is legal.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	for _, next := range legalTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsActive reports whether a loan in this status counts toward a
// customer's active loans on the dashboard.
func (s ApplicationStatus) IsActive() bool {
	switch s {
	case ApplicationStatusRejected, ApplicationStatusCancelled,
		ApplicationStatusPending, ApplicationStatusProcessing:
		return false
	}
	return true
}

// LoanApplication represents a customer's request for a loan
type LoanApplication struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"userId"`
	LoanTypeID      uuid.UUID         `json:"loanTypeId"`
	LoanAmount      float64           `json:"loanAmount"`
	LoanTermMonths  int               `json:"loanTermMonths"`
	InterestRate    float64           `json:"interestRate"` // annual, percent, snapshot of the type's base rate
	Purpose         string            `json:"purpose"`
	EmploymentType  string            `json:"employmentType"`
	PaymentSchedule string            `json:"paymentSchedule"`
	Status          ApplicationStatus `json:"status"`
	ApplicationDate time.Time         `json:"applicationDate"`

	RejectionReason string     `json:"rejectionReason,omitempty"`
	ApprovedBy      *uuid.UUID `json:"approvedBy,omitempty"`
	ApprovedDate    *time.Time `json:"approvedDate,omitempty"`
	DisbursedAmount float64    `json:"disbursedAmount,omitempty"`
	DisbursedDate   *time.Time `json:"disbursedDate,omitempty"`

	// Derived figures, populated at approval/disbursement
	MonthlyPayment   float64    `json:"monthlyPayment,omitempty"`
	TotalPayable     float64    `json:"totalPayable,omitempty"`
	TotalInterest    float64    `json:"totalInterest,omitempty"`
	RemainingBalance float64    `json:"remainingBalance,omitempty"`
	NextPaymentDate  *time.Time `json:"nextPaymentDate,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

// ApplicationDraft holds the intake wizard's fields. Amounts arrive as
// strings because the legacy clients send them formatted.
type ApplicationDraft struct {
	LoanTypeID      string `json:"loanTypeId"`
	LoanAmount      string `json:"loanAmount"`
	LoanTermMonths  string `json:"loanTermMonths"`
	Purpose         string `json:"purpose"`
	EmploymentType  string `json:"employmentType"`
	PaymentSchedule string `json:"paymentSchedule"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

// UpdateStatusInput represents an admin status transition request
type UpdateStatusInput struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
	DisbursedAmount string `json:"disbursedAmount"`
}

// RecordRepaymentInput represents an admin recording a repayment
type RecordRepaymentInput struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}
