package entities

import (
	"time"

	"github.com/google/uuid"
)

// LoanType represents a catalog loan product. Read-only from the
// application's perspective; rows are seeded by an admin action.
type LoanType struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	MinAmount        float64   `json:"minAmount"`
	MaxAmount        float64   `json:"maxAmount"`
	MinTermMonths    int       `json:"minTermMonths"`
	MaxTermMonths    int       `json:"maxTermMonths"`
	BaseInterestRate float64   `json:"baseInterestRate"` // annual, percent
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateLoanTypeInput represents input for seeding a loan product
type CreateLoanTypeInput struct {
	Name             string  `json:"name" binding:"required,min=2,max=100"`
	Description      string  `json:"description"`
	MinAmount        float64 `json:"minAmount" binding:"required,gt=0"`
	MaxAmount        float64 `json:"maxAmount" binding:"required,gt=0"`
	MinTermMonths    int     `json:"minTermMonths" binding:"required,gt=0"`
	MaxTermMonths    int     `json:"maxTermMonths" binding:"required,gt=0"`
	BaseInterestRate float64 `json:"baseInterestRate" binding:"required,gt=0"`
}
