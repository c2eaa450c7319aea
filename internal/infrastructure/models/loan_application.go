package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoanApplication struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	LoanTypeID      uuid.UUID `gorm:"type:uuid;not null;index"`
	LoanAmount      float64   `gorm:"type:decimal(18,2);not null"`
	LoanTermMonths  int       `gorm:"not null"`
	InterestRate    float64   `gorm:"type:decimal(6,2);not null"`
	Purpose         string    `gorm:"type:varchar(255);not null"`
	EmploymentType  string    `gorm:"type:varchar(100)"`
	PaymentSchedule string    `gorm:"type:varchar(50)"`
	Status          string    `gorm:"type:varchar(50);not null;index"`
	ApplicationDate time.Time `gorm:"not null"`

	RejectionReason string     `gorm:"type:text"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedDate    *time.Time
	DisbursedAmount float64 `gorm:"type:decimal(18,2)"`
	DisbursedDate   *time.Time

	MonthlyPayment   float64 `gorm:"type:decimal(18,2)"`
	TotalPayable     float64 `gorm:"type:decimal(18,2)"`
	TotalInterest    float64 `gorm:"type:decimal(18,2)"`
	RemainingBalance float64 `gorm:"type:decimal(18,2)"`
	NextPaymentDate  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
