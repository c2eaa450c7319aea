package models

import (
	"time"

	"github.com/google/uuid"
)

type LoanType struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name             string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description      string    `gorm:"type:text"`
	MinAmount        float64   `gorm:"type:decimal(18,2);not null"`
	MaxAmount        float64   `gorm:"type:decimal(18,2);not null"`
	MinTermMonths    int       `gorm:"not null"`
	MaxTermMonths    int       `gorm:"not null"`
	BaseInterestRate float64   `gorm:"type:decimal(6,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
