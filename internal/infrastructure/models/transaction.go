package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:varchar(50);not null"`
	Amount          float64   `gorm:"type:decimal(18,2);not null"`
	BalanceAfter    float64   `gorm:"type:decimal(18,2)"`
	Description     string    `gorm:"type:text"`
	TransactionDate time.Time `gorm:"not null;index"`
	Status          string    `gorm:"type:varchar(50);not null;index"`
	CreatedAt       time.Time
}
