package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex"`
	Phone          string    `gorm:"type:varchar(50)"`
	IDNumber       string    `gorm:"column:id_number;type:varchar(50)"`
	Address        string    `gorm:"type:text"`
	Employer       string    `gorm:"type:varchar(255)"`
	Occupation     string    `gorm:"type:varchar(255)"`
	IncomeLevel    string    `gorm:"type:varchar(50)"`
	BankingDetails string    `gorm:"type:text"` // serialized JSON blob
	Role           string    `gorm:"type:varchar(20);not null;index"`
	Deleted        bool      `gorm:"default:false;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
