package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// PhoneNeedsUpdate is a legacy sentinel stored in place of a real phone
// number for accounts migrated without one. It counts as "missing".
const PhoneNeedsUpdate = "NEEDS_UPDATE"

// User represents a customer or administrator account
type User struct {
	ID             uuid.UUID  `json:"id"`
	FirstName      string     `json:"firstname"`
	LastName       string     `json:"lastname"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	IDNumber       string     `json:"idNumber"`
	Address        string     `json:"address,omitempty"`
	Employer       string     `json:"employer"`
	Occupation     string     `json:"occupation,omitempty"`
	IncomeLevel    string     `json:"incomeLevel,omitempty"`
	BankingDetails string     `json:"bankingDetails,omitempty"` // serialized JSON blob
	Role           UserRole   `json:"role"`
	Deleted        bool       `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"-"`
}

// BankingDetails is the shape of the serialized banking blob on User.
type BankingDetails struct {
	BankName      string `json:"bankName"`
	AccountType   string `json:"accountType"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// UpdateProfileInput represents input for a customer updating their own profile
type UpdateProfileInput struct {
	FirstName      string `json:"firstname"`
	LastName       string `json:"lastname"`
	Phone          string `json:"phone"`
	IDNumber       string `json:"idNumber"`
	Address        string `json:"address"`
	Employer       string `json:"employer"`
	Occupation     string `json:"occupation"`
	IncomeLevel    string `json:"incomeLevel"`
	BankingDetails string `json:"bankingDetails"`
}

// UpdateContactInput represents input for an admin updating a customer's contact details
type UpdateContactInput struct {
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProfileCompleteness reports which required profile fields are missing
type ProfileCompleteness struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missingFields"`
}
