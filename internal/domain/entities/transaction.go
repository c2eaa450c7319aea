package entities

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of ledger event
type TransactionType string

const (
	TransactionTypeDisbursement TransactionType = "disbursement"
	TransactionTypeRepayment    TransactionType = "repayment"
	TransactionTypeFee          TransactionType = "fee"
)

// TransactionStatus represents the settlement status of a transaction
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only record of a disbursement, repayment or
// fee event against a loan application. BalanceAfter snapshots the
// application's remaining balance at write time.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"userId"`
	ApplicationID   uuid.UUID         `json:"applicationId"`
	Type            TransactionType   `json:"type"`
	Amount          float64           `json:"amount"`
	BalanceAfter    float64           `json:"balanceAfter"`
	Description     string            `json:"description,omitempty"`
	TransactionDate time.Time         `json:"transactionDate"`
	Status          TransactionStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}
