package usecases

import "time"

// Loan amount and term bounds for the intake wizard. Bounds are
// inclusive on both ends.
const (
	MinLoanAmount = 1000.0
	MaxLoanAmount = 50000.0
	MinTermMonths = 1
	MaxTermMonths = 60
)

// MaxPendingApplications caps how many applications a customer may have
// awaiting review at once.
const MaxPendingApplications = 1

// DefaultCreditCeiling is used when no ceiling is configured.
const DefaultCreditCeiling = 20000.0

// Eligibility score tiers derived from active loan count and
// utilization against the credit ceiling.
const (
	EligibilityScoreHigh   = 85
	EligibilityScoreMedium = 65
	EligibilityScoreLow    = 35
)

// LoanTypeCacheTTL bounds staleness of the redis-cached catalog.
const LoanTypeCacheTTL = 5 * time.Minute

// RepaymentInterval is the gap between scheduled payments.
const RepaymentInterval = 1 // months
