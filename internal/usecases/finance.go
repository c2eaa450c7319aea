package usecases

import (
	"math"

	"loanflow.backend/internal/domain/entities"
)

// EstimateTotalPayable returns the total amount repayable on a loan
// using the flat-rate estimate the product displays everywhere:
// principal x (1 + annualRatePercent/100). This is deliberately not an
// amortization formula; downstream displayed figures depend on this
// exact shape.
func EstimateTotalPayable(principal, annualRatePercent float64) float64 {
	if principal <= 0 {
		return 0
	}
	return principal * (1 + annualRatePercent/100)
}

// EstimateFlatMonthlyPayment divides the flat-rate total evenly across
// the term. Used on the dashboard and application detail screens.
func EstimateFlatMonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	return EstimateTotalPayable(principal, annualRatePercent) / float64(termMonths)
}

// EstimateAmortizedMonthlyPayment computes the true annuity payment
// P*r/(1-(1+r)^-n) with monthly rate r. Used only by the loan
// calculator screen; kept distinct from the flat estimate on purpose.
func EstimateAmortizedMonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}

	payment := principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return 0
	}
	return payment
}

// CalculateProgress returns repayment progress as a percentage clamped
// to [0,100]. A zero or negative total yields 0, never NaN.
func CalculateProgress(remainingBalance, totalPayable float64) float64 {
	if totalPayable <= 0 {
		return 0
	}

	progress := ((totalPayable - remainingBalance) / totalPayable) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// ProgressForApplication applies the status overrides on top of
// CalculateProgress: non-disbursed applications show 0, completed ones
// show 100 regardless of balance fields.
func ProgressForApplication(app *entities.LoanApplication) float64 {
	switch app.Status {
	case entities.ApplicationStatusCompleted:
		return 100
	case entities.ApplicationStatusDisbursed, entities.ApplicationStatusDefaulted:
		return CalculateProgress(app.RemainingBalance, app.TotalPayable)
	}
	return 0
}
