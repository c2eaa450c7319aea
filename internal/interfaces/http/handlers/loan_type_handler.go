package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/utils"
)

type LoanTypeHandler struct {
	usecase *usecases.LoanTypeUsecase
}

func NewLoanTypeHandler(usecase *usecases.LoanTypeUsecase) *LoanTypeHandler {
	return &LoanTypeHandler{usecase: usecase}
}

// ListLoanTypes returns the loan product catalog
// GET /api/v1/loan-types
func (h *LoanTypeHandler) ListLoanTypes(c *gin.Context) {
	types, err := h.usecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, types)
}

// CreateLoanType seeds a loan product
// POST /api/v1/loan-types (admin)
func (h *LoanTypeHandler) CreateLoanType(c *gin.Context) {
	var input entities.CreateLoanTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lt, err := h.usecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, lt)
}

type calculateRequest struct {
	LoanTypeID string `json:"loanTypeId" binding:"required"`
	LoanAmount string `json:"loanAmount" binding:"required"`
	TermMonths int    `json:"termMonths" binding:"required,min=1"`
}

// Calculate returns repayment estimates for the loan calculator screen.
// The calculator shows the true amortized payment alongside the flat
// figures the rest of the product displays.
// POST /api/v1/loan-types/calculate
func (h *LoanTypeHandler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	id, err := uuid.Parse(req.LoanTypeID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid loan type ID"))
		return
	}

	lt, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	amount, ok := usecases.ParseAmount(req.LoanAmount)
	if !ok {
		response.Error(c, domainerrors.NewValidationError(map[string]string{"loanAmount": "Loan amount must be a number"}))
		return
	}

	totalPayable := usecases.EstimateTotalPayable(amount, lt.BaseInterestRate)
	response.Success(c, http.StatusOK, gin.H{
		"totalPayable":            totalPayable,
		"totalInterest":           totalPayable - amount,
		"flatMonthlyPayment":      usecases.EstimateFlatMonthlyPayment(amount, lt.BaseInterestRate, req.TermMonths),
		"amortizedMonthlyPayment": usecases.EstimateAmortizedMonthlyPayment(amount, lt.BaseInterestRate, req.TermMonths),
		"formattedTotalPayable":   utils.FormatZAR(totalPayable),
	})
}
