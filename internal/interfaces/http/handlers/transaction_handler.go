package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/utils"
)

type TransactionHandler struct {
	usecase *usecases.TransactionUsecase
}

func NewTransactionHandler(usecase *usecases.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{usecase: usecase}
}

// ListMyTransactions returns the caller's transactions
// GET /api/v1/transactions
func (h *TransactionHandler) ListMyTransactions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	params := parsePagination(c)
	txs, total, err := h.usecase.ListByUser(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, txs, utils.CalculateMeta(total, params.Page, params.Limit))
}

// ListApplicationTransactions returns the ledger for one application
// GET /api/v1/admin/applications/:id/transactions
func (h *TransactionHandler) ListApplicationTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application ID"))
		return
	}

	txs, err := h.usecase.ListByApplication(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, txs)
}

// ListTransactions returns the admin transaction listing
// GET /api/v1/admin/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	state := usecases.ParseViewState(c.Request.URL.Query())
	params := utils.GetPaginationParams(state.Page, state.Limit)

	txs, total, err := h.usecase.List(c.Request.Context(), domainRepos.ListFilter{
		Search:        state.Search,
		Status:        state.Status,
		SortField:     state.SortField,
		SortDirection: state.SortDirection,
		Limit:         params.Limit,
		Offset:        params.CalculateOffset(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, txs, utils.CalculateMeta(total, params.Page, params.Limit))
}
