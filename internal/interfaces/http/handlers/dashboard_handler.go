package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/utils"
)

type DashboardHandler struct {
	usecase *usecases.DashboardUsecase
}

func NewDashboardHandler(usecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{usecase: usecase}
}

// GetDashboard returns the caller's aggregated loan overview
// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	dashboard, err := h.usecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if dashboard.NextPayment != nil {
		dashboard.NextPayment.FormattedValue = utils.FormatZAR(dashboard.NextPayment.Amount)
	}

	response.Success(c, http.StatusOK, gin.H{
		"dashboard":                dashboard,
		"formattedTotalBalance":    utils.FormatZAR(dashboard.TotalBalance),
		"formattedAvailableCredit": utils.FormatZAR(dashboard.AvailableCredit),
	})
}
