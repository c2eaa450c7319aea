package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/utils"
)

type ApplicationHandler struct {
	usecase        *usecases.ApplicationUsecase
	viewStateStore *usecases.ViewStateStore
}

func NewApplicationHandler(usecase *usecases.ApplicationUsecase, viewStateStore *usecases.ViewStateStore) *ApplicationHandler {
	return &ApplicationHandler{usecase: usecase, viewStateStore: viewStateStore}
}

// CreateApplication submits a new loan application
// POST /api/v1/applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var draft entities.ApplicationDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.usecase.Create(c.Request.Context(), userID, &draft)
	if err != nil {
		if pie, ok := err.(*usecases.ProfileIncompleteError); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success":       false,
				"code":          "PROFILE_INCOMPLETE",
				"message":       "complete your profile before applying",
				"missingFields": pie.MissingFields,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, app)
}

// ValidateStep validates a single wizard step without persisting
// POST /api/v1/applications/validate-step
func (h *ApplicationHandler) ValidateStep(c *gin.Context) {
	var req struct {
		Step  int                       `json:"step" binding:"required,min=1,max=4"`
		Draft entities.ApplicationDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	fieldErrors := usecases.ValidateStep(req.Step, &req.Draft)
	response.Success(c, http.StatusOK, gin.H{
		"valid":  len(fieldErrors) == 0,
		"errors": fieldErrors,
	})
}

// GetApplication returns one application
// GET /api/v1/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application ID"))
		return
	}

	app, err := h.usecase.Get(c.Request.Context(), id, userID, middleware.GetUserRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"application":      app,
		"progress":         usecases.ProgressForApplication(app),
		"monthlyPayment":   utils.FormatZAR(app.MonthlyPayment),
		"remainingBalance": utils.FormatZAR(app.RemainingBalance),
	})
}

// ListMyApplications returns the caller's applications
// GET /api/v1/applications
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	apps, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, apps)
}

// ListApplications returns the admin application listing
// GET /api/v1/admin/applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	state := resolveViewState(c, h.viewStateStore, "applications")

	params := utils.GetPaginationParams(state.Page, state.Limit)
	apps, total, err := h.usecase.List(c.Request.Context(), domainRepos.ListFilter{
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

	response.SuccessWithPagination(c, http.StatusOK, apps, utils.CalculateMeta(total, params.Page, params.Limit))
}

// UpdateStatus performs an admin status transition
// PUT /api/v1/admin/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	adminID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application ID"))
		return
	}

	var input entities.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.usecase.UpdateStatus(c.Request.Context(), adminID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, app)
}

// RecordRepayment records a repayment against a disbursed application
// POST /api/v1/admin/applications/:id/repayments
func (h *ApplicationHandler) RecordRepayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application ID"))
		return
	}

	var input entities.RecordRepaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.usecase.RecordRepayment(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, app)
}

// resolveViewState turns the querystring into a list view state. A bare
// request restores the caller's last saved state for the view; a request
// carrying parameters becomes the new saved state.
func resolveViewState(c *gin.Context, store *usecases.ViewStateStore, view string) usecases.ListViewState {
	query := c.Request.URL.Query()
	state := usecases.ParseViewState(query)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return state
	}
	if len(query) == 0 {
		return store.Load(c.Request.Context(), userID, view)
	}
	_ = store.Save(c.Request.Context(), userID, view, state)
	return state
}

// parsePagination reads bare page/limit params for the simple listings.
func parsePagination(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return utils.GetPaginationParams(page, limit)
}
