package handlers

import (
	"net/http"

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

type UserHandler struct {
	usecase        *usecases.UserUsecase
	profileUsecase *usecases.ProfileUsecase
	viewStateStore *usecases.ViewStateStore
}

func NewUserHandler(usecase *usecases.UserUsecase, profileUsecase *usecases.ProfileUsecase, viewStateStore *usecases.ViewStateStore) *UserHandler {
	return &UserHandler{usecase: usecase, profileUsecase: profileUsecase, viewStateStore: viewStateStore}
}

// GetMe returns the caller's profile
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	user, err := h.usecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateMe applies the caller's profile changes
// PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.usecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// GetCompleteness reports the caller's missing profile fields
// GET /api/v1/users/me/completeness
func (h *UserHandler) GetCompleteness(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	result, err := h.profileUsecase.CheckUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListCustomers returns the admin customer listing
// GET /api/v1/admin/users
func (h *UserHandler) ListCustomers(c *gin.Context) {
	state := resolveViewState(c, h.viewStateStore, "customers")

	params := utils.GetPaginationParams(state.Page, state.Limit)
	users, total, err := h.usecase.ListCustomers(c.Request.Context(), domainRepos.ListFilter{
		Search:        state.Search,
		SortField:     state.SortField,
		SortDirection: state.SortDirection,
		Limit:         params.Limit,
		Offset:        params.CalculateOffset(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, users, utils.CalculateMeta(total, params.Page, params.Limit))
}

// UpdateContact applies an admin contact-detail change to a customer
// PUT /api/v1/admin/users/:id/contact
func (h *UserHandler) UpdateContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	var input entities.UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.usecase.UpdateContact(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
