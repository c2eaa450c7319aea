package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loanflow.backend/internal/domain/entities"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/usecases"
)

func newUserRouter(userRepo *userRepoStub, callerID uuid.UUID) *gin.Engine {
	h := NewUserHandler(usecases.NewUserUsecase(userRepo), usecases.NewProfileUsecase(userRepo), usecases.NewViewStateStore())
	r := gin.New()
	identify := func(c *gin.Context) { c.Set(middleware.UserIDKey, callerID) }
	r.GET("/users/me", identify, h.GetMe)
	r.PUT("/users/me", identify, h.UpdateMe)
	r.GET("/users/me/completeness", identify, h.GetCompleteness)
	r.GET("/admin/users", identify, h.ListCustomers)
	r.PUT("/admin/users/:id/contact", identify, h.UpdateContact)
	return r
}

func TestGetMe(t *testing.T) {
	callerID := uuid.New()
	userRepo := &userRepoStub{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
		return stubCompleteUser(id), nil
	}}

	w := httptest.NewRecorder()
	newUserRouter(userRepo, callerID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "thabo@example.com")
}

func TestGetCompleteness(t *testing.T) {
	callerID := uuid.New()
	userRepo := &userRepoStub{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
		u := stubCompleteUser(id)
		u.Phone = entities.PhoneNeedsUpdate
		u.Employer = ""
		return u, nil
	}}

	w := httptest.NewRecorder()
	newUserRouter(userRepo, callerID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me/completeness", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Complete      bool     `json:"complete"`
			MissingFields []string `json:"missingFields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Data.Complete)
	assert.Equal(t, []string{"Phone Number", "Employer"}, body.Data.MissingFields)
}

func TestUpdateMe_RejectsBadBankingBlob(t *testing.T) {
	callerID := uuid.New()
	userRepo := &userRepoStub{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
		return stubCompleteUser(id), nil
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/me", jsonBody(t, map[string]string{"bankingDetails": "{oops"}))
	req.Header.Set("Content-Type", "application/json")
	newUserRouter(userRepo, callerID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "bankingDetails")
}

func TestListCustomers_PaginationEnvelope(t *testing.T) {
	setupHandlerRedis(t)

	userRepo := &userRepoStub{listFn: func(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.User, int64, error) {
		return []*entities.User{stubCompleteUser(uuid.New())}, 42, nil
	}}

	w := httptest.NewRecorder()
	newUserRouter(userRepo, uuid.New()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users?page=2&limit=10", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			PageSize    int   `json:"pageSize"`
			TotalCount  int64 `json:"totalCount"`
			TotalPages  int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Pagination.CurrentPage)
	assert.Equal(t, 10, body.Pagination.PageSize)
	assert.Equal(t, int64(42), body.Pagination.TotalCount)
	assert.Equal(t, 5, body.Pagination.TotalPages)
}

func TestUpdateContact(t *testing.T) {
	customerID := uuid.New()
	userRepo := &userRepoStub{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
		return stubCompleteUser(id), nil
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+customerID.String()+"/contact", jsonBody(t, map[string]string{"email": "new@example.com"}))
	req.Header.Set("Content-Type", "application/json")
	newUserRouter(userRepo, uuid.New()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new@example.com")
}

func TestUpdateContact_InvalidID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/users/nope/contact", jsonBody(t, map[string]string{"email": "new@example.com"}))
	req.Header.Set("Content-Type", "application/json")
	newUserRouter(&userRepoStub{}, uuid.New()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCustomers_RestoresSavedViewState(t *testing.T) {
	setupHandlerRedis(t)

	var captured []domainRepos.ListFilter
	userRepo := &userRepoStub{listFn: func(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.User, int64, error) {
		captured = append(captured, filter)
		return []*entities.User{}, 0, nil
	}}

	r := newUserRouter(userRepo, uuid.New())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users?search=mokoena&limit=25", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, captured, 2)
	assert.Equal(t, "mokoena", captured[1].Search)
	assert.Equal(t, 25, captured[1].Limit)
}
