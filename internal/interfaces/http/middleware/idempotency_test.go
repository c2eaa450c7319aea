package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/pkg/redis"
)

func setupIdempotencyRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	calls := 0
	userID := uuid.New()
	r := gin.New()
	r.POST("/applications",
		func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) },
		middleware.IdempotencyMiddleware(),
		func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"call": calls})
		})
	r.POST("/failing",
		func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) },
		middleware.IdempotencyMiddleware(),
		func(c *gin.Context) {
			calls++
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nope"})
		})
	return r, &calls
}

func postWithKey(r *gin.Engine, path, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyHeader, key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	r, calls := setupIdempotencyRouter(t)

	first := postWithKey(r, "/applications", "key-1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, *calls)

	second := postWithKey(r, "/applications", "key-1")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Hit"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *calls, "handler must not run twice for the same key")
}

func TestIdempotency_DistinctKeysProcessSeparately(t *testing.T) {
	r, calls := setupIdempotencyRouter(t)

	postWithKey(r, "/applications", "key-a")
	postWithKey(r, "/applications", "key-b")

	assert.Equal(t, 2, *calls)
}

func TestIdempotency_NoHeaderSkipsEntirely(t *testing.T) {
	r, calls := setupIdempotencyRouter(t)

	postWithKey(r, "/applications", "")
	postWithKey(r, "/applications", "")

	assert.Equal(t, 2, *calls)
}

func TestIdempotency_FailedRequestsMayRetry(t *testing.T) {
	r, calls := setupIdempotencyRouter(t)

	first := postWithKey(r, "/failing", "key-f")
	assert.Equal(t, http.StatusUnprocessableEntity, first.Code)

	// The key was released, so the retry reaches the handler again
	second := postWithKey(r, "/failing", "key-f")
	assert.Equal(t, http.StatusUnprocessableEntity, second.Code)
	assert.Equal(t, 2, *calls)
}

func TestIdempotency_InProgressConflicts(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	userID := uuid.New()
	r := gin.New()
	r.POST("/applications",
		func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) },
		middleware.IdempotencyMiddleware(),
		func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{}) })

	// Simulate another request holding the lock
	mr.Set("idempotency:"+userID.String()+":key-x", "processing")

	w := postWithKey(r, "/applications", "key-x")
	assert.Equal(t, http.StatusConflict, w.Code)
}
