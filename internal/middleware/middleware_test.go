package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-empms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestIdempotency(t *testing.T) {
	t.Run("first request acquires the lock and proceeds", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX("idemp:/employees:key-1:lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel("idemp:/employees:key-1:lock").SetVal(1)

		r := setupRouter()
		r.POST("/employees", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/employees", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate in-flight request is rejected with 409", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX("idemp:/employees:key-1:lock", "locked", 30*time.Second).SetVal(false)

		r := setupRouter()
		r.POST("/employees", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/employees", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Idempotency-Key")
	})

	t.Run("request without key bypasses the lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		r := setupRouter()
		r.POST("/employees", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/employees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.GET("/employees", middleware.RateLimitByIP(1, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/employees", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	// Burst of one: the immediate second request is over the limit.
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/employees", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
