package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/config"
)

func newLimitedRouter(t *testing.T, requests int) (*gin.Engine, *RateLimitManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	manager := NewRateLimitManager(context.Background())
	t.Cleanup(func() { _ = manager.Shutdown() })

	cfg := &config.Config{RateLimitRequests: requests, RateLimitWindow: 60}
	router := gin.New()
	router.Use(RateLimitMiddleware(cfg, manager))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/api/v1/builder/sessions", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return router, manager
}

func TestRateLimitMiddlewareRejectsAboveBudget(t *testing.T) {
	router, _ := newLimitedRouter(t, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/builder/sessions", nil))
		codes = append(codes, recorder.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestRateLimitMiddlewareBypassesHealth(t *testing.T) {
	router, manager := newLimitedRouter(t, 1)

	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, recorder.Code)
	}
	assert.Zero(t, manager.Len())
}

func TestRateLimitManagerCleanupEvictsIdleVisitors(t *testing.T) {
	manager := NewRateLimitManager(context.Background())
	defer manager.Shutdown()

	current := time.Now()
	manager.now = func() time.Time { return current }

	assert.Nil(t, manager.GetVisitor("10.0.0.1", 0, 60, 0))
	first := manager.GetVisitor("10.0.0.1", 10, 60, 0)
	require.NotNil(t, first)
	assert.Same(t, first, manager.GetVisitor("10.0.0.1", 10, 60, 0))

	current = current.Add(visitorIdleTimeout + time.Second)
	manager.cleanup()
	assert.Zero(t, manager.Len())
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(recorder, request)
	assert.Equal(t, "abc-123", recorder.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", recorder.Body.String())

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, recorder.Header().Get(RequestIDHeader), 36)
}

func TestMetricsMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/api/v1/builder/sessions/:sid", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := requestCount(t, http.MethodGet, "/api/v1/builder/sessions/:sid", "200")
	for _, sid := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/builder/sessions/"+sid, nil))
	}
	after := requestCount(t, http.MethodGet, "/api/v1/builder/sessions/:sid", "200")
	assert.Equal(t, float64(2), after-before)
}

func requestCount(t *testing.T, method, route, status string) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, httpRequestsTotal.WithLabelValues(method, route, status).Write(&metric))
	return metric.GetCounter().GetValue()
}
