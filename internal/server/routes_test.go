package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"agenthub/internal/config"
)

type fakeDB struct {
	healthy bool
}

func (f *fakeDB) Health() map[string]string {
	if !f.healthy {
		return map[string]string{"message": "db down", "error": "no reachable servers"}
	}
	return map[string]string{"message": "It's healthy"}
}

func (f *fakeDB) Client() *mongo.Client { return nil }
func (f *fakeDB) Database() *mongo.Database { return nil }
func (f *fakeDB) Close(ctx context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Port:               8080,
		MongoDatabase:      "agenthub",
		CatalogTimeout:     time.Second,
		HistoryTimeout:     time.Second,
		StatsTimeout:       time.Second,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: time.Second,
		RateLimitRPS:       100,
		RateLimitBurst:     100,
		AllowedOrigins:     "https://app.example",
	}
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestHealthRoute(t *testing.T) {
	h := NewServer(testConfig(), &fakeDB{healthy: true}).RegisterRoutes()
	rr := do(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"It's healthy"}`, rr.Body.String())

	h = NewServer(testConfig(), &fakeDB{}).RegisterRoutes()
	rr = do(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHelloWorldRoute(t *testing.T) {
	h := NewServer(testConfig(), &fakeDB{healthy: true}).RegisterRoutes()
	rr := do(h, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestMetricsRoute(t *testing.T) {
	h := NewServer(testConfig(), &fakeDB{healthy: true}).RegisterRoutes()
	do(h, http.MethodGet, "/")

	rr := do(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}

func TestRecommendationRoutesWithoutCatalogAccess(t *testing.T) {
	h := NewServer(testConfig(), &fakeDB{healthy: true}).RegisterRoutes()

	rr := do(h, http.MethodGet, "/api/recommendations/categories")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "通用")

	rr = do(h, http.MethodGet, "/api/recommendations/search?q=%20")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(h, http.MethodGet, "/api/recommendations/category/unknown")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(h, http.MethodGet, "/api/recommendations/trending?limit=0")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(h, http.MethodGet, "/api/recommendations/mixed")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestPreflight(t *testing.T) {
	h := NewServer(testConfig(), &fakeDB{healthy: true}).RegisterRoutes()

	req := httptest.NewRequest(http.MethodOptions, "/api/recommendations/mixed", nil)
	req.Header.Set("Origin", "https://app.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
