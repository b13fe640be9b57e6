package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-analytics/dashboard-api/internal/api/handler/router"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

type staticStatus domain.MLServiceStatus

func (s staticStatus) GetStatus() domain.MLServiceStatus {
	return domain.MLServiceStatus(s)
}

func (s staticStatus) TriggerManualCheck(context.Context) domain.MLServiceStatus {
	return s.GetStatus()
}

// countingChecker conta as verificações manuais e passa a responder disponível
type countingChecker struct {
	checks int
	status domain.MLServiceStatus
}

func (p *countingChecker) GetStatus() domain.MLServiceStatus {
	return p.status
}

func (p *countingChecker) TriggerManualCheck(context.Context) domain.MLServiceStatus {
	p.checks++
	checkedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p.status = domain.MLServiceStatus{Available: true, LastCheckedAt: &checkedAt}
	return p.status
}

func TestHealthcheckHandler(t *testing.T) {
	checkedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	probe := staticStatus{Available: false, LastCheckedAt: &checkedAt, LastError: "connection refused"}

	rec := httptest.NewRecorder()
	HealthcheckHandler(probe).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var health domain.Health
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "Retail Analytics API is running", health.Message)
	assert.False(t, health.MLService.Available)
	assert.Equal(t, "connection refused", health.MLService.LastError)
}

func TestCheckMLService(t *testing.T) {
	checker := &countingChecker{status: domain.MLServiceStatus{Available: false, LastError: "connection refused"}}
	rt := router.New(
		router.WithRoutes(Healthcheck(checker)...),
		router.WithNotFound(NotFoundHandler()),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/health/ml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, checker.checks)

	var body envelope
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	var status domain.MLServiceStatus
	require.NoError(t, jsoniter.Unmarshal(body.Data, &status))
	assert.True(t, status.Available)
	assert.Empty(t, status.LastError)
	require.NotNil(t, status.LastCheckedAt)
}

func TestNotFoundHandler(t *testing.T) {
	rt := router.New(
		router.WithRoutes(Healthcheck(staticStatus{})...),
		router.WithNotFound(NotFoundHandler()),
	)

	tests := []struct {
		name      string
		method    string
		target    string
		wantError string
	}{
		{
			name:      "Rota inexistente",
			method:    http.MethodGet,
			target:    "/api/unknown?x=1",
			wantError: "Route GET /api/unknown?x=1 not found",
		},
		{
			name:      "Método não registrado",
			method:    http.MethodPost,
			target:    "/api/health",
			wantError: "Route POST /api/health not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)

			var body envelope
			require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
