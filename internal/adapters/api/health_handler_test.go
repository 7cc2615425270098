package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/ports"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		results    map[string]ports.HealthStatus
		wantCode   int
		wantStatus string
	}{
		{
			name: "Healthy",
			results: map[string]ports.HealthStatus{
				"database": {Component: "database", Status: "healthy"},
			},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
		},
		{
			name: "DegradedStillServes",
			results: map[string]ports.HealthStatus{
				"database":  {Component: "database", Status: "healthy"},
				"itinerary": {Component: "itinerary", Status: "degraded"},
			},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
		},
		{
			name: "DatabaseDown",
			results: map[string]ports.HealthStatus{
				"database":  {Component: "database", Status: "unhealthy", Error: "connection refused"},
				"itinerary": {Component: "itinerary", Status: "degraded"},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t, defaultServerConfig())
			env.health.EXPECT().CheckAll(mock.Anything).Return(tt.results).Once()

			w, body := env.do(t, http.MethodGet, "/api/health", "", nil)
			require.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, "test", body["version"])
			assert.NotEmpty(t, body["timestamp"])
			assert.Len(t, body["components"], len(tt.results))
		})
	}
}
