package infrastructure

import (
	"context"

	"tripplanner.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker  ports.HealthChecker
	CacheChecker     ports.HealthChecker
	GeocodingChecker ports.HealthChecker
	ItineraryChecker ports.HealthChecker
	ConfigProvider   ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker; nil checkers are skipped
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	for name, checker := range map[string]ports.HealthChecker{
		"database":  config.DatabaseChecker,
		"cache":     config.CacheChecker,
		"geocoding": config.GeocodingChecker,
		"itinerary": config.ItineraryChecker,
	} {
		if checker != nil {
			checkers[name] = checker
		}
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		server := s.configProvider.GetServerConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"environment": server.Environment,
				"version":     server.Version,
			},
		}
	}

	return results
}
