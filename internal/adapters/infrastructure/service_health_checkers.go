package infrastructure

import (
	"context"

	"tripplanner.app/internal/ports"
)

// Pinger is implemented by cache backends that hold a network connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports the state of the forecast cache backend
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
}

// NewCacheHealthChecker creates a cache health checker
func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    "healthy",
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.cache == nil {
		status.Status = "disabled"
		return status
	}
	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = "unhealthy"
			status.Error = err.Error()
		}
	}
	if metrics, ok := c.cache.(ports.CacheMetrics); ok {
		stats := metrics.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hit_ratio"] = stats.HitRatio
	}
	return status
}

// UpstreamConfigHealthChecker reports whether an upstream service has credentials configured
// It does not call the service.
type UpstreamConfigHealthChecker struct {
	component  string
	configured bool
	details    map[string]interface{}
}

// NewUpstreamConfigHealthChecker creates a configuration-only checker for an upstream service
func NewUpstreamConfigHealthChecker(component string, configured bool, details map[string]interface{}) *UpstreamConfigHealthChecker {
	return &UpstreamConfigHealthChecker{component: component, configured: configured, details: details}
}

func (u *UpstreamConfigHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	details := make(map[string]interface{}, len(u.details)+1)
	for k, v := range u.details {
		details[k] = v
	}
	details["configured"] = u.configured

	status := ports.HealthStatus{Component: u.component, Status: "healthy", Details: details}
	if !u.configured {
		status.Status = "degraded"
		status.Error = "API key is not configured"
	}
	return status
}
