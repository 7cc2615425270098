package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"tripplanner.app/internal/config"
	"tripplanner.app/internal/mocks"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/logger"
)

func TestConfigProviderAdapter(t *testing.T) {
	os.Clearenv()
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRES_DAYS", "2")
	t.Setenv("WEATHER_CACHE_TTL_MINUTES", "15")
	t.Setenv("WEATHER_RETRY_BACKOFF_MS", "250")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "30")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	provider := NewConfigProviderAdapter(cfg)

	assert.Equal(t, 48*time.Hour, provider.GetAuthConfig().TokenTTL)
	assert.Equal(t, "sqlite", provider.GetDatabaseConfig().Driver)

	weather := provider.GetWeatherConfig()
	assert.Equal(t, 15*time.Minute, weather.CacheTTL)
	assert.Equal(t, 250*time.Millisecond, weather.RetryBackoff)
	assert.Equal(t, 10*time.Second, weather.Timeout)
	assert.Equal(t, 3, weather.ForecastDays)

	itinerary := provider.GetItineraryConfig()
	assert.Equal(t, 30*time.Second, itinerary.Timeout)
	assert.True(t, itinerary.BreakerEnabled)

	assert.Equal(t, "memory", provider.GetCacheConfig().Type)
	assert.Equal(t, 50, provider.GetHTTPConfig().RateLimitPerHour)

	t.Run("OriginsAreCopied", func(t *testing.T) {
		origins := provider.GetHTTPConfig().CORSOrigins
		origins[0] = "mutated"
		assert.NotEqual(t, "mutated", provider.GetHTTPConfig().CORSOrigins[0])
	})
}

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, slog.LevelInfo))

	adapter.Debug("hidden")
	adapter.Info("Trip created", ports.F("trip_id", 7), ports.F("error", errors.New("none")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "Trip created", entry["msg"])
	assert.Equal(t, 7.0, entry["trip_id"])
	assert.Equal(t, "none", entry["error"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestPrometheusMetricsCollector(t *testing.T) {
	m := NewPrometheusMetricsCollector()
	ctx := context.Background()

	hits := testutil.ToFloat64(m.metrics.cacheHits)
	m.RecordCacheHit(ctx)
	assert.Equal(t, hits+1, testutil.ToFloat64(m.metrics.cacheHits))

	misses := testutil.ToFloat64(m.metrics.cacheMisses)
	m.RecordCacheMiss(ctx)
	assert.Equal(t, misses+1, testutil.ToFloat64(m.metrics.cacheMisses))

	calls := testutil.ToFloat64(m.metrics.upstreamCalls.WithLabelValues("geocoding", "false"))
	m.RecordUpstreamCall(ctx, "geocoding", false, 20*time.Millisecond)
	assert.Equal(t, calls+1, testutil.ToFloat64(m.metrics.upstreamCalls.WithLabelValues("geocoding", "false")))

	generated := testutil.ToFloat64(m.metrics.itinerariesProduced.WithLabelValues("gemini-1.5-flash"))
	m.RecordItineraryGenerated(ctx, "gemini-1.5-flash")
	assert.Equal(t, generated+1, testutil.ToFloat64(m.metrics.itinerariesProduced.WithLabelValues("gemini-1.5-flash")))

	assert.Same(t, m.metrics, NewPrometheusMetricsCollector().metrics)
}

func TestDatabaseHealthChecker(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	status := NewDatabaseHealthChecker(db, "sqlite").Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, true, status.Details["connected"])

	t.Run("Closed", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		status := NewDatabaseHealthChecker(db, "sqlite").Check(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
		assert.NotEmpty(t, status.Error)
	})

	t.Run("Nil", func(t *testing.T) {
		status := NewDatabaseHealthChecker(nil, "sqlite").Check(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
	})
}

type pingableCache struct {
	*mocks.CacheProvider
	pingErr error
	stats   ports.CacheStats
}

func (p *pingableCache) Ping(ctx context.Context) error { return p.pingErr }
func (p *pingableCache) GetStats() ports.CacheStats     { return p.stats }
func (p *pingableCache) RecordHit()                     {}
func (p *pingableCache) RecordMiss()                    {}

func TestCacheHealthChecker(t *testing.T) {
	t.Run("HealthyWithStats", func(t *testing.T) {
		cache := &pingableCache{
			CacheProvider: mocks.NewCacheProvider(t),
			stats:         ports.CacheStats{Hits: 3, Misses: 1, HitRatio: 0.75},
		}
		status := NewCacheHealthChecker("redis", cache).Check(context.Background())
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, int64(3), status.Details["hits"])
		assert.Equal(t, 0.75, status.Details["hit_ratio"])
	})

	t.Run("PingFails", func(t *testing.T) {
		cache := &pingableCache{CacheProvider: mocks.NewCacheProvider(t), pingErr: errors.New("connection refused")}
		status := NewCacheHealthChecker("redis", cache).Check(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
		assert.Equal(t, "connection refused", status.Error)
	})

	t.Run("NoCache", func(t *testing.T) {
		status := NewCacheHealthChecker("memory", nil).Check(context.Background())
		assert.Equal(t, "disabled", status.Status)
	})
}

func TestUpstreamConfigHealthChecker(t *testing.T) {
	details := map[string]interface{}{"model": "gemini-1.5-flash"}

	status := NewUpstreamConfigHealthChecker("itinerary", true, details).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "gemini-1.5-flash", status.Details["model"])
	assert.Equal(t, true, status.Details["configured"])
	assert.NotContains(t, details, "configured")

	status = NewUpstreamConfigHealthChecker("geocoding", false, nil).Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "API key is not configured", status.Error)
}

type staticChecker struct {
	status ports.HealthStatus
}

func (s staticChecker) Check(ctx context.Context) ports.HealthStatus { return s.status }

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	cfg := mocks.NewConfigProvider(t)
	cfg.EXPECT().GetServerConfig().Return(ports.ServerConfig{Environment: "production", Version: "1.2.3"})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		DatabaseChecker:  staticChecker{ports.HealthStatus{Component: "database", Status: "healthy"}},
		ItineraryChecker: staticChecker{ports.HealthStatus{Component: "itinerary", Status: "degraded"}},
		ConfigProvider:   cfg,
	})

	results := checker.CheckAll(context.Background())
	require.Len(t, results, 3)
	assert.Equal(t, "1.2.3", results["config"].Details["version"])
	assert.NotContains(t, results, "cache")
	assert.Equal(t, "degraded", ports.OverallStatus(results))

	results["database"] = ports.HealthStatus{Status: "unhealthy"}
	assert.Equal(t, "unhealthy", ports.OverallStatus(results))
	assert.Equal(t, "healthy", ports.OverallStatus(nil))
}
