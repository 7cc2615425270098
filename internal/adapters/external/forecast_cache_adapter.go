package external

import (
	"context"
	"encoding/json"
	"time"

	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// ForecastCacheAdapter stores forecast series in a generic CacheProvider as JSON
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
	metrics       ports.MetricsCollector
}

type cachedSeries struct {
	Times        []time.Time `json:"times"`
	Temperatures []float64   `json:"temperatures"`
}

// NewForecastCacheAdapter creates a forecast cache; metrics may be nil
func NewForecastCacheAdapter(cacheProvider ports.CacheProvider, metrics ports.MetricsCollector) ports.ForecastCache {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
		metrics:       metrics,
	}
}

// Get returns a NotFound error on a miss
func (a *ForecastCacheAdapter) Get(ctx context.Context, key string) (*ports.ForecastSeries, error) {
	data, err := a.cacheProvider.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) && a.metrics != nil {
			a.metrics.RecordCacheMiss(ctx)
		}
		return nil, err
	}

	var cached cachedSeries
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, errors.NewMalformedResponseError("failed to deserialize cached forecast", err)
	}
	if len(cached.Times) != len(cached.Temperatures) {
		return nil, errors.NewMalformedResponseError("cached forecast is inconsistent", nil)
	}

	if a.metrics != nil {
		a.metrics.RecordCacheHit(ctx)
	}
	return &ports.ForecastSeries{Times: cached.Times, Temperatures: cached.Temperatures}, nil
}

func (a *ForecastCacheAdapter) Set(ctx context.Context, key string, series *ports.ForecastSeries, ttl time.Duration) error {
	if series == nil {
		return errors.NewValidationError("forecast series cannot be nil")
	}

	data, err := json.Marshal(cachedSeries{Times: series.Times, Temperatures: series.Temperatures})
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize forecast", err)
	}
	return a.cacheProvider.Set(ctx, key, data, ttl)
}
