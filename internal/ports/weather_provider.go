package ports

import (
	"context"
	"time"
)

// ForecastQuery identifies an upstream forecast request
type ForecastQuery struct {
	Latitude  float64
	Longitude float64
}

// ForecastSeries is an hourly temperature series ordered by time
type ForecastSeries struct {
	Times        []time.Time
	Temperatures []float64
}

// Len returns the number of samples in the series
func (s *ForecastSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Times)
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// ForecastProvider defines the contract for forecast data providers
type ForecastProvider interface {
	GetHourlyForecast(ctx context.Context, query ForecastQuery) (*ForecastSeries, error)
	GetProviderName() string
}

// ForecastCache defines the contract for caching forecast series
type ForecastCache interface {
	Get(ctx context.Context, key string) (*ForecastSeries, error)
	Set(ctx context.Context, key string, series *ForecastSeries, ttl time.Duration) error
}
