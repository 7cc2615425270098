package external

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// RetryingForecastProvider retries transient upstream failures with exponential backoff
type RetryingForecastProvider struct {
	provider   ports.ForecastProvider
	maxRetries uint64
	backoff    time.Duration
	logger     ports.Logger
}

// NewRetryingForecastProvider wraps provider; maxRetries of 0 disables retries
func NewRetryingForecastProvider(provider ports.ForecastProvider, maxRetries int, backoff time.Duration, logger ports.Logger) ports.ForecastProvider {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	return &RetryingForecastProvider{
		provider:   provider,
		maxRetries: uint64(maxRetries),
		backoff:    backoff,
		logger:     logger,
	}
}

// GetHourlyForecast calls the wrapped provider until it succeeds or retries are exhausted
func (r *RetryingForecastProvider) GetHourlyForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastSeries, error) {
	var series *ports.ForecastSeries
	attempt := 0

	b := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		result, err := r.provider.GetHourlyForecast(ctx, query)
		if err != nil {
			if !errors.IsUpstreamError(err) {
				return err
			}
			if r.logger != nil {
				r.logger.Warn("Forecast request failed, retrying",
					ports.F("provider", r.provider.GetProviderName()),
					ports.F("attempt", attempt),
					ports.F("error", err.Error()))
			}
			return retry.RetryableError(err)
		}
		series = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

// GetProviderName returns the name of the wrapped provider
func (r *RetryingForecastProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}
