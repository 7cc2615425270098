package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

type UseCase struct {
	provider ports.ForecastProvider
	cache    ports.ForecastCache
	geocoder ports.Geocoder
	config   ports.ConfigProvider
	logger   ports.Logger
	now      func() time.Time
}

type UseCaseDependencies struct {
	Provider ports.ForecastProvider
	Cache    ports.ForecastCache
	Geocoder ports.Geocoder
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Clock    func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		provider: deps.Provider,
		cache:    deps.Cache,
		geocoder: deps.Geocoder,
		config:   deps.Config,
		logger:   deps.Logger,
		now:      now,
	}, nil
}

// GetForecast returns the hourly forecast for a coordinate, narrowed to the requested window
func (uc *UseCase) GetForecast(ctx context.Context, request ForecastRequest) (*Forecast, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid forecast request: " + err.Error())
	}

	series, err := uc.getSeriesWithCache(ctx, request.Latitude, request.Longitude)
	if err != nil {
		uc.logger.Error("Failed to get forecast",
			ports.F("latitude", request.Latitude),
			ports.F("longitude", request.Longitude),
			ports.F("error", err))
		return nil, fmt.Errorf("get forecast for %.4f,%.4f: %w", request.Latitude, request.Longitude, err)
	}

	forecast := FilterWindow(series, request.StartDate, request.Duration)
	uc.logger.Debug("Forecast retrieved",
		ports.F("latitude", request.Latitude),
		ports.F("longitude", request.Longitude),
		ports.F("samples", len(forecast.Dates)))
	return forecast, nil
}

// GetForecastForCity geocodes a place and returns the forecast starting now
func (uc *UseCase) GetForecastForCity(ctx context.Context, city, country string) (*CityForecast, error) {
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)
	if city == "" {
		return nil, errors.NewValidationError("City query param is required")
	}

	coords, err := uc.geocoder.Geocode(ctx, city, country)
	if err != nil {
		return nil, fmt.Errorf("geocode %s: %w", city, err)
	}

	start := uc.now().UTC()
	forecast, err := uc.GetForecast(ctx, ForecastRequest{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		StartDate: &start,
		Duration:  uc.config.GetWeatherConfig().ForecastDays,
	})
	if err != nil {
		return nil, err
	}

	return &CityForecast{
		City:      city,
		Country:   country,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Forecast:  forecast,
	}, nil
}

func (uc *UseCase) getSeriesWithCache(ctx context.Context, latitude, longitude float64) (*ports.ForecastSeries, error) {
	cfg := uc.config.GetWeatherConfig()
	if !cfg.EnableCache {
		return uc.getSeriesFromProvider(ctx, latitude, longitude)
	}

	cacheKey := CacheKey(latitude, longitude)
	cached, err := uc.cache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		uc.logger.Debug("Forecast found in cache", ports.F("key", cacheKey))
		return cached, nil
	}

	series, err := uc.getSeriesFromProvider(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.Set(ctx, cacheKey, series, cfg.CacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache forecast",
			ports.F("key", cacheKey),
			ports.F("error", cacheErr))
	}

	return series, nil
}

func (uc *UseCase) getSeriesFromProvider(ctx context.Context, latitude, longitude float64) (*ports.ForecastSeries, error) {
	series, err := uc.provider.GetHourlyForecast(ctx, ports.ForecastQuery{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		switch errors.TypeOf(err) {
		case errors.UpstreamError, errors.MalformedResponseError, errors.ValidationError:
			return nil, err
		}
		return nil, errors.NewExternalAPIError("forecast provider failed", err)
	}
	if series == nil {
		series = &ports.ForecastSeries{}
	}
	return series, nil
}
