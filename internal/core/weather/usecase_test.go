package weather

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/mocks"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

type fixture struct {
	provider *mocks.ForecastProvider
	cache    *mocks.ForecastCache
	geocoder *mocks.Geocoder
	config   *mocks.ConfigProvider
	logger   *mocks.Logger
	uc       *UseCase
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, enableCache bool) *fixture {
	f := &fixture{
		provider: mocks.NewForecastProvider(t),
		cache:    mocks.NewForecastCache(t),
		geocoder: mocks.NewGeocoder(t),
		config:   mocks.NewConfigProvider(t),
		logger:   mocks.NewLogger(t),
	}
	f.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		EnableCache:  enableCache,
		CacheTTL:     time.Hour,
		ForecastDays: 3,
	}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Provider: f.provider,
		Cache:    f.cache,
		Geocoder: f.geocoder,
		Config:   f.config,
		Logger:   f.logger,
		Clock:    func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_GetForecast_CacheMiss(t *testing.T) {
	f := newFixture(t, true)
	series := hourlySeries(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 24*5)
	key := CacheKey(48.8566, 2.3522)

	f.cache.EXPECT().Get(mock.Anything, key).Return(nil, errors.NewNotFoundError("cache miss"))
	f.provider.EXPECT().GetHourlyForecast(mock.Anything, ports.ForecastQuery{Latitude: 48.8566, Longitude: 2.3522}).Return(series, nil)
	f.cache.EXPECT().Set(mock.Anything, key, series, time.Hour).Return(nil)

	start := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	forecast, err := f.uc.GetForecast(context.Background(), ForecastRequest{
		Latitude: 48.8566, Longitude: 2.3522, StartDate: &start, Duration: 2,
	})

	require.NoError(t, err)
	assert.Len(t, forecast.Dates, 48)
	assert.Equal(t, start, forecast.Dates[0])
}

func TestUseCase_GetForecast_CacheHitSkipsProvider(t *testing.T) {
	f := newFixture(t, true)
	series := hourlySeries(fixedNow, 3)

	f.cache.EXPECT().Get(mock.Anything, CacheKey(1, 2)).Return(series, nil)

	forecast, err := f.uc.GetForecast(context.Background(), ForecastRequest{Latitude: 1, Longitude: 2})

	require.NoError(t, err)
	assert.Len(t, forecast.Dates, 3)
	f.provider.AssertNotCalled(t, "GetHourlyForecast", mock.Anything, mock.Anything)
}

func TestUseCase_GetForecast_CacheDisabled(t *testing.T) {
	f := newFixture(t, false)
	f.provider.EXPECT().GetHourlyForecast(mock.Anything, mock.Anything).Return(hourlySeries(fixedNow, 2), nil)

	forecast, err := f.uc.GetForecast(context.Background(), ForecastRequest{Latitude: 1, Longitude: 2})

	require.NoError(t, err)
	assert.Len(t, forecast.Temperatures, 2)
	f.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUseCase_GetForecast_CacheWriteFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, true)
	f.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.NewNotFoundError("cache miss"))
	f.provider.EXPECT().GetHourlyForecast(mock.Anything, mock.Anything).Return(hourlySeries(fixedNow, 1), nil)
	f.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(stderrors.New("redis down"))

	_, err := f.uc.GetForecast(context.Background(), ForecastRequest{Latitude: 1, Longitude: 2})

	require.NoError(t, err)
	assert.True(t, f.logger.HasMessage("warn", "Failed to cache forecast"))
}

func TestUseCase_GetForecast_EmptyWindowIsNotAnError(t *testing.T) {
	f := newFixture(t, false)
	f.provider.EXPECT().GetHourlyForecast(mock.Anything, mock.Anything).Return(&ports.ForecastSeries{}, nil)

	start := fixedNow
	forecast, err := f.uc.GetForecast(context.Background(), ForecastRequest{Latitude: 1, Longitude: 2, StartDate: &start, Duration: 3})

	require.NoError(t, err)
	assert.True(t, forecast.Empty())
}

func TestUseCase_GetForecast_ProviderFailureIsUpstream(t *testing.T) {
	f := newFixture(t, false)
	f.provider.EXPECT().GetHourlyForecast(mock.Anything, mock.Anything).Return(nil, stderrors.New("connection reset"))

	_, err := f.uc.GetForecast(context.Background(), ForecastRequest{Latitude: 1, Longitude: 2})

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
}

func TestUseCase_GetForecast_MalformedResponsePreserved(t *testing.T) {
	f := newFixture(t, false)
	f.provider.EXPECT().GetHourlyForecast(mock.Anything, mock.Anything).
		Return(nil, errors.NewMalformedResponseError("hourly block missing", nil))

	_, err := f.uc.GetForecast(context.Background(), ForecastRequest{Latitude: 1, Longitude: 2})

	require.Error(t, err)
	assert.True(t, errors.IsMalformedResponseError(err))
}

func TestUseCase_GetForecast_InvalidRequest(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.uc.GetForecast(context.Background(), ForecastRequest{Latitude: 120})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_GetForecastForCity(t *testing.T) {
	f := newFixture(t, false)
	f.geocoder.EXPECT().Geocode(mock.Anything, "Paris", "France").
		Return(&ports.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, nil)
	f.provider.EXPECT().GetHourlyForecast(mock.Anything, mock.Anything).
		Return(hourlySeries(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 24*7), nil)

	result, err := f.uc.GetForecastForCity(context.Background(), " Paris ", "France")

	require.NoError(t, err)
	assert.Equal(t, "Paris", result.City)
	assert.Equal(t, 48.8566, result.Latitude)
	require.NotEmpty(t, result.Forecast.Dates)
	assert.Equal(t, fixedNow, result.Forecast.Dates[0])
	assert.Len(t, result.Forecast.Dates, 72)
}

func TestUseCase_GetForecastForCity_Errors(t *testing.T) {
	t.Run("MissingCity", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.uc.GetForecastForCity(context.Background(), "  ", "")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("GeocodeNotFound", func(t *testing.T) {
		f := newFixture(t, false)
		f.geocoder.EXPECT().Geocode(mock.Anything, "Atlantis", "").Return(nil, errors.NewNotFoundError("City not found"))

		_, err := f.uc.GetForecastForCity(context.Background(), "Atlantis", "")
		assert.True(t, errors.IsNotFoundError(err))
	})
}
