package external

import (
	"context"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/mocks"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

func TestRetryingForecastProvider(t *testing.T) {
	query := ports.ForecastQuery{Latitude: 1, Longitude: 2}
	series := &ports.ForecastSeries{Times: []time.Time{time.Unix(0, 0).UTC()}, Temperatures: []float64{3}}

	t.Run("RecoversAfterTransientFailures", func(t *testing.T) {
		inner := mocks.NewForecastProvider(t)
		inner.EXPECT().GetProviderName().Return("open-meteo").Maybe()
		inner.EXPECT().GetHourlyForecast(mock.Anything, query).
			Return(nil, errors.NewExternalAPIError("503", nil)).Times(2)
		inner.EXPECT().GetHourlyForecast(mock.Anything, query).Return(series, nil).Once()

		logger := mocks.NewLogger(t)
		provider := NewRetryingForecastProvider(inner, 3, time.Millisecond, logger)

		got, err := provider.GetHourlyForecast(context.Background(), query)

		require.NoError(t, err)
		assert.Same(t, series, got)
		assert.True(t, logger.HasMessage("warn", "Forecast request failed, retrying"))
	})

	t.Run("GivesUpAfterMaxRetries", func(t *testing.T) {
		inner := mocks.NewForecastProvider(t)
		inner.EXPECT().GetProviderName().Return("open-meteo").Maybe()
		inner.EXPECT().GetHourlyForecast(mock.Anything, query).
			Return(nil, errors.NewExternalAPIError("503", nil)).Times(3)

		provider := NewRetryingForecastProvider(inner, 2, time.Millisecond, mocks.NewLogger(t))

		_, err := provider.GetHourlyForecast(context.Background(), query)
		assert.True(t, errors.IsUpstreamError(err))
	})

	t.Run("DoesNotRetryMalformed", func(t *testing.T) {
		inner := mocks.NewForecastProvider(t)
		inner.EXPECT().GetHourlyForecast(mock.Anything, query).
			Return(nil, errors.NewMalformedResponseError("bad", nil)).Once()

		provider := NewRetryingForecastProvider(inner, 5, time.Millisecond, mocks.NewLogger(t))

		_, err := provider.GetHourlyForecast(context.Background(), query)
		assert.True(t, errors.IsMalformedResponseError(err))
	})
}

func TestCircuitBreakerTextGenerator(t *testing.T) {
	inner := mocks.NewTextGenerator(t)
	inner.EXPECT().ModelName().Return("gemini-1.5-flash").Maybe()
	inner.EXPECT().Generate(mock.Anything, "p").
		Return("", errors.NewExternalAPIError("down", nil)).Times(2)

	logger := mocks.NewLogger(t)
	generator := NewCircuitBreakerTextGenerator(inner, CircuitBreakerSettings{
		Name:                "gemini-test",
		ConsecutiveFailures: 2,
		OpenTimeout:         time.Hour,
		HalfOpenRequests:    1,
	}, logger)

	for i := 0; i < 2; i++ {
		_, err := generator.Generate(context.Background(), "p")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, generator.State())
	assert.True(t, logger.HasMessage("warn", "Circuit breaker state changed"))

	_, err := generator.Generate(context.Background(), "p")
	assert.True(t, errors.IsUpstreamError(err))
	assert.Contains(t, err.Error(), "temporarily unavailable")
	assert.Equal(t, "gemini-1.5-flash", generator.ModelName())
}

func TestCircuitBreakerTextGenerator_MalformedDoesNotTrip(t *testing.T) {
	inner := mocks.NewTextGenerator(t)
	inner.EXPECT().Generate(mock.Anything, "p").
		Return("", errors.NewMalformedResponseError("no candidates", nil)).Times(3)

	settings := DefaultCircuitBreakerSettings()
	settings.ConsecutiveFailures = 2
	generator := NewCircuitBreakerTextGenerator(inner, settings, mocks.NewLogger(t))

	for i := 0; i < 3; i++ {
		_, err := generator.Generate(context.Background(), "p")
		assert.True(t, errors.IsMalformedResponseError(err))
	}
	assert.Equal(t, gobreaker.StateClosed, generator.State())
}

func TestDecorators(t *testing.T) {
	ctx := context.Background()
	metrics := mocks.NewMetricsCollector(t)
	logger := mocks.NewLogger(t)

	t.Run("Geocoder", func(t *testing.T) {
		inner := mocks.NewGeocoder(t)
		inner.EXPECT().GetProviderName().Return("google-geocoding")
		inner.EXPECT().Geocode(mock.Anything, "Rome", "Italy").Return(&ports.Coordinates{Latitude: 41.9, Longitude: 12.5}, nil).Once()
		metrics.EXPECT().RecordUpstreamCall(mock.Anything, "geocoding", true, mock.AnythingOfType("time.Duration")).Once()

		geocoder := NewGeocoderLoggingDecorator(NewInstrumentedGeocoder(inner, metrics), logger)
		coords, err := geocoder.Geocode(ctx, "Rome", "Italy")

		require.NoError(t, err)
		assert.Equal(t, 41.9, coords.Latitude)
		assert.Equal(t, "logged(google-geocoding)", geocoder.GetProviderName())
		assert.True(t, logger.HasMessage("info", "Geocoding request completed"))
	})

	t.Run("ForecastFailure", func(t *testing.T) {
		inner := mocks.NewForecastProvider(t)
		inner.EXPECT().GetProviderName().Return("open-meteo")
		inner.EXPECT().GetHourlyForecast(mock.Anything, mock.Anything).Return(nil, errors.NewExternalAPIError("down", nil)).Once()
		metrics.EXPECT().RecordUpstreamCall(mock.Anything, "forecast", false, mock.AnythingOfType("time.Duration")).Once()

		provider := NewForecastProviderLoggingDecorator(NewInstrumentedForecastProvider(inner, metrics), logger)
		_, err := provider.GetHourlyForecast(ctx, ports.ForecastQuery{})

		assert.True(t, errors.IsUpstreamError(err))
		assert.True(t, logger.HasMessage("error", "Forecast API request failed"))
	})

	t.Run("TextGenerator", func(t *testing.T) {
		inner := mocks.NewTextGenerator(t)
		inner.EXPECT().ModelName().Return("gemini-1.5-flash")
		inner.EXPECT().Generate(mock.Anything, "prompt").Return("Day 1", nil).Once()
		metrics.EXPECT().RecordUpstreamCall(mock.Anything, "itinerary", true, mock.AnythingOfType("time.Duration")).Once()
		metrics.EXPECT().RecordItineraryGenerated(mock.Anything, "gemini-1.5-flash").Once()

		generator := NewTextGeneratorLoggingDecorator(NewInstrumentedTextGenerator(inner, metrics), logger)
		text, err := generator.Generate(ctx, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "Day 1", text)
		assert.True(t, logger.HasMessage("info", "Text generation request completed"))
	})
}
