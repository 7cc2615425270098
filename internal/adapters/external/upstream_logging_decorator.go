package external

import (
	"context"
	"time"

	"tripplanner.app/internal/ports"
)

// ForecastProviderLoggingDecorator logs every forecast request and its outcome
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

// NewForecastProviderLoggingDecorator creates a new logging decorator for forecast providers
func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) ports.ForecastProvider {
	return &ForecastProviderLoggingDecorator{provider: provider, logger: logger}
}

func (d *ForecastProviderLoggingDecorator) GetHourlyForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastSeries, error) {
	providerName := d.provider.GetProviderName()
	d.logger.Info("Forecast API request started",
		ports.F("provider", providerName),
		ports.F("latitude", query.Latitude),
		ports.F("longitude", query.Longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	series, err := d.provider.GetHourlyForecast(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", series.Len()))
	return series, nil
}

func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// GeocoderLoggingDecorator logs every geocoding request and its outcome
type GeocoderLoggingDecorator struct {
	geocoder ports.Geocoder
	logger   ports.Logger
}

// NewGeocoderLoggingDecorator creates a new logging decorator for geocoders
func NewGeocoderLoggingDecorator(geocoder ports.Geocoder, logger ports.Logger) ports.Geocoder {
	return &GeocoderLoggingDecorator{geocoder: geocoder, logger: logger}
}

func (d *GeocoderLoggingDecorator) Geocode(ctx context.Context, city, country string) (*ports.Coordinates, error) {
	providerName := d.geocoder.GetProviderName()
	d.logger.Info("Geocoding request started",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("country", country),
		ports.F("event", "request"))

	startTime := time.Now()
	coords, err := d.geocoder.Geocode(ctx, city, country)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("provider", providerName),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("latitude", coords.Latitude),
		ports.F("longitude", coords.Longitude))
	return coords, nil
}

func (d *GeocoderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.geocoder.GetProviderName() + ")"
}

// TextGeneratorLoggingDecorator logs generation calls without the prompt body
type TextGeneratorLoggingDecorator struct {
	generator ports.TextGenerator
	logger    ports.Logger
}

// NewTextGeneratorLoggingDecorator creates a new logging decorator for text generators
func NewTextGeneratorLoggingDecorator(generator ports.TextGenerator, logger ports.Logger) ports.TextGenerator {
	return &TextGeneratorLoggingDecorator{generator: generator, logger: logger}
}

func (d *TextGeneratorLoggingDecorator) Generate(ctx context.Context, prompt string) (string, error) {
	model := d.generator.ModelName()
	d.logger.Info("Text generation request started",
		ports.F("model", model),
		ports.F("prompt_chars", len(prompt)),
		ports.F("event", "request"))

	startTime := time.Now()
	text, err := d.generator.Generate(ctx, prompt)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Text generation request failed",
			ports.F("model", model),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return "", err
	}

	d.logger.Info("Text generation request completed",
		ports.F("model", model),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("response_chars", len(text)))
	return text, nil
}

func (d *TextGeneratorLoggingDecorator) ModelName() string {
	return d.generator.ModelName()
}
