package external

import (
	"context"
	"time"

	"tripplanner.app/internal/ports"
)

// InstrumentedForecastProvider records call counts and latency for a forecast provider
type InstrumentedForecastProvider struct {
	provider ports.ForecastProvider
	metrics  ports.MetricsCollector
}

func NewInstrumentedForecastProvider(provider ports.ForecastProvider, metrics ports.MetricsCollector) ports.ForecastProvider {
	return &InstrumentedForecastProvider{provider: provider, metrics: metrics}
}

func (p *InstrumentedForecastProvider) GetHourlyForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastSeries, error) {
	start := time.Now()
	series, err := p.provider.GetHourlyForecast(ctx, query)
	p.metrics.RecordUpstreamCall(ctx, "forecast", err == nil, time.Since(start))
	return series, err
}

func (p *InstrumentedForecastProvider) GetProviderName() string {
	return p.provider.GetProviderName()
}

// InstrumentedGeocoder records call counts and latency for a geocoder
type InstrumentedGeocoder struct {
	geocoder ports.Geocoder
	metrics  ports.MetricsCollector
}

func NewInstrumentedGeocoder(geocoder ports.Geocoder, metrics ports.MetricsCollector) ports.Geocoder {
	return &InstrumentedGeocoder{geocoder: geocoder, metrics: metrics}
}

func (g *InstrumentedGeocoder) Geocode(ctx context.Context, city, country string) (*ports.Coordinates, error) {
	start := time.Now()
	coords, err := g.geocoder.Geocode(ctx, city, country)
	g.metrics.RecordUpstreamCall(ctx, "geocoding", err == nil, time.Since(start))
	return coords, err
}

func (g *InstrumentedGeocoder) GetProviderName() string {
	return g.geocoder.GetProviderName()
}

// InstrumentedTextGenerator records call counts, latency and produced itineraries
type InstrumentedTextGenerator struct {
	generator ports.TextGenerator
	metrics   ports.MetricsCollector
}

func NewInstrumentedTextGenerator(generator ports.TextGenerator, metrics ports.MetricsCollector) ports.TextGenerator {
	return &InstrumentedTextGenerator{generator: generator, metrics: metrics}
}

func (g *InstrumentedTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := g.generator.Generate(ctx, prompt)
	g.metrics.RecordUpstreamCall(ctx, "itinerary", err == nil, time.Since(start))
	if err == nil {
		g.metrics.RecordItineraryGenerated(ctx, g.generator.ModelName())
	}
	return text, err
}

func (g *InstrumentedTextGenerator) ModelName() string {
	return g.generator.ModelName()
}
