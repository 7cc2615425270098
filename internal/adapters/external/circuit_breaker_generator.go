package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// CircuitBreakerSettings controls when the text generator circuit opens
type CircuitBreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	HalfOpenRequests    uint32
}

// DefaultCircuitBreakerSettings returns the settings used for the itinerary generator
func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return CircuitBreakerSettings{
		Name:                "gemini-api",
		ConsecutiveFailures: 5,
		OpenTimeout:         time.Minute,
		HalfOpenRequests:    1,
	}
}

// CircuitBreakerTextGenerator rejects calls fast while the upstream generator keeps failing
type CircuitBreakerTextGenerator struct {
	generator ports.TextGenerator
	cb        *gobreaker.CircuitBreaker[string]
	logger    ports.Logger
}

// NewCircuitBreakerTextGenerator wraps generator with a gobreaker circuit
func NewCircuitBreakerTextGenerator(generator ports.TextGenerator, settings CircuitBreakerSettings, logger ports.Logger) *CircuitBreakerTextGenerator {
	g := &CircuitBreakerTextGenerator{generator: generator, logger: logger}

	g.cb = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.HalfOpenRequests,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		// only upstream failures count against the circuit
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.IsUpstreamError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if g.logger != nil {
				g.logger.Warn("Circuit breaker state changed",
					ports.F("breaker", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})

	return g
}

// Generate runs the wrapped generator inside the circuit
func (g *CircuitBreakerTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := g.cb.Execute(func() (string, error) {
		return g.generator.Generate(ctx, prompt)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", errors.NewExternalAPIError("Itinerary service temporarily unavailable", err)
		}
		return "", err
	}
	return text, nil
}

// ModelName returns the wrapped generator's model
func (g *CircuitBreakerTextGenerator) ModelName() string {
	return g.generator.ModelName()
}

// State returns the current circuit state
func (g *CircuitBreakerTextGenerator) State() gobreaker.State {
	return g.cb.State()
}
