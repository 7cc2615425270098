package itinerary

import (
	"context"
	"strings"

	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

type UseCase struct {
	generator ports.TextGenerator
	logger    ports.Logger
}

type UseCaseDependencies struct {
	Generator ports.TextGenerator
	Logger    ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Generator == nil {
		return nil, errors.NewValidationError("text generator is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		generator: deps.Generator,
		logger:    deps.Logger,
	}, nil
}

// Generate makes a single call to the text generator; failures are returned as-is
func (uc *UseCase) Generate(ctx context.Context, request Request) (*Itinerary, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid itinerary request: " + err.Error())
	}

	prompt := BuildPrompt(request)
	uc.logger.Debug("Generating itinerary",
		ports.F("city", request.City),
		ports.F("duration", request.Duration),
		ports.F("model", uc.generator.ModelName()))

	text, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		switch errors.TypeOf(err) {
		case errors.UpstreamError, errors.MalformedResponseError:
			return nil, err
		}
		return nil, errors.NewExternalAPIError("itinerary generation failed", err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.NewMalformedResponseError("generated itinerary is empty", nil)
	}

	return &Itinerary{
		Text:  text,
		Model: uc.generator.ModelName(),
	}, nil
}

// ModelName returns the label of the configured generation backend
func (uc *UseCase) ModelName() string {
	return uc.generator.ModelName()
}
