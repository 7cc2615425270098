package itinerary

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/mocks"
	"tripplanner.app/pkg/errors"
)

func newUseCase(t *testing.T) (*UseCase, *mocks.TextGenerator) {
	generator := mocks.NewTextGenerator(t)
	generator.EXPECT().ModelName().Return("gemini-1.5-flash").Maybe()

	uc, err := NewUseCase(UseCaseDependencies{Generator: generator, Logger: mocks.NewLogger(t)})
	require.NoError(t, err)
	return uc, generator
}

func validRequest() Request {
	return Request{City: "Lisbon", Country: "Portugal", Duration: 3, BudgetAmount: 900, BudgetCurrency: "EUR", TravelStyle: "mid-range"}
}

func TestUseCase_Generate_Success(t *testing.T) {
	uc, generator := newUseCase(t)
	generator.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Lisbon, Portugal") && strings.Contains(prompt, "Budget: 900.00 EUR")
	})).Return("Day 1: Alfama", nil)

	result, err := uc.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Day 1: Alfama", result.Text)
	assert.Equal(t, "gemini-1.5-flash", result.Model)
}

func TestUseCase_Generate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		genErr    error
		checkType func(error) bool
	}{
		{"TransportError", "", stderrors.New("dial tcp: timeout"), errors.IsUpstreamError},
		{"UpstreamPreserved", "", errors.NewExternalAPIError("status 500", nil), errors.IsUpstreamError},
		{"MalformedPreserved", "", errors.NewMalformedResponseError("no candidates", nil), errors.IsMalformedResponseError},
		{"EmptyText", "   ", nil, errors.IsMalformedResponseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, generator := newUseCase(t)
			generator.EXPECT().Generate(mock.Anything, mock.Anything).Return(tt.text, tt.genErr)

			result, err := uc.Generate(context.Background(), validRequest())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, tt.checkType(err))
		})
	}
}

func TestUseCase_Generate_InvalidRequest(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Generate(context.Background(), Request{City: "Lisbon"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewUseCase_RequiresGenerator(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Logger: mocks.NewLogger(t)})
	assert.True(t, errors.IsValidationError(err))
}
