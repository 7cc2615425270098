package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tripplanner.app/pkg/validation"
)

const (
	fallbackInterests = "General sightseeing"
	unspecifiedDate   = "Not specified"
	defaultCurrency   = "USD"
)

// Request carries everything the prompt is built from
type Request struct {
	City           string
	Country        string
	Latitude       *float64
	Longitude      *float64
	Duration       int
	Interests      []string
	BudgetAmount   float64
	BudgetCurrency string
	TravelStyle    string
	StartDate      *time.Time
}

// Itinerary is the raw generated plan and the backend that produced it
type Itinerary struct {
	Text  string `json:"itinerary_text"`
	Model string `json:"model_used"`
}

// IsValid validates the generation request
func (r *Request) IsValid() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("destination city cannot be empty")
	}
	if strings.TrimSpace(r.Country) == "" {
		return fmt.Errorf("destination country cannot be empty")
	}
	if r.Duration < 1 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

// Payload encodes the itinerary for storage on a trip
func (i *Itinerary) Payload() ([]byte, error) {
	return json.Marshal(i)
}

// BuildPrompt renders the text generation prompt. Output depends only on r.
func BuildPrompt(r Request) string {
	interests := fallbackInterests
	if len(r.Interests) > 0 {
		interests = strings.Join(r.Interests, ", ")
	}

	startDate := unspecifiedDate
	if r.StartDate != nil {
		startDate = r.StartDate.Format(validation.DateLayout)
	}

	currency := r.BudgetCurrency
	if currency == "" {
		currency = defaultCurrency
	}

	var b strings.Builder
	b.WriteString("You are an expert travel planner. Create a detailed itinerary.\n\n")
	fmt.Fprintf(&b, "Destination: %s, %s\n", r.City, r.Country)
	if r.Latitude != nil && r.Longitude != nil {
		fmt.Fprintf(&b, "Coordinates: %.4f, %.4f\n", *r.Latitude, *r.Longitude)
	}
	fmt.Fprintf(&b, "Duration: %d days\n", r.Duration)
	fmt.Fprintf(&b, "Start Date: %s\n", startDate)
	fmt.Fprintf(&b, "Interests: %s\n", interests)
	fmt.Fprintf(&b, "Budget: %.2f %s\n", r.BudgetAmount, currency)
	fmt.Fprintf(&b, "Travel Style: %s\n\n", r.TravelStyle)
	b.WriteString("Provide a clear, day-by-day plan with morning, afternoon, and evening activities.\n")
	b.WriteString("Each activity should include a short engaging description and practical local tips.")
	return b.String()
}
