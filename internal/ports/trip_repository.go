package ports

import (
	"context"
	"time"
)

// TripData represents trip data for persistence
type TripData struct {
	ID                 uint
	UserID             uint
	Title              string
	DestinationCity    string
	DestinationCountry string
	Latitude           *float64
	Longitude          *float64
	Duration           int
	BudgetAmount       float64
	BudgetCurrency     string
	Interests          []string
	TravelStyle        string
	ItineraryData      []byte
	AIGenerated        bool
	GenerationModel    string
	StartDate          *time.Time
	EndDate            *time.Time
	Status             string
	IsPublic           bool
	IsFavorite         bool
	Notes              string
	Tags               []string
	WeatherData        []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TripListParams narrows and orders an owner-scoped trip listing
type TripListParams struct {
	UserID    uint
	Page      int
	PerPage   int
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

// TripPage is one page of a trip listing
type TripPage struct {
	Trips []*TripData
	Total int64
}

// GeneratedContent is the result of itinerary generation committed in one write
type GeneratedContent struct {
	ItineraryData   []byte
	WeatherData     []byte
	GenerationModel string
	Status          string
}

// TripRepository defines the contract for trip data persistence
type TripRepository interface {
	Save(ctx context.Context, trip *TripData) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*TripData, error)
	Update(ctx context.Context, trip *TripData) error
	Delete(ctx context.Context, id, userID uint) error
	List(ctx context.Context, params TripListParams) (*TripPage, error)
	SaveGeneratedContent(ctx context.Context, id, userID uint, content GeneratedContent) (*TripData, error)
}
