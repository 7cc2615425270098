package api

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"tripplanner.app/internal/core/trip"
	"tripplanner.app/internal/core/user"
	"tripplanner.app/pkg/errors"
	"tripplanner.app/pkg/validation"
)

const dateTimeLayout = time.RFC3339

// RegisterRequest is the body accepted by POST /api/auth/register
type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the body accepted by POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type budgetRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// ProfileUpdateRequest is the body accepted by PUT /api/auth/profile
type ProfileUpdateRequest struct {
	FirstName               *string      `json:"first_name"`
	LastName                *string      `json:"last_name"`
	TravelStyle             *string      `json:"travel_style" binding:"omitempty,travelstyle"`
	AccommodationPreference *string      `json:"accommodation_preference"`
	Interests               []string     `json:"interests"`
	PreferredActivities     []string     `json:"preferred_activities"`
	BudgetRange             *budgetRange `json:"budget_range"`
}

func (r *ProfileUpdateRequest) toDomain() user.ProfileUpdate {
	update := user.ProfileUpdate{
		FirstName:               r.FirstName,
		LastName:                r.LastName,
		TravelStyle:             r.TravelStyle,
		AccommodationPreference: r.AccommodationPreference,
		Interests:               r.Interests,
		PreferredActivities:     r.PreferredActivities,
	}
	if r.BudgetRange != nil {
		update.BudgetMin = r.BudgetRange.Min
		update.BudgetMax = r.BudgetRange.Max
	}
	return update
}

type coordinatesDTO struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CreateTripRequest is the body accepted by POST /api/trips
type CreateTripRequest struct {
	DestinationCity    string          `json:"destination_city" binding:"required"`
	DestinationCountry string          `json:"destination_country" binding:"required"`
	Duration           *json.Number    `json:"duration" binding:"required"`
	BudgetAmount       *json.Number    `json:"budget_amount" binding:"required"`
	BudgetCurrency     string          `json:"budget_currency"`
	Title              string          `json:"title"`
	TravelStyle        string          `json:"travel_style" binding:"omitempty,travelstyle"`
	Notes              string          `json:"notes"`
	Interests          []string        `json:"interests"`
	Coordinates        *coordinatesDTO `json:"coordinates"`
	StartDate          string          `json:"start_date"`
	Tags               []string        `json:"tags"`
	IsPublic           bool            `json:"is_public"`
}

func (r *CreateTripRequest) toDomain(userID uint) (trip.CreateTripParams, error) {
	duration, err := parseInt(r.Duration, "Duration")
	if err != nil {
		return trip.CreateTripParams{}, err
	}
	budget, err := parseFloat(r.BudgetAmount, "Budget")
	if err != nil {
		return trip.CreateTripParams{}, err
	}

	params := trip.CreateTripParams{
		UserID:             userID,
		Title:              r.Title,
		DestinationCity:    r.DestinationCity,
		DestinationCountry: r.DestinationCountry,
		Duration:           duration,
		BudgetAmount:       budget,
		BudgetCurrency:     r.BudgetCurrency,
		Interests:          r.Interests,
		TravelStyle:        r.TravelStyle,
		StartDate:          r.StartDate,
		IsPublic:           r.IsPublic,
		Notes:              r.Notes,
		Tags:               r.Tags,
	}
	if r.Coordinates != nil {
		params.Latitude = r.Coordinates.Latitude
		params.Longitude = r.Coordinates.Longitude
	}
	return params, nil
}

// UpdateTripRequest is the body accepted by PUT /api/trips/:id; absent fields stay unchanged
type UpdateTripRequest struct {
	Title              *string         `json:"title"`
	DestinationCity    *string         `json:"destination_city"`
	DestinationCountry *string         `json:"destination_country"`
	Duration           *json.Number    `json:"duration"`
	BudgetAmount       *json.Number    `json:"budget_amount"`
	BudgetCurrency     *string         `json:"budget_currency"`
	TravelStyle        *string         `json:"travel_style" binding:"omitempty,travelstyle"`
	Notes              *string         `json:"notes"`
	Interests          []string        `json:"interests"`
	Coordinates        *coordinatesDTO `json:"coordinates"`
	StartDate          *string         `json:"start_date"`
	Tags               []string        `json:"tags"`
	Status             *string         `json:"status" binding:"omitempty,tripstatus"`
	ItineraryData      json.RawMessage `json:"itinerary_data"`
	IsPublic           *bool           `json:"is_public"`
	IsFavorite         *bool           `json:"is_favorite"`
}

func (r *UpdateTripRequest) toDomain() (trip.UpdateTripParams, error) {
	duration, err := parseInt(r.Duration, "Duration")
	if err != nil {
		return trip.UpdateTripParams{}, err
	}
	budget, err := parseFloat(r.BudgetAmount, "Budget")
	if err != nil {
		return trip.UpdateTripParams{}, err
	}

	params := trip.UpdateTripParams{
		Title:              r.Title,
		DestinationCity:    r.DestinationCity,
		DestinationCountry: r.DestinationCountry,
		Duration:           duration,
		BudgetAmount:       budget,
		BudgetCurrency:     r.BudgetCurrency,
		Interests:          r.Interests,
		TravelStyle:        r.TravelStyle,
		StartDate:          r.StartDate,
		Status:             r.Status,
		IsPublic:           r.IsPublic,
		IsFavorite:         r.IsFavorite,
		Notes:              r.Notes,
		Tags:               r.Tags,
	}
	if r.Coordinates != nil {
		params.Latitude = r.Coordinates.Latitude
		params.Longitude = r.Coordinates.Longitude
	}
	if len(r.ItineraryData) > 0 && string(r.ItineraryData) != "null" {
		params.ItineraryData = []byte(r.ItineraryData)
	}
	return params, nil
}

func parseInt(n *json.Number, field string) (*int, error) {
	if n == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(n.String()))
	if err != nil {
		return nil, errors.NewValidationError(field + " must be a whole number")
	}
	return &v, nil
}

func parseFloat(n *json.Number, field string) (*float64, error) {
	if n == nil {
		return nil, nil
	}
	v, err := n.Float64()
	if err != nil {
		return nil, errors.NewValidationError(field + " must be a number")
	}
	return &v, nil
}

// UserResponse is the public view of a user; the password hash never leaves the server
type UserResponse struct {
	ID                      uint        `json:"id"`
	Username                string      `json:"username"`
	Email                   string      `json:"email"`
	FirstName               string      `json:"first_name"`
	LastName                string      `json:"last_name"`
	Interests               []string    `json:"interests"`
	BudgetRange             budgetRange `json:"budget_range"`
	PreferredActivities     []string    `json:"preferred_activities"`
	TravelStyle             string      `json:"travel_style"`
	AccommodationPreference string      `json:"accommodation_preference"`
	IsActive                bool        `json:"is_active"`
	CreatedAt               string      `json:"created_at"`
	UpdatedAt               string      `json:"updated_at"`
	LastLogin               *string     `json:"last_login"`
}

func newUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                      u.ID,
		Username:                u.Username,
		Email:                   u.Email,
		FirstName:               u.FirstName,
		LastName:                u.LastName,
		Interests:               nonNil(u.Interests),
		BudgetRange:             budgetRange{Min: u.BudgetMin, Max: u.BudgetMax},
		PreferredActivities:     nonNil(u.PreferredActivities),
		TravelStyle:             u.TravelStyle,
		AccommodationPreference: u.AccommodationPreference,
		IsActive:                u.IsActive,
		CreatedAt:               formatTime(u.CreatedAt),
		UpdatedAt:               formatTime(u.UpdatedAt),
		LastLogin:               formatTimePtr(u.LastLogin),
	}
}

type destinationDTO struct {
	City        string          `json:"city"`
	Country     string          `json:"country"`
	Coordinates *coordinatesDTO `json:"coordinates"`
}

type budgetDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// TripResponse is the summary view used in listings
type TripResponse struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id"`
	Title           string         `json:"title"`
	Destination     destinationDTO `json:"destination"`
	Duration        int            `json:"duration"`
	Budget          budgetDTO      `json:"budget"`
	Interests       []string       `json:"interests"`
	TravelStyle     string         `json:"travel_style"`
	StartDate       *string        `json:"start_date"`
	EndDate         *string        `json:"end_date"`
	Status          string         `json:"status"`
	IsPublic        bool           `json:"is_public"`
	IsFavorite      bool           `json:"is_favorite"`
	AIGenerated     bool           `json:"ai_generated"`
	GenerationModel string         `json:"generation_model"`
	Tags            []string       `json:"tags"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

// TripDetailResponse adds the stored blobs and notes
type TripDetailResponse struct {
	TripResponse
	ItineraryData json.RawMessage `json:"itinerary_data"`
	Notes         string          `json:"notes"`
	WeatherData   json.RawMessage `json:"weather_data"`
}

func newTripResponse(t *trip.Trip) TripResponse {
	dest := destinationDTO{City: t.DestinationCity, Country: t.DestinationCountry}
	if t.HasCoordinates() {
		dest.Coordinates = &coordinatesDTO{Latitude: t.Latitude, Longitude: t.Longitude}
	}
	return TripResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		Title:           t.Title,
		Destination:     dest,
		Duration:        t.Duration,
		Budget:          budgetDTO{Amount: t.BudgetAmount, Currency: t.BudgetCurrency},
		Interests:       nonNil(t.Interests),
		TravelStyle:     t.TravelStyle,
		StartDate:       formatDate(t.StartDate),
		EndDate:         formatDate(t.EndDate),
		Status:          t.Status.String(),
		IsPublic:        t.IsPublic,
		IsFavorite:      t.IsFavorite,
		AIGenerated:     t.AIGenerated,
		GenerationModel: t.GenerationModel,
		Tags:            nonNil(t.Tags),
		CreatedAt:       formatTime(t.CreatedAt),
		UpdatedAt:       formatTime(t.UpdatedAt),
	}
}

func newTripDetailResponse(t *trip.Trip) TripDetailResponse {
	return TripDetailResponse{
		TripResponse:  newTripResponse(t),
		ItineraryData: rawOrNull(t.ItineraryData),
		Notes:         t.Notes,
		WeatherData:   rawOrNull(t.WeatherData),
	}
}

// PaginationResponse mirrors trip.Pagination on the wire
type PaginationResponse struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// TripListResponse is the data payload of GET /api/trips
type TripListResponse struct {
	Trips      []TripResponse     `json:"trips"`
	Pagination PaginationResponse `json:"pagination"`
}

func newTripListResponse(list *trip.TripList) TripListResponse {
	trips := make([]TripResponse, 0, len(list.Trips))
	for i := range list.Trips {
		trips = append(trips, newTripResponse(list.Trips[i]))
	}
	p := list.Pagination
	return TripListResponse{
		Trips: trips,
		Pagination: PaginationResponse{
			Page:    p.Page,
			PerPage: p.PerPage,
			Total:   p.Total,
			Pages:   p.Pages,
			HasNext: p.HasNext,
			HasPrev: p.HasPrev,
		},
	}
}

// ForecastResponse is the data payload of GET /api/weather/forecast
type ForecastResponse struct {
	City        string         `json:"city"`
	Country     string         `json:"country"`
	Coordinates coordinatesDTO `json:"coordinates"`
	Forecast    interface{}    `json:"forecast"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(dateTimeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validation.DateLayout)
	return &s
}

func rawOrNull(b []byte) json.RawMessage {
	if len(b) == 0 || !json.Valid(b) {
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
