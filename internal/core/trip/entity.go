package trip

import (
	"fmt"
	"math"
	"strings"
	"time"

	"tripplanner.app/pkg/validation"
)

// Status represents the lifecycle state of a trip
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPlanned   Status = "planned"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

const (
	MinDuration     = 1
	MaxDuration     = 30
	DefaultCurrency = "USD"
	DefaultPerPage  = 10
	MaxPerPage      = 50
	copySuffix      = " (Copy)"
)

// IsValid reports whether s is one of the five canonical statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPlanned, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of status
func (s Status) String() string {
	return string(s)
}

// ParseStatus normalizes and validates a status label
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("status must be one of: draft, planned, confirmed, completed, cancelled")
	}
	return status, nil
}

// Trip is a planned journey owned by one user
type Trip struct {
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
	Status             Status
	IsPublic           bool
	IsFavorite         bool
	Notes              string
	Tags               []string
	WeatherData        []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasCoordinates reports whether both latitude and longitude are known
func (t *Trip) HasCoordinates() bool {
	return t.Latitude != nil && t.Longitude != nil
}

// RecomputeEndDate derives end date as start + duration - 1
func (t *Trip) RecomputeEndDate() {
	t.EndDate = EndDate(t.StartDate, t.Duration)
}

// Validate checks the trip invariants
func (t *Trip) Validate() error {
	if strings.TrimSpace(t.DestinationCity) == "" {
		return fmt.Errorf("destination_city is required")
	}
	if strings.TrimSpace(t.DestinationCountry) == "" {
		return fmt.Errorf("destination_country is required")
	}
	if err := validateDuration(t.Duration); err != nil {
		return err
	}
	if err := validateBudget(t.BudgetAmount); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("status must be one of: draft, planned, confirmed, completed, cancelled")
	}
	if err := validateCoordinates(t.Latitude, t.Longitude); err != nil {
		return err
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return fmt.Errorf("end_date cannot be before start_date")
	}
	return nil
}

// EndDate returns start + duration - 1 days, or nil without a start date
func EndDate(start *time.Time, duration int) *time.Time {
	if start == nil || duration < MinDuration {
		return nil
	}
	end := start.AddDate(0, 0, duration-1)
	return &end
}

// DefaultTitle is used when a trip is created without one
func DefaultTitle(duration int, city string) string {
	return fmt.Sprintf("%d-day trip to %s", duration, city)
}

// CopyTitle is the title given to a duplicated trip
func CopyTitle(title string) string {
	return title + copySuffix
}

func validateDuration(duration int) error {
	if duration < MinDuration || duration > MaxDuration {
		return fmt.Errorf("Duration must be between %d and %d days", MinDuration, MaxDuration)
	}
	return nil
}

func validateBudget(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("Budget must be a positive number")
	}
	return nil
}

func validateCoordinates(lat, lon *float64) error {
	if (lat == nil) != (lon == nil) {
		return fmt.Errorf("latitude and longitude must be provided together")
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 || *lon < -180 || *lon > 180 {
		return fmt.Errorf("coordinates out of range")
	}
	return nil
}

func parseStartDate(s string) (*time.Time, error) {
	d, ok := validation.ParseDate(s)
	if !ok {
		return nil, fmt.Errorf("Invalid start_date format (use YYYY-MM-DD)")
	}
	return &d, nil
}

// CreateTripParams carries a creation request; nil pointers mean the field was absent
type CreateTripParams struct {
	UserID             uint
	Title              string
	DestinationCity    string
	DestinationCountry string
	Latitude           *float64
	Longitude          *float64
	Duration           *int
	BudgetAmount       *float64
	BudgetCurrency     string
	Interests          []string
	TravelStyle        string
	StartDate          string
	IsPublic           bool
	IsFavorite         bool
	Notes              string
	Tags               []string
}

// Validate rejects requests missing a required field or carrying bad values
func (p *CreateTripParams) Validate() error {
	if strings.TrimSpace(p.DestinationCity) == "" {
		return fmt.Errorf("destination_city is required")
	}
	if strings.TrimSpace(p.DestinationCountry) == "" {
		return fmt.Errorf("destination_country is required")
	}
	if p.Duration == nil {
		return fmt.Errorf("duration is required")
	}
	if p.BudgetAmount == nil {
		return fmt.Errorf("budget_amount is required")
	}
	if err := validateDuration(*p.Duration); err != nil {
		return err
	}
	if err := validateBudget(*p.BudgetAmount); err != nil {
		return err
	}
	if err := validateCoordinates(p.Latitude, p.Longitude); err != nil {
		return err
	}
	if strings.TrimSpace(p.StartDate) != "" {
		if _, err := parseStartDate(p.StartDate); err != nil {
			return err
		}
	}
	return nil
}

// UpdateTripParams holds the editable fields; nil means unchanged
type UpdateTripParams struct {
	Title              *string
	DestinationCity    *string
	DestinationCountry *string
	Latitude           *float64
	Longitude          *float64
	Duration           *int
	BudgetAmount       *float64
	BudgetCurrency     *string
	Interests          []string
	TravelStyle        *string
	StartDate          *string
	Status             *string
	IsPublic           *bool
	IsFavorite         *bool
	Notes              *string
	Tags               []string
	ItineraryData      []byte
}

// Apply merges the update into t and re-derives the end date
func (p *UpdateTripParams) Apply(t *Trip) error {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.DestinationCity != nil {
		t.DestinationCity = strings.TrimSpace(*p.DestinationCity)
	}
	if p.DestinationCountry != nil {
		t.DestinationCountry = strings.TrimSpace(*p.DestinationCountry)
	}
	if p.Latitude != nil || p.Longitude != nil {
		if err := validateCoordinates(p.Latitude, p.Longitude); err != nil {
			return err
		}
		t.Latitude, t.Longitude = p.Latitude, p.Longitude
	}
	if p.BudgetAmount != nil {
		t.BudgetAmount = *p.BudgetAmount
	}
	if p.BudgetCurrency != nil {
		t.BudgetCurrency = normalizeCurrency(*p.BudgetCurrency)
	}
	if p.Interests != nil {
		t.Interests = validation.NormalizeTags(p.Interests)
	}
	if p.TravelStyle != nil {
		t.TravelStyle = strings.TrimSpace(*p.TravelStyle)
	}
	if p.Status != nil {
		status, err := ParseStatus(*p.Status)
		if err != nil {
			return err
		}
		t.Status = status
	}
	if p.IsPublic != nil {
		t.IsPublic = *p.IsPublic
	}
	if p.IsFavorite != nil {
		t.IsFavorite = *p.IsFavorite
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Tags != nil {
		t.Tags = validation.NormalizeTags(p.Tags)
	}
	if p.ItineraryData != nil {
		t.ItineraryData = p.ItineraryData
	}

	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.StartDate != nil {
		if strings.TrimSpace(*p.StartDate) == "" {
			t.StartDate = nil
		} else {
			start, err := parseStartDate(*p.StartDate)
			if err != nil {
				return err
			}
			t.StartDate = start
		}
	}
	if p.Duration != nil || p.StartDate != nil {
		t.RecomputeEndDate()
	}

	if t.Title == "" {
		t.Title = DefaultTitle(t.Duration, t.DestinationCity)
	}
	return t.Validate()
}

// ListTripsParams narrows an owner-scoped listing
type ListTripsParams struct {
	UserID    uint
	Page      int
	PerPage   int
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

var sortableColumns = map[string]struct{}{
	"created_at":          {},
	"updated_at":          {},
	"title":               {},
	"start_date":          {},
	"end_date":            {},
	"duration":            {},
	"budget_amount":       {},
	"destination_city":    {},
	"destination_country": {},
	"status":              {},
}

// Normalize clamps paging and falls back to created_at descending for unknown sort keys
func (p *ListTripsParams) Normalize() error {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}

	p.SortBy = strings.ToLower(strings.TrimSpace(p.SortBy))
	if _, ok := sortableColumns[p.SortBy]; !ok {
		p.SortBy = "created_at"
	}
	if strings.EqualFold(strings.TrimSpace(p.SortOrder), "asc") {
		p.SortOrder = "asc"
	} else {
		p.SortOrder = "desc"
	}

	p.Search = strings.TrimSpace(p.Search)
	if strings.TrimSpace(p.Status) != "" {
		status, err := ParseStatus(p.Status)
		if err != nil {
			return err
		}
		p.Status = status.String()
	} else {
		p.Status = ""
	}
	return nil
}

// Pagination describes where a page sits in the full listing
type Pagination struct {
	Page    int
	PerPage int
	Total   int64
	Pages   int
	HasNext bool
	HasPrev bool
}

// NewPagination derives page counts from a total
func NewPagination(page, perPage int, total int64) Pagination {
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// TripList is one page of trips
type TripList struct {
	Trips      []*Trip
	Pagination Pagination
}

func normalizeCurrency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency
	}
	return c
}
