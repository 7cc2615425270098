package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tripplanner.app/internal/core/itinerary"
	"tripplanner.app/internal/core/weather"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
	"tripplanner.app/pkg/validation"
)

const defaultTravelStyle = "mid-range"

type UseCase struct {
	tripRepo         ports.TripRepository
	userRepo         ports.UserRepository
	geocoder         ports.Geocoder
	itineraryUseCase *itinerary.UseCase
	weatherUseCase   *weather.UseCase
	logger           ports.Logger
}

type UseCaseDependencies struct {
	TripRepo         ports.TripRepository
	UserRepo         ports.UserRepository
	Geocoder         ports.Geocoder
	ItineraryUseCase *itinerary.UseCase
	WeatherUseCase   *weather.UseCase
	Logger           ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.TripRepo == nil {
		return nil, errors.NewValidationError("trip repository is required")
	}
	if deps.UserRepo == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.ItineraryUseCase == nil {
		return nil, errors.NewValidationError("itinerary use case is required")
	}
	if deps.WeatherUseCase == nil {
		return nil, errors.NewValidationError("weather use case is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		tripRepo:         deps.TripRepo,
		userRepo:         deps.UserRepo,
		geocoder:         deps.Geocoder,
		itineraryUseCase: deps.ItineraryUseCase,
		weatherUseCase:   deps.WeatherUseCase,
		logger:           deps.Logger,
	}, nil
}

// CreateTrip validates and stores a new trip. Geocoding failures leave coordinates unset.
func (uc *UseCase) CreateTrip(ctx context.Context, params CreateTripParams) (*Trip, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	owner, err := uc.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("load trip owner: %w", err)
	}

	t := &Trip{
		UserID:             params.UserID,
		Title:              strings.TrimSpace(params.Title),
		DestinationCity:    strings.TrimSpace(params.DestinationCity),
		DestinationCountry: strings.TrimSpace(params.DestinationCountry),
		Latitude:           params.Latitude,
		Longitude:          params.Longitude,
		Duration:           *params.Duration,
		BudgetAmount:       *params.BudgetAmount,
		BudgetCurrency:     normalizeCurrency(params.BudgetCurrency),
		Interests:          validation.NormalizeTags(params.Interests),
		TravelStyle:        strings.TrimSpace(params.TravelStyle),
		Status:             StatusPlanned,
		IsPublic:           params.IsPublic,
		IsFavorite:         params.IsFavorite,
		Notes:              params.Notes,
		Tags:               validation.NormalizeTags(params.Tags),
	}
	if t.Title == "" {
		t.Title = DefaultTitle(t.Duration, t.DestinationCity)
	}
	if len(t.Interests) == 0 {
		t.Interests = owner.Interests
	}
	if t.TravelStyle == "" {
		t.TravelStyle = owner.TravelStyle
	}
	if strings.TrimSpace(params.StartDate) != "" {
		start, _ := parseStartDate(params.StartDate)
		t.StartDate = start
		t.RecomputeEndDate()
	}

	if !t.HasCoordinates() {
		uc.resolveCoordinates(ctx, t)
	}

	if err := t.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	data := toPortsTrip(t)
	if err := uc.tripRepo.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save trip: %w", err)
	}

	uc.logger.Info("Trip created",
		ports.F("trip_id", data.ID),
		ports.F("user_id", data.UserID),
		ports.F("geocoded", data.Latitude != nil))
	return fromPortsTrip(data), nil
}

// GetTrip loads a trip owned by userID
func (uc *UseCase) GetTrip(ctx context.Context, id, userID uint) (*Trip, error) {
	data, err := uc.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return fromPortsTrip(data), nil
}

// ListTrips returns one page of the owner's trips
func (uc *UseCase) ListTrips(ctx context.Context, params ListTripsParams) (*TripList, error) {
	if err := params.Normalize(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	page, err := uc.tripRepo.List(ctx, ports.TripListParams{
		UserID:    params.UserID,
		Page:      params.Page,
		PerPage:   params.PerPage,
		Status:    params.Status,
		Search:    params.Search,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	trips := make([]*Trip, len(page.Trips))
	for i, data := range page.Trips {
		trips[i] = fromPortsTrip(data)
	}

	return &TripList{
		Trips:      trips,
		Pagination: NewPagination(params.Page, params.PerPage, page.Total),
	}, nil
}

// UpdateTrip applies edits to an owned trip
func (uc *UseCase) UpdateTrip(ctx context.Context, id, userID uint, params UpdateTripParams) (*Trip, error) {
	data, err := uc.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	t := fromPortsTrip(data)
	if err := params.Apply(t); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	updated := toPortsTrip(t)
	if err := uc.tripRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}

	uc.logger.Info("Trip updated", ports.F("trip_id", id), ports.F("user_id", userID))
	return fromPortsTrip(updated), nil
}

// DeleteTrip removes an owned trip
func (uc *UseCase) DeleteTrip(ctx context.Context, id, userID uint) error {
	if err := uc.tripRepo.Delete(ctx, id, userID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("Trip not found")
		}
		return fmt.Errorf("delete trip: %w", err)
	}
	uc.logger.Info("Trip deleted", ports.F("trip_id", id), ports.F("user_id", userID))
	return nil
}

// DuplicateTrip stores an independent copy of an owned trip
func (uc *UseCase) DuplicateTrip(ctx context.Context, id, userID uint) (*Trip, error) {
	data, err := uc.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	original := fromPortsTrip(data)
	clone := *original
	clone.ID = 0
	clone.Title = CopyTitle(original.Title)
	clone.Status = StatusPlanned
	clone.IsPublic = false
	clone.Latitude = copyFloat(original.Latitude)
	clone.Longitude = copyFloat(original.Longitude)
	clone.StartDate = copyTime(original.StartDate)
	clone.EndDate = copyTime(original.EndDate)
	clone.Interests = copyStrings(original.Interests)
	clone.Tags = copyStrings(original.Tags)
	clone.ItineraryData = copyBytes(original.ItineraryData)
	clone.WeatherData = copyBytes(original.WeatherData)
	clone.CreatedAt, clone.UpdatedAt = time.Time{}, time.Time{}

	saved := toPortsTrip(&clone)
	if err := uc.tripRepo.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("save duplicated trip: %w", err)
	}

	uc.logger.Info("Trip duplicated", ports.F("source_trip_id", id), ports.F("trip_id", saved.ID))
	return fromPortsTrip(saved), nil
}

// GenerateItinerary produces and stores an itinerary, plus a forecast when the trip has
// coordinates and a start date. Generator failures abort without writing anything.
func (uc *UseCase) GenerateItinerary(ctx context.Context, id, userID uint) (*Trip, error) {
	data, err := uc.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	t := fromPortsTrip(data)

	owner, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("load trip owner: %w", err)
	}

	request := itinerary.Request{
		City:           t.DestinationCity,
		Country:        t.DestinationCountry,
		Latitude:       t.Latitude,
		Longitude:      t.Longitude,
		Duration:       t.Duration,
		Interests:      t.Interests,
		BudgetAmount:   t.BudgetAmount,
		BudgetCurrency: t.BudgetCurrency,
		TravelStyle:    t.TravelStyle,
		StartDate:      t.StartDate,
	}
	if len(request.Interests) == 0 && owner != nil {
		request.Interests = owner.Interests
	}
	if request.TravelStyle == "" {
		request.TravelStyle = defaultTravelStyle
		if owner != nil && owner.TravelStyle != "" {
			request.TravelStyle = owner.TravelStyle
		}
	}

	generated, err := uc.itineraryUseCase.Generate(ctx, request)
	if err != nil {
		uc.logger.Error("Itinerary generation failed",
			ports.F("trip_id", id),
			ports.F("error", err))
		return nil, fmt.Errorf("generate itinerary for trip %d: %w", id, err)
	}

	payload, err := generated.Payload()
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}

	content := ports.GeneratedContent{
		ItineraryData:   payload,
		GenerationModel: generated.Model,
		Status:          t.Status.String(),
	}
	if t.Status == StatusDraft {
		content.Status = StatusPlanned.String()
	}
	if t.HasCoordinates() && t.StartDate != nil {
		content.WeatherData = uc.lookupWeather(ctx, t)
	}

	saved, err := uc.tripRepo.SaveGeneratedContent(ctx, id, userID, content)
	if err != nil {
		return nil, fmt.Errorf("store generated itinerary: %w", err)
	}

	uc.logger.Info("Itinerary generated",
		ports.F("trip_id", id),
		ports.F("model", generated.Model),
		ports.F("with_weather", content.WeatherData != nil))
	return fromPortsTrip(saved), nil
}

func (uc *UseCase) findOwned(ctx context.Context, id, userID uint) (*ports.TripData, error) {
	data, err := uc.tripRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Trip not found")
		}
		return nil, fmt.Errorf("find trip %d: %w", id, err)
	}
	return data, nil
}

func (uc *UseCase) resolveCoordinates(ctx context.Context, t *Trip) {
	coords, err := uc.geocoder.Geocode(ctx, t.DestinationCity, t.DestinationCountry)
	if err != nil {
		uc.logger.Warn("Geocoding failed, trip stored without coordinates",
			ports.F("city", t.DestinationCity),
			ports.F("country", t.DestinationCountry),
			ports.F("error", err))
		return
	}
	lat, lon := coords.Latitude, coords.Longitude
	t.Latitude, t.Longitude = &lat, &lon
}

func (uc *UseCase) lookupWeather(ctx context.Context, t *Trip) []byte {
	forecast, err := uc.weatherUseCase.GetForecast(ctx, weather.ForecastRequest{
		Latitude:  *t.Latitude,
		Longitude: *t.Longitude,
		StartDate: t.StartDate,
		Duration:  t.Duration,
	})
	if err != nil {
		uc.logger.Warn("Weather lookup failed, itinerary stored without forecast",
			ports.F("trip_id", t.ID),
			ports.F("error", err))
		return nil
	}

	raw, err := json.Marshal(forecast)
	if err != nil {
		uc.logger.Warn("Failed to encode forecast", ports.F("trip_id", t.ID), ports.F("error", err))
		return nil
	}
	return raw
}
