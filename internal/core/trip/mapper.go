package trip

import (
	"time"

	"tripplanner.app/internal/ports"
)

func fromPortsTrip(data *ports.TripData) *Trip {
	return &Trip{
		ID:                 data.ID,
		UserID:             data.UserID,
		Title:              data.Title,
		DestinationCity:    data.DestinationCity,
		DestinationCountry: data.DestinationCountry,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Duration:           data.Duration,
		BudgetAmount:       data.BudgetAmount,
		BudgetCurrency:     data.BudgetCurrency,
		Interests:          data.Interests,
		TravelStyle:        data.TravelStyle,
		ItineraryData:      data.ItineraryData,
		AIGenerated:        data.AIGenerated,
		GenerationModel:    data.GenerationModel,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		Status:             Status(data.Status),
		IsPublic:           data.IsPublic,
		IsFavorite:         data.IsFavorite,
		Notes:              data.Notes,
		Tags:               data.Tags,
		WeatherData:        data.WeatherData,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toPortsTrip(t *Trip) *ports.TripData {
	return &ports.TripData{
		ID:                 t.ID,
		UserID:             t.UserID,
		Title:              t.Title,
		DestinationCity:    t.DestinationCity,
		DestinationCountry: t.DestinationCountry,
		Latitude:           t.Latitude,
		Longitude:          t.Longitude,
		Duration:           t.Duration,
		BudgetAmount:       t.BudgetAmount,
		BudgetCurrency:     t.BudgetCurrency,
		Interests:          t.Interests,
		TravelStyle:        t.TravelStyle,
		ItineraryData:      t.ItineraryData,
		AIGenerated:        t.AIGenerated,
		GenerationModel:    t.GenerationModel,
		StartDate:          t.StartDate,
		EndDate:            t.EndDate,
		Status:             t.Status.String(),
		IsPublic:           t.IsPublic,
		IsFavorite:         t.IsFavorite,
		Notes:              t.Notes,
		Tags:               t.Tags,
		WeatherData:        t.WeatherData,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyBytes(in []byte) []byte {
	if in == nil {
		return nil
	}
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

func copyFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func copyTime(in *time.Time) *time.Time {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
