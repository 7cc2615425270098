package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

func lisbonTrip() map[string]interface{} {
	return map[string]interface{}{
		"destination_city":    "Lisbon",
		"destination_country": "Portugal",
		"duration":            3,
		"budget_amount":       1200.5,
		"start_date":          "2025-06-01",
		"interests":           []string{"food", "history"},
	}
}

func (e *testEnv) expectLisbon() {
	e.geocoder.EXPECT().
		Geocode(mock.Anything, "Lisbon", "Portugal").
		Return(&ports.Coordinates{Latitude: 38.7223, Longitude: -9.1393}, nil).
		Maybe()
}

func (e *testEnv) createTrip(t *testing.T, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w, resp := e.do(t, http.MethodPost, "/api/trips", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return tripFrom(t, resp)
}

func TestTripHandler_Create(t *testing.T) {
	env := setupTestServer(t, defaultServerConfig())
	token := env.signup(t, "ana@example.com")
	env.expectLisbon()

	w, body := env.do(t, http.MethodPost, "/api/trips", token, lisbonTrip())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Trip created", body["message"])

	tr := tripFrom(t, body)
	assert.Equal(t, "3-day trip to Lisbon", tr["title"])
	assert.Equal(t, "planned", tr["status"])
	assert.Equal(t, "2025-06-01", tr["start_date"])
	assert.Equal(t, "2025-06-03", tr["end_date"])
	assert.Equal(t, map[string]interface{}{"amount": 1200.5, "currency": "USD"}, tr["budget"])
	assert.Equal(t, false, tr["ai_generated"])
	assert.Nil(t, tr["itinerary_data"])

	dest := tr["destination"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"latitude": 38.7223, "longitude": -9.1393}, dest["coordinates"])

	t.Run("GeocodingFailureStillCreates", func(t *testing.T) {
		env.geocoder.EXPECT().
			Geocode(mock.Anything, "Atlantis", "Nowhere").
			Return(nil, errors.NewNotFoundError("Location not found")).
			Once()

		tr := env.createTrip(t, token, map[string]interface{}{
			"destination_city":    "Atlantis",
			"destination_country": "Nowhere",
			"duration":            "2",
			"budget_amount":       300,
		})
		dest := tr["destination"].(map[string]interface{})
		assert.Nil(t, dest["coordinates"])
		assert.Nil(t, tr["end_date"])
		assert.True(t, env.logger.HasMessage("warn", "Geocoding failed, trip stored without coordinates"))
	})

	t.Run("ExplicitCoordinatesSkipGeocoding", func(t *testing.T) {
		tr := env.createTrip(t, token, map[string]interface{}{
			"destination_city":    "Porto",
			"destination_country": "Portugal",
			"duration":            1,
			"budget_amount":       90,
			"coordinates":         map[string]float64{"latitude": 41.15, "longitude": -8.61},
		})
		dest := tr["destination"].(map[string]interface{})
		assert.Equal(t, 41.15, dest["coordinates"].(map[string]interface{})["latitude"])
	})
}

func TestTripHandler_CreateValidation(t *testing.T) {
	env := setupTestServer(t, defaultServerConfig())
	token := env.signup(t, "ana@example.com")

	tests := []struct {
		name    string
		mutate  func(map[string]interface{})
		message string
	}{
		{"MissingCity", func(b map[string]interface{}) { delete(b, "destination_city") }, "destination_city is required"},
		{"MissingDuration", func(b map[string]interface{}) { delete(b, "duration") }, "duration is required"},
		{"DurationTooLong", func(b map[string]interface{}) { b["duration"] = 31 }, "Duration must be between 1 and 30 days"},
		{"FractionalDuration", func(b map[string]interface{}) { b["duration"] = 2.5 }, "Duration must be a whole number"},
		{"NegativeBudget", func(b map[string]interface{}) { b["budget_amount"] = -5 }, "Budget must be a positive number"},
		{"BadDate", func(b map[string]interface{}) { b["start_date"] = "06/01/2025" }, "Invalid start_date format (use YYYY-MM-DD)"},
		{"BadTravelStyle", func(b map[string]interface{}) { b["travel_style"] = "cruise" }, "travel_style must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := lisbonTrip()
			tt.mutate(body)

			w, resp := env.do(t, http.MethodPost, "/api/trips", token, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, resp["success"])
			assert.Contains(t, resp["message"], tt.message)
		})
	}
}

func TestTripHandler_OwnerScoping(t *testing.T) {
	env := setupTestServer(t, defaultServerConfig())
	env.expectLisbon()
	owner := env.signup(t, "owner@example.com")
	stranger := env.signup(t, "stranger@example.com")

	id := int(env.createTrip(t, owner, lisbonTrip())["id"].(float64))
	path := fmt.Sprintf("/api/trips/%d", id)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w, body := env.do(t, method, path, stranger, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "Trip not found", body["message"])
	}

	w, _ := env.do(t, http.MethodPut, path, stranger, map[string]interface{}{"title": "Mine now"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.do(t, http.MethodPost, path+"/duplicate", stranger, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/trips/not-a-number", owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body := env.do(t, http.MethodGet, path, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3-day trip to Lisbon", tripFrom(t, body)["title"])
}

func TestTripHandler_List(t *testing.T) {
	env := setupTestServer(t, defaultServerConfig())
	env.expectLisbon()
	token := env.signup(t, "ana@example.com")

	for i := 1; i <= 3; i++ {
		body := lisbonTrip()
		body["title"] = fmt.Sprintf("Trip %d", i)
		body["budget_amount"] = i * 100
		env.createTrip(t, token, body)
	}

	w, body := env.do(t, http.MethodGet, "/api/trips?per_page=2&sort_by=budget_amount&sort_order=asc", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]interface{})
	trips := data["trips"].([]interface{})
	require.Len(t, trips, 2)
	assert.Equal(t, "Trip 1", trips[0].(map[string]interface{})["title"])
	assert.NotContains(t, trips[0], "itinerary_data")
	assert.Equal(t, map[string]interface{}{
		"page": 1.0, "per_page": 2.0, "total": 3.0, "pages": 2.0, "has_next": true, "has_prev": false,
	}, data["pagination"])

	t.Run("PerPageCapped", func(t *testing.T) {
		_, body := env.do(t, http.MethodGet, "/api/trips?per_page=500", token, nil)
		p := body["data"].(map[string]interface{})["pagination"].(map[string]interface{})
		assert.Equal(t, 50.0, p["per_page"])
	})

	t.Run("Search", func(t *testing.T) {
		_, body := env.do(t, http.MethodGet, "/api/trips?search=Trip%202", token, nil)
		trips := body["data"].(map[string]interface{})["trips"].([]interface{})
		require.Len(t, trips, 1)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		w, _ := env.do(t, http.MethodGet, "/api/trips?status=archived", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("EmptyForOtherUser", func(t *testing.T) {
		other := env.signup(t, "other@example.com")
		_, body := env.do(t, http.MethodGet, "/api/trips", other, nil)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, []interface{}{}, data["trips"])
	})
}

func TestTripHandler_UpdateDuplicateDelete(t *testing.T) {
	env := setupTestServer(t, defaultServerConfig())
	env.expectLisbon()
	token := env.signup(t, "ana@example.com")

	id := int(env.createTrip(t, token, lisbonTrip())["id"].(float64))
	path := fmt.Sprintf("/api/trips/%d", id)

	w, body := env.do(t, http.MethodPut, path, token, map[string]interface{}{
		"status":         "confirmed",
		"is_favorite":    true,
		"duration":       5,
		"notes":          "window seat",
		"itinerary_data": map[string]string{"itinerary_text": "Day 1: walk"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Trip updated", body["message"])
	tr := tripFrom(t, body)
	assert.Equal(t, "confirmed", tr["status"])
	assert.Equal(t, true, tr["is_favorite"])
	assert.Equal(t, "2025-06-05", tr["end_date"])
	assert.Equal(t, "window seat", tr["notes"])
	assert.Equal(t, map[string]interface{}{"itinerary_text": "Day 1: walk"}, tr["itinerary_data"])

	t.Run("InvalidStatus", func(t *testing.T) {
		w, _ := env.do(t, http.MethodPut, path, token, map[string]interface{}{"status": "archived"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		w, body := env.do(t, http.MethodPost, path+"/duplicate", token, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Trip duplicated", body["message"])

		dup := tripFrom(t, body)
		assert.NotEqual(t, float64(id), dup["id"])
		assert.Equal(t, "3-day trip to Lisbon (Copy)", dup["title"])
		assert.Equal(t, "planned", dup["status"])
		assert.Equal(t, false, dup["is_public"])
		assert.Equal(t, tr["itinerary_data"], dup["itinerary_data"])
	})

	t.Run("Delete", func(t *testing.T) {
		w, body := env.do(t, http.MethodDelete, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Trip deleted", body["message"])

		w, _ = env.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTripHandler_GenerateItinerary(t *testing.T) {
	env := setupTestServer(t, defaultServerConfig())
	env.expectLisbon()
	token := env.signup(t, "ana@example.com")

	id := int(env.createTrip(t, token, lisbonTrip())["id"].(float64))
	path := fmt.Sprintf("/api/trips/%d/generate-itinerary", id)

	t.Run("GeneratorFailureLeavesTripUntouched", func(t *testing.T) {
		env.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return("", errors.NewExternalAPIError("gemini down", nil)).
			Once()

		w, body := env.do(t, http.MethodPost, path, token, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "External service unavailable", body["message"])
		assert.NotContains(t, body, "error")

		_, body = env.do(t, http.MethodGet, fmt.Sprintf("/api/trips/%d", id), token, nil)
		tr := tripFrom(t, body)
		assert.Equal(t, false, tr["ai_generated"])
		assert.Nil(t, tr["itinerary_data"])
		assert.Nil(t, tr["weather_data"])
	})

	t.Run("StoresItineraryAndForecast", func(t *testing.T) {
		env.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return("Day 1: Alfama", nil).
			Once()
		env.forecast.EXPECT().
			GetHourlyForecast(mock.Anything, ports.ForecastQuery{Latitude: 38.7223, Longitude: -9.1393}).
			Return(hourlySeries(testNow, 96), nil).
			Once()

		w, body := env.do(t, http.MethodPost, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Itinerary generated", body["message"])

		tr := tripFrom(t, body)
		assert.Equal(t, true, tr["ai_generated"])
		assert.Equal(t, "gemini-1.5-flash", tr["generation_model"])
		assert.Equal(t, map[string]interface{}{
			"itinerary_text": "Day 1: Alfama",
			"model_used":     "gemini-1.5-flash",
		}, tr["itinerary_data"])

		wd := tr["weather_data"].(map[string]interface{})
		assert.Len(t, wd["date"], 72)
		assert.Len(t, wd["temperature_2m"], 72)
	})

	t.Run("WeatherFailureIsNotFatal", func(t *testing.T) {
		fresh := int(env.createTrip(t, token, lisbonTrip())["id"].(float64))
		env.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return("Day 1: Belem", nil).
			Once()
		env.forecast.EXPECT().
			GetHourlyForecast(mock.Anything, mock.Anything).
			Return(nil, errors.NewExternalAPIError("open-meteo down", nil)).
			Once()

		w, body := env.do(t, http.MethodPost, fmt.Sprintf("/api/trips/%d/generate-itinerary", fresh), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		tr := tripFrom(t, body)
		assert.True(t, env.logger.HasMessage("warn", "Weather lookup failed, itinerary stored without forecast"))
		assert.Equal(t, "Day 1: Belem", tr["itinerary_data"].(map[string]interface{})["itinerary_text"])
		assert.Nil(t, tr["weather_data"])
	})
}
