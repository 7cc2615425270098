package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripplanner.app/internal/ports"
)

// getCityForecast handles GET /api/weather/forecast
func (s *HTTPServerAdapter) getCityForecast(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	country := strings.TrimSpace(c.Query("country"))
	s.logger.Debug("Getting forecast for city", ports.F("city", city), ports.F("country", country))

	result, err := s.weatherUseCase.GetForecastForCity(c.Request.Context(), city, country)
	if err != nil {
		s.handleError(c, err)
		return
	}

	lat, lon := result.Latitude, result.Longitude
	s.respond(c, http.StatusOK, "", ForecastResponse{
		City:        result.City,
		Country:     result.Country,
		Coordinates: coordinatesDTO{Latitude: &lat, Longitude: &lon},
		Forecast:    result.Forecast,
	})
}
