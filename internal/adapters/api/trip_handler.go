package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripplanner.app/internal/core/trip"
	"tripplanner.app/pkg/errors"
)

type tripData struct {
	Trip TripDetailResponse `json:"trip"`
}

func tripID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError("Trip not found")
	}
	return uint(id), nil
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// listTrips handles GET /api/trips
func (s *HTTPServerAdapter) listTrips(c *gin.Context) {
	list, err := s.tripUseCase.ListTrips(c.Request.Context(), trip.ListTripsParams{
		UserID:    currentUserID(c),
		Page:      queryInt(c, "page"),
		PerPage:   queryInt(c, "per_page"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "", newTripListResponse(list))
}

// createTrip handles POST /api/trips
func (s *HTTPServerAdapter) createTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}

	params, err := req.toDomain(currentUserID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	created, err := s.tripUseCase.CreateTrip(c.Request.Context(), params)
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusCreated, "Trip created", tripData{Trip: newTripDetailResponse(created)})
}

// getTrip handles GET /api/trips/:id
func (s *HTTPServerAdapter) getTrip(c *gin.Context) {
	id, err := tripID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	t, err := s.tripUseCase.GetTrip(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "", tripData{Trip: newTripDetailResponse(t)})
}

// updateTrip handles PUT /api/trips/:id
func (s *HTTPServerAdapter) updateTrip(c *gin.Context) {
	id, err := tripID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}
	params, err := req.toDomain()
	if err != nil {
		s.handleError(c, err)
		return
	}

	updated, err := s.tripUseCase.UpdateTrip(c.Request.Context(), id, currentUserID(c), params)
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "Trip updated", tripData{Trip: newTripDetailResponse(updated)})
}

// deleteTrip handles DELETE /api/trips/:id
func (s *HTTPServerAdapter) deleteTrip(c *gin.Context) {
	id, err := tripID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.tripUseCase.DeleteTrip(c.Request.Context(), id, currentUserID(c)); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "Trip deleted", nil)
}

// duplicateTrip handles POST /api/trips/:id/duplicate
func (s *HTTPServerAdapter) duplicateTrip(c *gin.Context) {
	id, err := tripID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	dup, err := s.tripUseCase.DuplicateTrip(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusCreated, "Trip duplicated", tripData{Trip: newTripDetailResponse(dup)})
}

// generateItinerary handles POST /api/trips/:id/generate-itinerary
func (s *HTTPServerAdapter) generateItinerary(c *gin.Context) {
	id, err := tripID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	t, err := s.tripUseCase.GenerateItinerary(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "Itinerary generated", tripData{Trip: newTripDetailResponse(t)})
}
