// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tripplanner.app/internal/core/trip"
	"tripplanner.app/internal/core/user"
	"tripplanner.app/internal/core/weather"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port             int
	Environment      string
	Version          string
	CORSOrigins      []string
	RateLimitPerHour int
	MaxBodyBytes     int64
}

// IsDevelopment reports whether error details may be exposed to clients
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	authUseCase    AuthUseCase
	tripUseCase    TripUseCase
	weatherUseCase WeatherUseCase
	healthChecker  ports.SystemHealthChecker
	logger         ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type AuthUseCase interface {
	Register(ctx context.Context, request user.RegisterRequest) (*user.User, error)
	Login(ctx context.Context, request user.LoginRequest) (*user.Session, error)
	Authenticate(ctx context.Context, token string) (*user.User, error)
	GetProfile(ctx context.Context, userID uint) (*user.User, error)
	UpdateProfile(ctx context.Context, userID uint, update user.ProfileUpdate) (*user.User, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

type TripUseCase interface {
	CreateTrip(ctx context.Context, params trip.CreateTripParams) (*trip.Trip, error)
	GetTrip(ctx context.Context, id, userID uint) (*trip.Trip, error)
	ListTrips(ctx context.Context, params trip.ListTripsParams) (*trip.TripList, error)
	UpdateTrip(ctx context.Context, id, userID uint, params trip.UpdateTripParams) (*trip.Trip, error)
	DeleteTrip(ctx context.Context, id, userID uint) error
	DuplicateTrip(ctx context.Context, id, userID uint) (*trip.Trip, error)
	GenerateItinerary(ctx context.Context, id, userID uint) (*trip.Trip, error)
}

type WeatherUseCase interface {
	GetForecastForCity(ctx context.Context, city, country string) (*weather.CityForecast, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	AuthUseCase    AuthUseCase
	TripUseCase    TripUseCase
	WeatherUseCase WeatherUseCase
	HealthChecker  ports.SystemHealthChecker
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := RegisterValidators(); err != nil {
		return nil, errors.NewConfigurationError("failed to register request validators", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		authUseCase:    opts.AuthUseCase,
		tripUseCase:    opts.TripUseCase,
		weatherUseCase: opts.WeatherUseCase,
		healthChecker:  opts.HealthChecker,
		logger:         opts.Logger,
	}

	router.Use(server.requestLogger())
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.AuthUseCase == nil {
		return errors.NewValidationError("auth use case is required")
	}
	if opts.TripUseCase == nil {
		return errors.NewValidationError("trip use case is required")
	}
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.NoRoute(func(c *gin.Context) {
		s.handleError(c, errors.NewNotFoundError("Resource not found"))
	})

	api := s.router.Group("/api")
	api.GET("/health", s.health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)

		profile := auth.Group("/profile", s.requireAuth())
		profile.GET("", s.getProfile)
		profile.PUT("", s.updateProfile)
		profile.DELETE("", s.deleteProfile)
	}

	trips := api.Group("/trips", s.requireAuth())
	{
		trips.GET("", s.listTrips)
		trips.POST("", s.createTrip)
		trips.GET("/:id", s.getTrip)
		trips.PUT("/:id", s.updateTrip)
		trips.DELETE("/:id", s.deleteTrip)
		trips.POST("/:id/generate-itinerary", s.generateItinerary)
		trips.POST("/:id/duplicate", s.duplicateTrip)
	}

	api.GET("/weather/forecast", s.getCityForecast)

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the router wrapped in CORS, rate limiting and body size limits
func (s *HTTPServerAdapter) Handler() http.Handler {
	var h http.Handler = s.router
	h = limitBody(h, s.config.MaxBodyBytes)
	h = rateLimit(h, s.config.RateLimitPerHour)
	h = corsMiddleware(s.config.CORSOrigins)(h)
	return h
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// rateLimited reports whether a path counts against the per-client budget
func rateLimited(path string) bool {
	return strings.HasPrefix(path, "/api/") && path != "/api/health"
}
