package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tripplanner.app/internal/adapters/api"
	"tripplanner.app/internal/adapters/infrastructure"
	"tripplanner.app/internal/config"
	"tripplanner.app/internal/core/itinerary"
	"tripplanner.app/internal/core/trip"
	"tripplanner.app/internal/core/user"
	"tripplanner.app/internal/core/weather"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/logger"
)

type Application struct {
	config *config.Config

	// Use Cases
	userUseCase      *user.UseCase
	tripUseCase      *trip.UseCase
	weatherUseCase   *weather.UseCase
	itineraryUseCase *itinerary.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine
	handler    http.Handler

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// NewApplication loads configuration from the environment and wires the whole service
func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires the service from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	appLogger := logger.NewWithLevel(logger.ParseLevel(cfg.Logging.Level))
	appLogger.SetDefault()

	deps, err := NewDependencyContainer(
		infrastructure.NewConfigProviderAdapter(cfg),
		infrastructure.NewSlogLoggerAdapter(appLogger),
	)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	userUseCase, err := user.NewUseCase(user.UseCaseDependencies{
		UserRepo:       a.ports.UserRepository,
		PasswordHasher: a.ports.PasswordHasher,
		TokenService:   a.ports.TokenService,
		Config:         a.ports.ConfigProvider,
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create user use case: %w", err)
	}
	a.userUseCase = userUseCase

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: a.ports.ForecastProvider,
		Cache:    a.ports.ForecastCache,
		Geocoder: a.ports.Geocoder,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	itineraryUseCase, err := itinerary.NewUseCase(itinerary.UseCaseDependencies{
		Generator: a.ports.TextGenerator,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create itinerary use case: %w", err)
	}
	a.itineraryUseCase = itineraryUseCase

	tripUseCase, err := trip.NewUseCase(trip.UseCaseDependencies{
		TripRepo:         a.ports.TripRepository,
		UserRepo:         a.ports.UserRepository,
		Geocoder:         a.ports.Geocoder,
		ItineraryUseCase: a.itineraryUseCase,
		WeatherUseCase:   a.weatherUseCase,
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create trip use case: %w", err)
	}
	a.tripUseCase = tripUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	cfg := a.ports.ConfigProvider
	geo := cfg.GetGeocodingConfig()
	gen := cfg.GetItineraryConfig()

	geocodingChecker := infrastructure.NewUpstreamConfigHealthChecker("geocoding", geo.APIKey != "",
		map[string]interface{}{"provider": a.ports.Geocoder.GetProviderName()})
	itineraryChecker := infrastructure.NewUpstreamConfigHealthChecker("itinerary", gen.APIKey != "",
		map[string]interface{}{"model": gen.Model})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:  infrastructure.NewDatabaseHealthChecker(a.deps.Database(), cfg.GetDatabaseConfig().Driver),
		CacheChecker:     infrastructure.NewCacheHealthChecker(cfg.GetCacheConfig().Type, a.deps.Cache()),
		GeocodingChecker: geocodingChecker,
		ItineraryChecker: itineraryChecker,
		ConfigProvider:   cfg,
	})

	httpConfig := cfg.GetHTTPConfig()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:             a.config.Server.Port,
			Environment:      a.config.Server.Environment,
			Version:          a.config.Server.Version,
			CORSOrigins:      httpConfig.CORSOrigins,
			RateLimitPerHour: httpConfig.RateLimitPerHour,
			MaxBodyBytes:     httpConfig.MaxBodyBytes,
		},
		AuthUseCase:    a.userUseCase,
		TripUseCase:    a.tripUseCase,
		WeatherUseCase: a.weatherUseCase,
		HealthChecker:  systemHealthChecker,
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()
	a.handler = httpAdapter.Handler()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port, "environment", a.config.Server.Environment)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Handler returns the fully wrapped HTTP handler
func (a *Application) Handler() http.Handler {
	return a.handler
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
