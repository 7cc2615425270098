package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"tripplanner.app/internal/adapters/database"
	"tripplanner.app/internal/adapters/external"
	"tripplanner.app/internal/adapters/infrastructure"
	"tripplanner.app/internal/adapters/security"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

type DependencyContainer struct {
	config ports.ConfigProvider
	logger ports.Logger
	db     *gorm.DB
	cache  ports.CacheProvider
	ports  *ports.ApplicationPorts
}

// NewDependencyContainer opens the database and builds every adapter behind the ports
func NewDependencyContainer(configProvider ports.ConfigProvider, logger ports.Logger) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: configProvider,
		logger: logger,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func openDialector(cfg ports.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "sqlite":
		if cfg.DSN != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...")

	dbConfig := c.config.GetDatabaseConfig()
	dialector, err := openDialector(dbConfig)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if dbConfig.Driver == "sqlite" {
		// sqlite allows a single writer
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	slog.Info("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully", "driver", dbConfig.Driver)
	return nil
}

// upstreamLogger returns the logger used by upstream decorators, or nil when disabled
func (c *DependencyContainer) upstreamLogger() ports.Logger {
	cfg := c.config.GetLoggingConfig()
	if !cfg.EnableUpstream {
		return nil
	}
	if cfg.UpstreamLogPath == "" {
		return c.logger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(cfg.UpstreamLogPath)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return c.logger
	}
	slog.Info("Upstream file logging enabled", "path", cfg.UpstreamLogPath)
	return fileLogger
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	metrics := infrastructure.NewPrometheusMetricsCollector()
	upstreamLog := c.upstreamLogger()

	cacheConfig := c.config.GetCacheConfig()
	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&cacheConfig)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cacheProvider
	slog.Info("Cache provider initialized", "type", cacheConfig.Type)

	geoConfig := c.config.GetGeocodingConfig()
	var geocoder ports.Geocoder = external.NewGoogleGeocodingProviderAdapter(external.GoogleGeocodingProviderParams{
		APIKey:  geoConfig.APIKey,
		BaseURL: geoConfig.BaseURL,
		Timeout: geoConfig.Timeout,
		Logger:  c.logger,
	})
	geocoder = external.NewInstrumentedGeocoder(geocoder, metrics)
	if upstreamLog != nil {
		geocoder = external.NewGeocoderLoggingDecorator(geocoder, upstreamLog)
	}

	weatherConfig := c.config.GetWeatherConfig()
	var forecast ports.ForecastProvider = external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
		BaseURL: weatherConfig.BaseURL,
		Timeout: weatherConfig.Timeout,
		Logger:  c.logger,
	})
	forecast = external.NewInstrumentedForecastProvider(forecast, metrics)
	forecast = external.NewRetryingForecastProvider(forecast, weatherConfig.MaxRetries, weatherConfig.RetryBackoff, c.logger)
	if upstreamLog != nil {
		forecast = external.NewForecastProviderLoggingDecorator(forecast, upstreamLog)
	}

	itineraryConfig := c.config.GetItineraryConfig()
	var generator ports.TextGenerator = external.NewGeminiProviderAdapter(external.GeminiProviderParams{
		APIKey:  itineraryConfig.APIKey,
		BaseURL: itineraryConfig.BaseURL,
		Model:   itineraryConfig.Model,
		Timeout: itineraryConfig.Timeout,
		Logger:  c.logger,
	})
	generator = external.NewInstrumentedTextGenerator(generator, metrics)
	if itineraryConfig.BreakerEnabled {
		generator = external.NewCircuitBreakerTextGenerator(generator, external.DefaultCircuitBreakerSettings(), c.logger)
	}
	if upstreamLog != nil {
		generator = external.NewTextGeneratorLoggingDecorator(generator, upstreamLog)
	}

	authConfig := c.config.GetAuthConfig()
	tokens, err := security.NewJWTTokenService(security.JWTTokenServiceParams{
		Secret: authConfig.JWTSecret,
		Issuer: authConfig.Issuer,
		TTL:    authConfig.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		TripRepository: database.NewTripRepositoryAdapter(c.db),
		UserRepository: database.NewUserRepositoryAdapter(c.db),

		Geocoder:         geocoder,
		ForecastProvider: forecast,
		ForecastCache:    external.NewForecastCacheAdapter(cacheProvider, metrics),
		TextGenerator:    generator,

		PasswordHasher: security.NewBcryptPasswordHasher(bcrypt.DefaultCost),
		TokenService:   tokens,

		ConfigProvider: c.config,
		Logger:         c.logger,
		Metrics:        metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cache returns the raw cache backend, used by the cache health checker
func (c *DependencyContainer) Cache() ports.CacheProvider {
	return c.cache
}

// Cleanup closes the cache connection and the database pool
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if closer, ok := c.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			firstErr = err
		}
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
