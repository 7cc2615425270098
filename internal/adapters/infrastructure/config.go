package infrastructure

import (
	"time"

	"tripplanner.app/internal/config"
	"tripplanner.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:        c.config.Server.Port,
		Environment: c.config.Server.Environment,
		Version:     c.config.Server.Version,
	}
}

func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver: c.config.Database.Driver,
		DSN:    c.config.Database.GetDSN(),
	}
}

func (c *ConfigProviderAdapter) GetAuthConfig() ports.AuthConfig {
	return ports.AuthConfig{
		JWTSecret:         c.config.Auth.JWTSecret,
		TokenTTL:          time.Duration(c.config.Auth.TokenExpiryDays) * 24 * time.Hour,
		Issuer:            c.config.Auth.Issuer,
		MinPasswordLength: c.config.Auth.MinPasswordLength,
	}
}

func (c *ConfigProviderAdapter) GetGeocodingConfig() ports.GeocodingConfig {
	return ports.GeocodingConfig{
		APIKey:  c.config.Geocoding.APIKey,
		BaseURL: c.config.Geocoding.BaseURL,
		Timeout: seconds(c.config.Geocoding.TimeoutSeconds),
	}
}

func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		BaseURL:      c.config.Weather.BaseURL,
		EnableCache:  c.config.Weather.EnableCache,
		CacheTTL:     time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
		MaxRetries:   c.config.Weather.MaxRetries,
		RetryBackoff: time.Duration(c.config.Weather.RetryBackoffMS) * time.Millisecond,
		Timeout:      seconds(c.config.Weather.TimeoutSeconds),
		ForecastDays: c.config.Weather.ForecastDays,
	}
}

func (c *ConfigProviderAdapter) GetItineraryConfig() ports.ItineraryConfig {
	return ports.ItineraryConfig{
		APIKey:         c.config.Itinerary.APIKey,
		BaseURL:        c.config.Itinerary.BaseURL,
		Model:          c.config.Itinerary.Model,
		Timeout:        seconds(c.config.Itinerary.TimeoutSeconds),
		BreakerEnabled: c.config.Itinerary.BreakerEnabled,
	}
}

func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

func (c *ConfigProviderAdapter) GetHTTPConfig() ports.HTTPConfig {
	origins := make([]string, len(c.config.HTTP.CORSOrigins))
	copy(origins, c.config.HTTP.CORSOrigins)
	return ports.HTTPConfig{
		CORSOrigins:      origins,
		RateLimitPerHour: c.config.HTTP.RateLimitPerHour,
		MaxBodyBytes:     c.config.HTTP.MaxBodyBytes,
	}
}

func (c *ConfigProviderAdapter) GetLoggingConfig() ports.LoggingConfig {
	return ports.LoggingConfig{
		Level:           c.config.Logging.Level,
		EnableUpstream:  c.config.Logging.EnableUpstream,
		UpstreamLogPath: c.config.Logging.UpstreamLogPath,
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
