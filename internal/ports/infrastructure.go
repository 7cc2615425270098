package ports

import (
	"context"
	"time"
)

// ServerConfig represents server configuration
type ServerConfig struct {
	Port        int
	Environment string
	Version     string
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// AuthConfig represents token and password policy configuration
type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	Issuer            string
	MinPasswordLength int
}

// GeocodingConfig represents geocoding service configuration
type GeocodingConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// WeatherConfig represents weather service configuration
type WeatherConfig struct {
	BaseURL      string
	EnableCache  bool
	CacheTTL     time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	Timeout      time.Duration
	ForecastDays int
}

// ItineraryConfig represents text generation service configuration
type ItineraryConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	BreakerEnabled bool
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// HTTPConfig represents HTTP middleware configuration
type HTTPConfig struct {
	CORSOrigins      []string
	RateLimitPerHour int
	MaxBodyBytes     int64
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level           string
	EnableUpstream  bool
	UpstreamLogPath string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetAuthConfig() AuthConfig
	GetGeocodingConfig() GeocodingConfig
	GetWeatherConfig() WeatherConfig
	GetItineraryConfig() ItineraryConfig
	GetCacheConfig() CacheConfig
	GetHTTPConfig() HTTPConfig
	GetLoggingConfig() LoggingConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordUpstreamCall(ctx context.Context, service string, success bool, duration time.Duration)
	RecordItineraryGenerated(ctx context.Context, model string)
}
