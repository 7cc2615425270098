package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"tripplanner.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 1440
	maxPortNumber       = 65535
	maxTokenExpiryDays  = 365
	maxUpstreamAttempts = 10
	maxTimeoutSeconds   = 300
	minJWTSecretLength  = 16
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Auth      AuthConfig      `split_words:"true"`
	Geocoding GeocodingConfig `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Itinerary ItineraryConfig `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	HTTP      HTTPConfig      `split_words:"true"`
	Logging   LoggingConfig   `split_words:"true"`
}

type ServerConfig struct {
	Port        int    `envconfig:"SERVER_PORT" default:"8080"`
	Environment string `envconfig:"APP_ENV" default:"production"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// IsDevelopment reports whether internal error details may be echoed to clients
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"tripplanner"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"instance/travel.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type AuthConfig struct {
	JWTSecret         string `envconfig:"JWT_SECRET_KEY" default:"jwt-secret-change-in-production"`
	TokenExpiryDays   int    `envconfig:"JWT_ACCESS_TOKEN_EXPIRES_DAYS" default:"7"`
	Issuer            string `envconfig:"JWT_ISSUER" default:"tripplanner-api"`
	MinPasswordLength int    `envconfig:"MIN_PASSWORD_LENGTH" default:"8"`
}

type GeocodingConfig struct {
	APIKey         string `envconfig:"GOOGLE_MAPS_API_KEY"`
	BaseURL        string `envconfig:"GEOCODING_API_BASE_URL" default:"https://maps.googleapis.com/maps/api"`
	TimeoutSeconds int    `envconfig:"GEOCODING_TIMEOUT_SECONDS" default:"10"`
}

type WeatherConfig struct {
	BaseURL         string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	EnableCache     bool   `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"60"`
	MaxRetries      int    `envconfig:"WEATHER_MAX_RETRIES" default:"5"`
	RetryBackoffMS  int    `envconfig:"WEATHER_RETRY_BACKOFF_MS" default:"200"`
	TimeoutSeconds  int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	ForecastDays    int    `envconfig:"WEATHER_FORECAST_DAYS" default:"3"`
}

type ItineraryConfig struct {
	APIKey         string `envconfig:"GEMINI_API_KEY"`
	BaseURL        string `envconfig:"GEMINI_API_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model          string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	TimeoutSeconds int    `envconfig:"GEMINI_TIMEOUT_SECONDS" default:"60"`
	BreakerEnabled bool   `envconfig:"GEMINI_CIRCUIT_BREAKER" default:"true"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type HTTPConfig struct {
	CORSOrigins      []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
	RateLimitPerHour int      `envconfig:"RATE_LIMIT_PER_HOUR" default:"50"`
	MaxBodyBytes     int64    `envconfig:"MAX_CONTENT_LENGTH" default:"16777216"`
}

type LoggingConfig struct {
	Level           string `envconfig:"LOG_LEVEL" default:"info"`
	EnableUpstream  bool   `envconfig:"UPSTREAM_ENABLE_LOGGING" default:"true"`
	UpstreamLogPath string `envconfig:"UPSTREAM_LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	validators := []func() error{
		c.Server.Validate,
		c.Database.Validate,
		c.Auth.Validate,
		c.Geocoding.Validate,
		c.Weather.Validate,
		c.Itinerary.Validate,
		c.Cache.Validate,
		c.HTTP.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	switch s.Environment {
	case "development", "production", "test":
	default:
		return errors.NewConfigurationError("APP_ENV must be one of: development, production, test", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (a *AuthConfig) Validate() error {
	if len(a.JWTSecret) < minJWTSecretLength {
		return errors.NewConfigurationError("JWT_SECRET_KEY must be at least 16 characters", nil)
	}
	if a.TokenExpiryDays < 1 || a.TokenExpiryDays > maxTokenExpiryDays {
		return errors.NewConfigurationError("JWT_ACCESS_TOKEN_EXPIRES_DAYS must be between 1 and 365", nil)
	}
	if a.MinPasswordLength < 1 {
		return errors.NewConfigurationError("MIN_PASSWORD_LENGTH must be at least 1", nil)
	}
	return nil
}

func (g *GeocodingConfig) Validate() error {
	if err := validateBaseURL("GEOCODING_API_BASE_URL", g.BaseURL); err != nil {
		return err
	}
	return validateTimeout("GEOCODING_TIMEOUT_SECONDS", g.TimeoutSeconds)
}

func (w *WeatherConfig) Validate() error {
	if err := validateBaseURL("WEATHER_API_BASE_URL", w.BaseURL); err != nil {
		return err
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.MaxRetries < 0 || w.MaxRetries > maxUpstreamAttempts {
		return errors.NewConfigurationError("WEATHER_MAX_RETRIES must be between 0 and 10", nil)
	}
	if w.RetryBackoffMS < 1 {
		return errors.NewConfigurationError("WEATHER_RETRY_BACKOFF_MS must be at least 1", nil)
	}
	if w.ForecastDays < 1 || w.ForecastDays > 16 {
		return errors.NewConfigurationError("WEATHER_FORECAST_DAYS must be between 1 and 16", nil)
	}
	return validateTimeout("WEATHER_TIMEOUT_SECONDS", w.TimeoutSeconds)
}

func (i *ItineraryConfig) Validate() error {
	if err := validateBaseURL("GEMINI_API_BASE_URL", i.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(i.Model) == "" {
		return errors.NewConfigurationError("GEMINI_MODEL cannot be empty", nil)
	}
	return validateTimeout("GEMINI_TIMEOUT_SECONDS", i.TimeoutSeconds)
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (h *HTTPConfig) Validate() error {
	if h.RateLimitPerHour < 1 {
		return errors.NewConfigurationError("RATE_LIMIT_PER_HOUR must be at least 1", nil)
	}
	if h.MaxBodyBytes < 1 {
		return errors.NewConfigurationError("MAX_CONTENT_LENGTH must be positive", nil)
	}
	return nil
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func validateTimeout(name string, seconds int) error {
	if seconds < 1 || seconds > maxTimeoutSeconds {
		return errors.NewConfigurationError(name+" must be between 1 and 300 seconds", nil)
	}
	return nil
}
