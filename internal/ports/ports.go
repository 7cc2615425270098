package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Persistence
	TripRepository TripRepository
	UserRepository UserRepository

	// Upstream services
	Geocoder         Geocoder
	ForecastProvider ForecastProvider
	ForecastCache    ForecastCache
	TextGenerator    TextGenerator

	// Security
	PasswordHasher PasswordHasher
	TokenService   TokenService

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
