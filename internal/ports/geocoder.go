package ports

import "context"

// Coordinates is a resolved latitude/longitude pair
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a place name to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, city, country string) (*Coordinates, error)
	GetProviderName() string
}
