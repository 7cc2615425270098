package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

const defaultGeocodingBaseURL = "https://maps.googleapis.com/maps/api"

// GoogleGeocodingProviderAdapter implements Geocoder port for the Google Geocoding API
type GoogleGeocodingProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// GoogleGeocodingProviderParams holds parameters for creating the geocoding provider
type GoogleGeocodingProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type googleGeocodingResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewGoogleGeocodingProviderAdapter creates a new geocoding adapter
func NewGoogleGeocodingProviderAdapter(params GoogleGeocodingProviderParams) ports.Geocoder {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGeocodingBaseURL
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &GoogleGeocodingProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// Geocode resolves "city, country" to the first matching location
func (p *GoogleGeocodingProviderAdapter) Geocode(ctx context.Context, city, country string) (*ports.Coordinates, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	address := city
	if c := strings.TrimSpace(country); c != "" {
		address = city + ", " + c
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", p.apiKey)
	endpoint := fmt.Sprintf("%s/geocode/json?%s", p.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build geocoding request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call geocoding service", err)
	}
	defer closeBody(resp.Body, p.logger, p.GetProviderName())

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("geocoding service returned status %d", resp.StatusCode), nil)
	}

	var apiResp googleGeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewMalformedResponseError("failed to decode geocoding response", err)
	}

	switch apiResp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, errors.NewNotFoundError("Location not found")
	default:
		msg := fmt.Sprintf("geocoding service returned status %s", apiResp.Status)
		if apiResp.ErrorMessage != "" {
			msg += ": " + apiResp.ErrorMessage
		}
		return nil, errors.NewExternalAPIError(msg, nil)
	}

	if len(apiResp.Results) == 0 {
		return nil, errors.NewNotFoundError("Location not found")
	}

	loc := apiResp.Results[0].Geometry.Location
	return &ports.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// GetProviderName returns the name of this geocoding provider
func (p *GoogleGeocodingProviderAdapter) GetProviderName() string {
	return "google-geocoding"
}
