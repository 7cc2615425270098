package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

const (
	defaultOpenMeteoBaseURL = "https://api.open-meteo.com/v1"
	openMeteoTimeLayout     = "2006-01-02T15:04"
)

// OpenMeteoProviderAdapter implements ForecastProvider port for Open-Meteo
type OpenMeteoProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenMeteoProviderParams holds parameters for creating the Open-Meteo provider
type OpenMeteoProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type openMeteoResponse struct {
	Hourly *struct {
		Time          []string   `json:"time"`
		Temperature2m []*float64 `json:"temperature_2m"`
	} `json:"hourly"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) ports.ForecastProvider {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenMeteoBaseURL
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &OpenMeteoProviderAdapter{
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetHourlyForecast retrieves the hourly temperature series for a coordinate pair
func (p *OpenMeteoProviderAdapter) GetHourlyForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastSeries, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(query.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(query.Longitude, 'f', -1, 64))
	values.Set("hourly", "temperature_2m")
	values.Set("timezone", "UTC")
	endpoint := fmt.Sprintf("%s/forecast?%s", p.baseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build forecast request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call Open-Meteo", err)
	}
	defer closeBody(resp.Body, p.logger, p.GetProviderName())

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("Open-Meteo returned status %d", resp.StatusCode), nil)
	}

	var apiResp openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewMalformedResponseError("failed to decode Open-Meteo response", err)
	}
	if apiResp.Hourly == nil {
		return nil, errors.NewMalformedResponseError("Open-Meteo response has no hourly block", nil)
	}

	return parseHourly(apiResp.Hourly.Time, apiResp.Hourly.Temperature2m)
}

func parseHourly(times []string, temps []*float64) (*ports.ForecastSeries, error) {
	if len(times) != len(temps) {
		return nil, errors.NewMalformedResponseError(
			fmt.Sprintf("Open-Meteo returned %d timestamps and %d temperatures", len(times), len(temps)), nil)
	}

	series := &ports.ForecastSeries{
		Times:        make([]time.Time, 0, len(times)),
		Temperatures: make([]float64, 0, len(temps)),
	}
	for i, raw := range times {
		ts, err := time.ParseInLocation(openMeteoTimeLayout, raw, time.UTC)
		if err != nil {
			return nil, errors.NewMalformedResponseError("invalid timestamp in Open-Meteo response", err)
		}
		// hours without a value are skipped
		if temps[i] == nil {
			continue
		}
		series.Times = append(series.Times, ts)
		series.Temperatures = append(series.Temperatures, *temps[i])
	}
	return series, nil
}

// GetProviderName returns the name of this forecast provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return "open-meteo"
}
