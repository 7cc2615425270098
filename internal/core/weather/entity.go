package weather

import (
	"fmt"
	"math"
	"time"

	"tripplanner.app/internal/ports"
)

// TemperatureVariable is the hourly variable requested from the forecast provider
const TemperatureVariable = "temperature_2m"

// ForecastRequest describes a coordinate and an optional date window
type ForecastRequest struct {
	Latitude  float64
	Longitude float64
	StartDate *time.Time
	Duration  int
}

// Forecast is an hourly series returned as parallel arrays
type Forecast struct {
	Dates        []time.Time `json:"date"`
	Temperatures []float64   `json:"temperature_2m"`
}

// CityForecast is a forecast for a geocoded place
type CityForecast struct {
	City      string
	Country   string
	Latitude  float64
	Longitude float64
	Forecast  *Forecast
}

// IsValid validates the forecast request
func (r *ForecastRequest) IsValid() error {
	if math.IsNaN(r.Latitude) || r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(r.Longitude) || r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if r.StartDate != nil && r.Duration < 1 {
		return fmt.Errorf("duration must be positive when a start date is given")
	}
	return nil
}

// Empty reports whether the forecast holds no samples
func (f *Forecast) Empty() bool {
	return f == nil || len(f.Dates) == 0
}

// CacheKey identifies the full upstream series for a coordinate
func CacheKey(latitude, longitude float64) string {
	return fmt.Sprintf("forecast:%.4f:%.4f:%s", latitude, longitude, TemperatureVariable)
}

// FilterWindow keeps samples in [start, start+days) and always returns non-nil slices
func FilterWindow(series *ports.ForecastSeries, start *time.Time, days int) *Forecast {
	out := &Forecast{
		Dates:        make([]time.Time, 0, series.Len()),
		Temperatures: make([]float64, 0, series.Len()),
	}
	if series == nil {
		return out
	}

	var from, to time.Time
	if start != nil {
		from = start.UTC()
		to = from.AddDate(0, 0, days)
	}

	for i, ts := range series.Times {
		if i >= len(series.Temperatures) {
			break
		}
		ts = ts.UTC()
		if start != nil && (ts.Before(from) || !ts.Before(to)) {
			continue
		}
		out.Dates = append(out.Dates, ts)
		out.Temperatures = append(out.Temperatures, series.Temperatures[i])
	}
	return out
}
