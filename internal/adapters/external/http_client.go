// Package external provides adapters for external services
// These adapters implement ports for geocoding, forecasts, text generation and caching.
package external

import (
	"io"
	"net/http"
	"time"

	"tripplanner.app/internal/ports"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func closeBody(body io.Closer, logger ports.Logger, service string) {
	if err := body.Close(); err != nil && logger != nil {
		logger.Warn("Failed to close response body", ports.F("service", service), ports.F("error", err))
	}
}
