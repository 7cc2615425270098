package external

import (
	"bytes"
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

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-1.5-flash"
)

// GeminiProviderAdapter implements TextGenerator port for the Gemini generateContent API
type GeminiProviderAdapter struct {
	apiKey  string
	baseURL string
	model   string
	client  HTTPClient
	logger  ports.Logger
}

// GeminiProviderParams holds parameters for creating the Gemini provider
type GeminiProviderParams struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiProviderAdapter creates a new Gemini text generator
func NewGeminiProviderAdapter(params GeminiProviderParams) ports.TextGenerator {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	model := params.Model
	if model == "" {
		model = defaultGeminiModel
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &GeminiProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		model:   model,
		client:  client,
		logger:  params.Logger,
	}
}

// Generate sends a single-turn prompt and returns the first candidate's text
func (p *GeminiProviderAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", errors.NewConfigurationError("GEMINI_API_KEY is not configured", nil)
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.NewExternalAPIError("failed to encode Gemini request", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, url.QueryEscape(p.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.NewExternalAPIError("failed to build Gemini request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.NewExternalAPIError("Network error calling Gemini API", err)
	}
	defer closeBody(resp.Body, p.logger, p.ModelName())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewExternalAPIError(fmt.Sprintf("Gemini API returned status %d", resp.StatusCode), nil)
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", errors.NewMalformedResponseError("failed to decode Gemini response", err)
	}
	if len(apiResp.Candidates) == 0 {
		return "", errors.NewMalformedResponseError("No candidates in Gemini response", nil)
	}
	content := apiResp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.NewMalformedResponseError("Unexpected response format: missing content parts", nil)
	}

	return content.Parts[0].Text, nil
}

// ModelName returns the configured Gemini model
func (p *GeminiProviderAdapter) ModelName() string {
	return p.model
}
