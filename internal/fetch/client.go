package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/motemen/go-loghttp"

	"github.com/astroview/apod-viewer/internal/model"
)

// APOD API constants
const (
	DefaultBaseURL = "https://api.nasa.gov/planetary/apod"
	DefaultAPIKey  = "DEMO_KEY"

	RequestTimeout = 30 * time.Second
)

// Client fetches picture-of-the-day records from the APOD API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new APOD API client. An empty apiKey falls back to the
// rate-limited demo key.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}

	return &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   RequestTimeout,
			Transport: newLoggingTransport(),
		},
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// newLoggingTransport wraps the default transport with request/response logging
func newLoggingTransport() http.RoundTripper {
	return &loghttp.Transport{
		LogRequest: func(req *http.Request) {
			slog.Debug("APOD request",
				"method", req.Method,
				"url", req.URL.String(),
			)
		},
		LogResponse: func(resp *http.Response) {
			slog.Debug("APOD response",
				"url", resp.Request.URL.String(),
				"status", resp.Status,
			)
		},
	}
}

// PictureOfTheDay fetches today's record. Video records carry an extracted
// thumbnail frame because the request asks for one.
func (c *Client) PictureOfTheDay(ctx context.Context) (model.Picture, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("thumbs", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return model.Picture{}, fmt.Errorf("failed to build APOD request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Picture{}, fmt.Errorf("APOD request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Picture{}, fmt.Errorf("APOD request returned status %d", resp.StatusCode)
	}

	var picture model.Picture
	if err := json.NewDecoder(resp.Body).Decode(&picture); err != nil {
		return model.Picture{}, fmt.Errorf("failed to decode APOD response: %w", err)
	}

	return picture, nil
}
