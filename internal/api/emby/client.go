// Package emby is a read-only client for the Emby server HTTP API. It
// normalizes the loosely-typed upstream JSON into the view models in
// internal/models and absorbs upstream failures at this boundary: domain
// methods return empty lists, nil pointers, or (value, false) instead of
// raising, so a flaky server degrades the monitoring views without taking
// them down.
package emby

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"embyassist/internal/logger"
)

const (
	// All REST routes live under the /emby prefix.
	apiPath = "/emby"

	metadataTimeout = 10 * time.Second
	imageTimeout    = 5 * time.Second
)

// Client is a client for the Emby API. It is safe for concurrent use; the
// only mutable state is the memoized account id guarded by mu.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	images  *http.Client
	logger  *logger.Logger

	mu     sync.Mutex
	userID string
}

// NewClient creates a new Emby client.
func NewClient(baseURL, token string) *Client {
	log := logger.Get().With().
		Str("component", "emby_client").
		Logger()

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: metadataTimeout},
		images:  &http.Client{Timeout: imageTimeout},
		logger:  &logger.Logger{Logger: log},
	}
}

// getJSON issues a GET against path and decodes the body into dest. The
// returned *APIError classifies the failure; nil means success. No retries
// happen here: callers treat any failure as an absent result.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest any) *APIError {
	body, _, apiErr := c.get(ctx, c.client, path, params)
	if apiErr != nil {
		return apiErr
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("Failed to decode response", map[string]interface{}{
			"endpoint": path,
			"error":    err.Error(),
		})
		return &APIError{Kind: ErrParse, URL: path, Err: err}
	}
	return nil
}

// getBytes issues a GET for a binary payload (artwork) using the shorter
// image timeout and returns the raw body with its content type.
func (c *Client) getBytes(ctx context.Context, path string, params url.Values) ([]byte, string, *APIError) {
	return c.get(ctx, c.images, path, params)
}

func (c *Client) get(ctx context.Context, hc *http.Client, path string, params url.Values) ([]byte, string, *APIError) {
	reqURL := c.baseURL + apiPath + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", &APIError{Kind: ErrTransportFault, URL: reqURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("X-Emby-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		c.logger.Error("Request failed", map[string]interface{}{
			"endpoint": path,
			"error":    err.Error(),
		})
		return nil, "", &APIError{Kind: ErrTransportFault, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Optional-field probing hits 404s routinely; stay silent.
		return nil, "", &APIError{Kind: ErrNotFound, StatusCode: resp.StatusCode, URL: reqURL}
	case resp.StatusCode >= 500:
		c.logger.Error("Server error", map[string]interface{}{
			"endpoint": path,
			"status":   resp.StatusCode,
		})
		return nil, "", &APIError{Kind: ErrServerFault, StatusCode: resp.StatusCode, URL: reqURL}
	case resp.StatusCode >= 400:
		return nil, "", &APIError{Kind: ErrClientRejected, StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", map[string]interface{}{
			"endpoint": path,
			"error":    err.Error(),
		})
		return nil, "", &APIError{Kind: ErrTransportFault, URL: reqURL, Err: err}
	}

	return body, resp.Header.Get("Content-Type"), nil
}
