package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	internal_errors "github.com/ruangdiskusi/webclient/internal/errors"
)

// Client handles all communication with the upstream forum API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a new client for interacting with the upstream API.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do is the single, unified helper for making API requests. A non-empty token
// is attached as a bearer credential.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// doJSON marshals data and issues the request.
func (c *Client) doJSON(ctx context.Context, method, path, token string, data any) (*http.Response, error) {
	var body io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, token, body)
}

// decode reads a JSON response body into out.
func decode(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}
	return nil
}

// statusError converts a non-2xx response into an error carrying the upstream
// status code, preferring the API's own error message when present.
func statusError(resp *http.Response, fallback string) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	msg := fallback
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
		msg = apiErr.Error
	} else if len(bodyBytes) > 0 {
		msg = string(bodyBytes)
	}
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: resp.StatusCode}
}
