// Package api is the client for the QuimiDocs REST backend.
//
// The backend is a black box: authentication, storage, aggregation, and
// file handling all live there. Every call carries the bearer token
// automatically and server error payloads are surfaced unchanged for
// the caller to render.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the QuimiDocs backend API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewClient creates a new backend API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token attached to every request
func (c *Client) SetToken(token string) {
	c.Token = token
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// doMultipart performs a multipart/form-data request with authentication.
// contentType must be the writer's boundary-qualified value.
func (c *Client) doMultipart(ctx context.Context, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// errorPayload covers the error body shapes the backend is known to emit
type errorPayload struct {
	Msg     string `json:"msg"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the backend, carrying the
// best-effort human message extracted from the payload.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsAuthFailure reports whether the error is a 401
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether the error is a 403
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// parseResponse parses the response body into the target struct.
// Non-2xx responses become an *APIError with the server's message when
// one can be extracted and a generic message otherwise.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{StatusCode: resp.StatusCode}

		var payload errorPayload
		if err := json.Unmarshal(body, &payload); err == nil {
			switch {
			case payload.Msg != "":
				apiErr.Message = payload.Msg
			case payload.Error != "":
				apiErr.Message = payload.Error
			case payload.Message != "":
				apiErr.Message = payload.Message
			}
		}

		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}

		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
