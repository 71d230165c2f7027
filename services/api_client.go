package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// ErrDecode is returned when a response body is not valid JSON.
var ErrDecode = errors.New("failed to decode response")

// ApiClient posts JSON to the auth backend and carries the CSRF cookie.
type ApiClient struct {
	BaseURL    string
	CSRFCookie string

	base       *url.URL
	httpClient *http.Client
}

// NewApiClient creates a client for baseURL with its own cookie jar.
// A zero timeout means requests are bounded only by their context.
func NewApiClient(baseURL, csrfCookie string, timeout time.Duration) (*ApiClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &ApiClient{
		BaseURL:    baseURL,
		CSRFCookie: csrfCookie,
		base:       base,
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// SetCookie stores a cookie for the base URL, e.g. a CSRF token obtained out of band.
func (c *ApiClient) SetCookie(name, value string) {
	c.httpClient.Jar.SetCookies(c.base, []*http.Cookie{{Name: name, Value: value, Path: "/"}})
}

// CSRFToken returns the current CSRF cookie value, or "" if none is set.
func (c *ApiClient) CSRFToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.base) {
		if cookie.Name == c.CSRFCookie {
			return cookie.Value
		}
	}
	return ""
}

// prepareRequest creates a new HTTP request with JSON and CSRF headers.
func (c *ApiClient) prepareRequest(ctx context.Context, method, endpoint string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request data: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.CSRFToken(); token != "" {
		req.Header.Set("X-CSRFToken", token)
	}
	return req, nil
}

// PostJSON posts payload to endpoint and decodes the response body into out.
// The status code is returned whenever the server answered, even with a decode error.
func (c *ApiClient) PostJSON(ctx context.Context, endpoint string, payload, out any) (int, error) {
	req, err := c.prepareRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("auth request completed", "endpoint", endpoint, "status", resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w (status %s): %v", ErrDecode, resp.Status, err)
	}
	return resp.StatusCode, nil
}
