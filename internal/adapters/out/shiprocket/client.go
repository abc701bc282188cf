// Package shiprocket is the outbound adapter for the Shiprocket
// aggregator API: login, token caching, pickup locations, shipment
// orders, serviceability rates and AWB assignment.
package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nexye/internal/pkg/errs"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://apiv2.shiprocket.in"

// DefaultTimeout bounds every Shiprocket call. The upstream publishes
// no SLA; 15s keeps a slow upstream from stalling the whole pipeline.
const DefaultTimeout = 15 * time.Second

// Config holds the connection settings for the Shiprocket API.
type Config struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  time.Duration
}

// Client is the low-level HTTP client. It only knows how to build,
// send and decode requests; the Gateway on top speaks the domain.
type Client struct {
	baseURL  string
	email    string
	password string
	http     *http.Client
}

// NewClient creates a Client. Zero-value config fields fall back to
// the production host and the default timeout.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:  baseURL,
		email:    cfg.Email,
		password: cfg.Password,
		http:     &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and returns the status code with the raw
// body. The upstream mixes transport status with application-level
// flags, so callers inspect both.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// Login exchanges the service credentials for a fresh API token. A
// non-2xx response or a missing token field is an AuthError carrying
// the upstream message.
func (c *Client) Login(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/external/auth/login", "", loginRequest{
		Email:    c.email,
		Password: c.password,
	})
	if err != nil {
		return "", err
	}

	status, body, err := c.do(req)
	if err != nil {
		return "", errs.NewAuthErrorWithCause("Shiprocket authentication failed", err)
	}

	var decoded loginResponse
	_ = json.Unmarshal(body, &decoded)

	if status < 200 || status >= 300 || decoded.Token == "" {
		message := decoded.Message
		if message == "" {
			message = http.StatusText(status)
		}
		return "", errs.NewAuthError("Failed to get Shiprocket token: " + message)
	}
	return decoded.Token, nil
}
