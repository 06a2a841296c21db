// Package httpclient provides a small HTTP client with timeout and User-Agent
// handling, used to download reference data such as the IANA TLD list.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/logx"
)

// Client is an HTTP client with a fixed timeout and User-Agent.
// It performs a single attempt per request.
type Client struct {
	httpClient *http.Client
	logger     logx.Logger
	config     Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the request timeout duration.
	// Default: 10 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "domainsearch/1.0"
	UserAgent string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:   10 * time.Second,
		UserAgent: "domainsearch/1.0",
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	// Apply defaults for zero values
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "domainsearch/1.0"
	}
	if logger == nil {
		logger = logx.New()
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.With("component", "httpclient"),
		config:     config,
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for GET %s", url)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Warn("HTTP request failed",
			"url", url,
			"error", err.Error(),
			"duration_ms", duration.Milliseconds(),
		)
		return nil, errors.Wrapf(errors.Classify(err), "GET %s", url)
	}

	c.logger.Debug("HTTP response received",
		"url", url,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return resp, nil
}

// ReadBody reads the response body and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return body, nil
}

// CheckStatus validates the HTTP status code and returns an error if it's not successful.
func CheckStatus(resp *http.Response) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return errors.Wrapf(errors.ErrConnectionFailed, "HTTP %d", resp.StatusCode)
	default:
		return errors.Wrapf(errors.ErrInvalidResponse, "HTTP %d: %s", resp.StatusCode, resp.Status)
	}
}

// Fetch performs a GET request and returns the body of a 2xx response.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Get(ctx, url, map[string]string{"Accept": "text/plain"})
	if err != nil {
		return nil, err
	}

	if err := CheckStatus(resp); err != nil {
		resp.Body.Close()
		return nil, errors.Wrapf(err, "request to %s failed", url)
	}

	return ReadBody(resp)
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, user_agent=%s}",
		c.config.Timeout,
		c.config.UserAgent,
	)
}
