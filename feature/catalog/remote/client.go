package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds configuration for the remote catalog resource.
type Config struct {
	// BaseURL is the collection endpoint of the remote resource.
	BaseURL string `mapstructure:"base_url" default:"https://jsonplaceholder.typicode.com/posts"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// PageLimit is the fixed page size of the initial fetch.
	PageLimit int `mapstructure:"page_limit" default:"10"`
}

// NetworkError reports a transport failure or non-success status from the
// remote resource.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status code: %d", e.Op, e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// API is the gateway contract for one remote entity type. Raw records are
// returned as decoded JSON objects; the normalization layer canonicalizes
// them. The gateway performs no retries: a failed call is final and the
// caller decides what to do about it.
type API interface {
	List(ctx context.Context, limit int) ([]map[string]any, error)
	Create(ctx context.Context, payload any) (map[string]any, error)
	Update(ctx context.Context, id int, payload any) (map[string]any, error)
	Delete(ctx context.Context, id int) error
}

// Client is the HTTP implementation of API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a gateway client for the configured resource.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
	}
}

// List fetches up to limit raw records.
func (c *Client) List(ctx context.Context, limit int) ([]map[string]any, error) {
	u := fmt.Sprintf("%s?_limit=%d", c.baseURL, limit)
	var out []map[string]any
	if err := c.do(ctx, "list", http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a new record and returns the raw record the server created,
// including its server-assigned identity.
func (c *Client) Create(ctx context.Context, payload any) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, "create", http.MethodPost, c.baseURL, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the record's fields and returns the raw record as the
// server now sees it.
func (c *Client) Update(ctx context.Context, id int, payload any) (map[string]any, error) {
	u := fmt.Sprintf("%s/%d", c.baseURL, id)
	var out map[string]any
	if err := c.do(ctx, "update", http.MethodPut, u, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the record.
func (c *Client) Delete(ctx context.Context, id int) error {
	u := fmt.Sprintf("%s/%d", c.baseURL, id)
	return c.do(ctx, "delete", http.MethodDelete, u, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, url string, payload, target any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s payload: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Op: op, Status: resp.StatusCode}
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
