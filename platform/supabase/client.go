// Package supabase is a small client for the hosted platform backing the
// app: the GoTrue auth API under /auth/v1 and the PostgREST data API under
// /rest/v1. Row level security is applied by the platform using the access
// token sent with each data request.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	authPath = "/auth/v1"
	restPath = "/rest/v1"
)

// Config holds what is needed to reach the platform
type Config struct {
	URL       string
	APIKey    string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client is a pre-configured connection handle to the platform, safe for concurrent use
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
}

// New validates the config and builds a Client
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("supabase: missing url")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("supabase: missing api key")
	}
	u, err := url.Parse(strings.TrimSuffix(cfg.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("supabase: invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("supabase: invalid url %q", cfg.URL)
	}

	return &Client{
		baseURL: u,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
	}, nil
}

// URL returns the platform base url
func (c *Client) URL() string {
	return c.baseURL.String()
}

type request struct {
	method string
	path   string
	query  url.Values
	header http.Header
	token  string
	body   any
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	u := *c.baseURL
	u.Path += r.path
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range r.header {
		req.Header[k] = v
	}
	token := r.token
	if token == "" {
		token = c.apiKey
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", r.path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response of %s: %w", r.path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response of %s: %w", r.path, err)
	}
	return nil
}
