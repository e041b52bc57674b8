// Package client is a small Go client for the schemetrack read API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lohum/schemetrack/pkg/errors"
	"github.com/lohum/schemetrack/pkg/types"
)

// Client calls a running schemetrack API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New builds a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Overview fetches the full dashboard bundle.
func (c *Client) Overview(ctx context.Context) (*types.Overview, error) {
	var out types.Overview
	if err := c.get(ctx, "/api/v1/schemes", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Detail fetches one scheme's display bundle. Both row and name may be empty.
func (c *Client) Detail(ctx context.Context, row, name string) (*types.Detail, error) {
	query := url.Values{}
	if row != "" {
		query.Set("row", row)
	}
	if name != "" {
		query.Set("scheme", name)
	}
	var out types.Detail
	if err := c.get(ctx, "/api/v1/schemes/detail", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary fetches the collection aggregates.
func (c *Client) Summary(ctx context.Context) (*types.Summary, error) {
	var out types.Summary
	if err := c.get(ctx, "/api/v1/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "call API server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "decode API response")
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Code == "" {
		return errors.Newf(errors.CodeUnknown, "API returned status %d", resp.StatusCode)
	}
	return errors.New(errors.ErrorCode(body.Code), body.Message).
		WithDetail(fmt.Sprintf("status=%d", resp.StatusCode))
}
