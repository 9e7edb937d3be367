// Package api is the typed HTTP client for the investment-office
// backend: record listings, mutations, auth, and CSV exports.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ankadash/internal/model"
)

const (
	requestTimeout = 15 * time.Second
	maxBodySize    = 32 << 20 // CSV exports can be large
	pageSize       = 200      // backend's page_size ceiling
)

var (
	// ErrUnauthorized indicates a missing, expired, or invalid token.
	ErrUnauthorized = errors.New("api: unauthorized (token expired or invalid)")
	// ErrNotFound indicates the entity no longer exists on the backend.
	ErrNotFound = errors.New("api: not found")
)

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given base URL ("http://host:8000/api").
// token may be empty for the auth endpoints.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// do performs a request with auth and timeout, returning the body.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrNotFound
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("api: %s %s: %s", method, path, errorDetail(resp.StatusCode, data))
	}
	return data, nil
}

// errorDetail extracts the backend's {"detail": "..."} message when
// present, falling back to the bare status code.
func errorDetail(status int, body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return fmt.Sprintf("status %d: %s", status, payload.Detail)
	}
	return fmt.Sprintf("unexpected status %d", status)
}

// getJSON performs a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: parsing %s: %w", path, err)
	}
	return nil
}

// fetchAllPages walks a paginated listing until the last page.
// meta.pages == 0 means an empty result set, never page 1 of nothing.
func fetchAllPages[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("page_size", strconv.Itoa(pageSize))

		var envelope model.Paginated[T]
		if err := c.getJSON(ctx, path+"?"+q.Encode(), &envelope); err != nil {
			return nil, err
		}
		items = append(items, envelope.Items...)

		if envelope.Meta.Pages == 0 || page >= envelope.Meta.Pages {
			return items, nil
		}
	}
}

// FetchSnapshot retrieves the four record sets concurrently. The
// fetches are independent; no completion order is assumed, and the
// aggregation layer only ever sees fully resolved lists.
func (c *Client) FetchSnapshot(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Clients, err = c.FetchClients(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Assets, err = c.FetchAssets(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Allocations, err = c.FetchAllocations(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Movements, err = c.FetchMovements(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Snapshot{}, err
	}

	snap.FetchedAt = time.Now()
	return snap, nil
}
