package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"simbu-console/internal/config/configs"
	"simbu-console/internal/core/port"
)

// Client is the gateway to the Simbu backend. It owns request augmentation
// (bearer token, request id) and global 401 handling; the per-resource
// services in this package layer typed calls on top of it.
//
// tokenFn is consulted on every request; an empty return sends the request
// unauthenticated. onUnauthorized runs once per 401 response before the
// error is returned to the caller, and the caller cannot suppress it.
type Client struct {
	baseURL        string
	http           *http.Client
	logger         *slog.Logger
	tokenFn        func() string
	onUnauthorized func()
}

// NewClient builds a client from the API configuration. tokenFn and
// onUnauthorized may be nil.
func NewClient(cfg configs.API, logger *slog.Logger, tokenFn func() string, onUnauthorized func()) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL.String(), "/"),
		http:           &http.Client{Timeout: cfg.Timeout},
		logger:         logger,
		tokenFn:        tokenFn,
		onUnauthorized: onUnauthorized,
	}
}

// errorBody is the shape of backend error responses. FastAPI-style
// backends put a human-readable message under "detail".
type errorBody struct {
	Detail string `json:"detail"`
}

// do performs one request. body is JSON-encoded when non-nil; a non-nil out
// receives the decoded response body. Non-2xx statuses become *port.APIError
// carrying whatever detail the body held. No retries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.logger != nil {
			c.logger.Warn("session rejected by backend", slog.String("path", path))
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return c.apiError(resp)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError builds an *port.APIError from a failed response, pulling the
// detail field out of the body when it parses.
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &port.APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(raw) > 0 {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Detail = eb.Detail
		}
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
