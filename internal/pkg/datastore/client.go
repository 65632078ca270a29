package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client issues requests against a json-server style REST store. It keeps no
// state between calls: no cache, no retry.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

// WithTimeout sets the transport timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one round trip. body is JSON encoded when non-nil; out is
// decoded from the response when non-nil and the response carries a body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("Data store request failed", "method", method, "url", endpoint, "error", err)
		return &NetworkError{
			Method:  method,
			URL:     endpoint,
			Message: transportMessage(err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	c.logger.Debug("Data store request",
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if !accepted(method, resp.StatusCode) {
		io.Copy(io.Discard, resp.Body)
		return &NetworkError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Request failed with status code %d", resp.StatusCode),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return &NetworkError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Message:    "invalid response body: " + err.Error(),
			Err:        err,
		}
	}

	return nil
}

// accepted lists the success statuses per verb: 200/201 for reads and
// creates, 200 for updates and patches, 200/204 for deletes.
func accepted(method string, status int) bool {
	switch method {
	case http.MethodGet, http.MethodPost:
		return status == http.StatusOK || status == http.StatusCreated
	case http.MethodPut, http.MethodPatch:
		return status == http.StatusOK
	case http.MethodDelete:
		return status == http.StatusOK || status == http.StatusNoContent
	}
	return false
}

func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
