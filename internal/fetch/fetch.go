// Package fetch retrieves remote plain-text documents over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"textprep/internal/domain"
)

// Client fetches .txt documents. It implements domain.Fetcher.
type Client struct {
	client *http.Client
}

// NewClient creates a fetch client with the given request timeout.
// A non-positive timeout falls back to 10 seconds.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads the document at url and returns its body as text.
//
// URLs without a case-insensitive .txt suffix are rejected before any
// network call. Transport failures and non-2xx statuses surface as a single
// wrapped error; no retries are attempted, retrying is the caller's call.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(url), ".txt") {
		return "", fmt.Errorf("%w (got %q)", domain.ErrNotTextURL, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building request for %s: %v", domain.ErrFetchFailed, url, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s returned %s", domain.ErrFetchFailed, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", domain.ErrFetchFailed, url, err)
	}
	return string(body), nil
}
