// Package remote is the thin HTTP client for the single remote JSON
// document. It knows two verbs and how to classify failures; retry policy
// belongs to the reconciliation engine.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

// StatusError reports a non-2xx response so callers can tell a transient
// server failure from a permanently invalid document URL.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote document store responded %d", e.Code)
}

type Client struct {
	url        string
	httpClient *http.Client
	now        func() time.Time
}

var _ ports.DocumentStore = (*Client)(nil)

// NewClient targets the document at url. The URL is the only credential this
// protocol has: whoever knows it can read and replace the document.
// Per-request deadlines come from the caller's context.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{url: url, httpClient: httpClient, now: time.Now}
}

// Get fetches the document body. A 404 or an empty 200 body map to
// domain.ErrDocumentNotFound; every other non-2xx response becomes a
// StatusError. The cache-busting query parameter and no-store headers force
// a fresh read through any intermediary cache.
func (c *Client) Get(ctx context.Context) ([]byte, error) {
	url := c.url + "?t=" + strconv.FormatInt(c.now().UnixMilli(), 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrDocumentNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read document body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, domain.ErrDocumentNotFound
	}
	return body, nil
}

// Put replaces the document wholesale. Any non-2xx response is a failure.
func (c *Client) Put(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
