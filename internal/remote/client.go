package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"founderos/internal/founder"
)

// Client talks to a document-store server. Save and Setup degrade to status
// signals rather than raised errors, so the app keeps working offline.
type Client struct {
	base   string
	hc     *http.Client
	logger *slog.Logger
}

// NewClient creates a client for the store at baseURL (no trailing slash).
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		base:   baseURL,
		hc:     &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// Setup asks the server to create its backing schema. Idempotent.
func (c *Client) Setup(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/setup", nil)
	if err != nil {
		return fmt.Errorf("build setup request: %w", err)
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("setup: HTTP %d", res.StatusCode)
	}
	return nil
}

// Load fetches the stored document. A null or empty stored document returns
// (nil, nil): the store exists but holds nothing worth overlaying.
func (c *Client) Load(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/data", nil)
	if err != nil {
		return nil, fmt.Errorf("build load request: %w", err)
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("load: HTTP %d", res.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode load response: %w", err)
	}
	if founder.IsEmptyPayload(envelope.Data) {
		return nil, nil
	}
	return envelope.Data, nil
}

// Save uploads the full document. Failures are reported as false, never as
// an error: the caller flips sync status and carries on local-only.
func (c *Client) Save(ctx context.Context, document []byte) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/data", bytes.NewReader(document))
	if err != nil {
		c.logger.Warn("save request build failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn("save failed", "error", err)
		return false
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Warn("save rejected", "status", res.StatusCode)
		return false
	}
	return true
}
