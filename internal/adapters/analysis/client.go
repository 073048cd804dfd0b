// Package analysis is the HTTP client for the external ingredient-analysis
// backend. The backend turns raw ingredient lists into a scored barrier
// report; this client owns only the transport, never the caching policy.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skinsight/engine/internal/domain/model"
)

// Default client configuration constants.
const (
	defaultTimeout  = 15 * time.Second
	analyzePath     = "/v1/analyze"
	maxResponseSize = 1 << 20 // 1 MiB is far beyond any real report
)

// UserProfile carries the profile fields the backend scores against.
type UserProfile struct {
	Allergies  []string `json:"allergies"`
	Conditions []string `json:"conditions"`
	SkinType   string   `json:"skinType"`
	ScalpType  string   `json:"scalpType"`
}

// Request is the analyze payload. Field names mirror the backend wire
// contract exactly.
type Request struct {
	IngredientsList []string    `json:"ingredients_list"`
	ProductType     string      `json:"product_type"`
	SelectedClaims  []string    `json:"selected_claims"`
	UserProfile     UserProfile `json:"user_profile"`
}

// Client talks to the analysis backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client with configuration options.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze submits an ingredient list and returns the scored barrier report.
//
// Any transport failure, non-2xx status, or undecodable body is returned as
// a wrapped ErrBackend; callers must not cache the result of a failed call.
func (c *Client) Analyze(ctx context.Context, req Request) (*model.BarrierReport, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", ErrBackend, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrBackend, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-side close

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrBackend, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d", ErrBackendStatus, resp.StatusCode)
	}

	var report model.BarrierReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("%w: decode report: %w", ErrBackend, err)
	}
	return &report, nil
}
