package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dtnitsch/wikilens/models"
)

const (
	ProcessFormPath     = "/server/process_form"
	RelevanceRankedPath = "/server/get_relevance_ranked"
)

// StatusError reports a non-2xx answer from the backend.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Path, e.StatusCode)
}

// Client calls the two backend endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for baseURL. A nil httpClient uses
// http.DefaultClient, which has no timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = models.DefaultBackendURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// ProcessForm calls GET /server/process_form.
func (c *Client) ProcessForm(ctx context.Context, q models.Query) (models.ContentResponse, error) {
	var resp models.ContentResponse
	err := c.get(ctx, ProcessFormPath, q, &resp)
	return resp, err
}

// RelevanceRanked calls GET /server/get_relevance_ranked.
func (c *Client) RelevanceRanked(ctx context.Context, q models.Query) (models.RelevanceResponse, error) {
	var resp models.RelevanceResponse
	err := c.get(ctx, RelevanceRankedPath, q, &resp)
	return resp, err
}

func (c *Client) get(ctx context.Context, path string, q models.Query, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
