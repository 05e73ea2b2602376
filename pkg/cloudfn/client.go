// Package cloudfn calls generic remote tool functions over HTTP. Each
// function is an opaque GET endpoint that takes its arguments as query
// parameters and answers with a JSON object.
package cloudfn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client issues remote function calls.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a remote-function client. Timeouts live here, at the
// network edge; callers never cancel a dispatched invocation.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Call issues a GET against baseURL with params as the query string and
// decodes the JSON object response.
func (c *Client) Call(ctx context.Context, baseURL string, params url.Values) (map[string]any, error) {
	endpoint := baseURL
	if len(params) > 0 {
		endpoint = fmt.Sprintf("%s?%s", baseURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build remote function request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call remote function: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote function response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("remote function returned status %d: %s", resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("invalid JSON response from remote function: %w", err)
	}
	return result, nil
}
