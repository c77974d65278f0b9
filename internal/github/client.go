package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

const defaultTimeout = 30 * time.Second

// ErrNoToken is returned before any network I/O when no credential is
// configured. The server still starts without a token; calls surface this as
// an upstream-style failure and /health reports the gap.
var ErrNoToken = errors.New("GITHUB_TOKEN is not configured")

// UpstreamError is a non-2xx answer from the GitHub API, flattened to the
// upstream message so it can travel through a failure envelope untouched.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("GitHub API error (%d): %s", e.Status, e.Message)
}

// ClientOptions tunes a Client. Zero values fall back to defaults.
type ClientOptions struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// Timeout bounds each upstream call end to end.
	Timeout time.Duration
}

// Client is the upstream resource API collaborator. The core treats it as an
// opaque capability: one Request method, errors as a single message string,
// and a distinguishable no-content result.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a GitHub API client. opt may be nil.
func NewClient(token string, opt *ClientOptions) *Client {
	if opt == nil {
		opt = &ClientOptions{}
	}
	baseURL := opt.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opt.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// HasToken reports whether a credential is configured.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Request performs one call against the GitHub REST API. path must start
// with "/". A non-nil body is JSON-encoded. A 2xx response returns the raw
// JSON payload; 204 or an empty body returns (nil, nil); any other status
// returns a *UpstreamError carrying the upstream message.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read github response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(resp.StatusCode, data)}
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// upstreamMessage extracts the "message" field GitHub puts in error bodies,
// falling back to the HTTP status text.
func upstreamMessage(status int, data []byte) string {
	if msg := gjson.GetBytes(data, "message").String(); msg != "" {
		return msg
	}
	return http.StatusText(status)
}
