package curseforge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production CurseForge Core API endpoint.
	DefaultBaseURL = "https://api.curseforge.com"

	apiKeyHeader     = "x-api-key"
	defaultUserAgent = "curseforge-go"
)

// Client represents a CurseForge Core API client
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// ClientOption configures optional client behavior
type ClientOption func(*Client)

// WithBaseURL overrides the production API endpoint, e.g. for a proxy
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client; timeouts, pooling and
// cancellation are its responsibility
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger; the default discards everything
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a new CurseForge client. The API key is required;
// everything else has working defaults.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		userAgent:  defaultUserAgent,
		httpClient: cleanhttp.DefaultPooledClient(),
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// Response wraps the raw HTTP response so callers can inspect headers or
// status, and carries the pagination descriptor when the endpoint returns
// one. The upstream API spells the pagination field with two different
// casings across endpoints; both decode into the single Pagination field
// here.
type Response struct {
	*http.Response

	// Pagination is nil for endpoints that do not paginate.
	Pagination *Pagination
}

// envelope is the wire shape every endpoint responds with. encoding/json
// matches keys case-insensitively, which absorbs the upstream
// pagination/Pagination spelling difference.
type envelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// get issues a GET request. opts, when non-nil, is encoded into the query
// string via go-querystring struct tags.
func (c *Client) get(ctx context.Context, path string, opts, v interface{}) (*Response, error) {
	requestURL := c.baseURL + path
	if opts != nil {
		values, err := query.Values(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query parameters: %w", err)
		}
		if len(values) > 0 {
			requestURL += "?" + values.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, v)
}

// post issues a POST request with a JSON-encoded body.
func (c *Client) post(ctx context.Context, path string, body, v interface{}) (*Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, v)
}

// do sends the request with authentication and decodes the response
// envelope into v. The header set is derived fresh for every request.
func (c *Client) do(req *http.Request, v interface{}) (*Response, error) {
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("CurseForge API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failures are not part of the status mapping table;
		// the caller gets the transport error itself.
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{Response: resp}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("url", req.URL.String()).
			Msg("CurseForge API request failed")
		return response, statusError(resp.StatusCode, body)
	}

	if v != nil {
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return response, fmt.Errorf("failed to parse response: %w", err)
		}
		response.Pagination = env.Pagination
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, v); err != nil {
				return response, fmt.Errorf("failed to parse response data: %w", err)
			}
		}
	}

	return response, nil
}
