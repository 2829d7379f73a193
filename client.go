package igdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public metadata API root.
	DefaultBaseURL = "https://api.igdb.com/v4"

	// DefaultTokenURL is the identity provider's client-credentials endpoint.
	DefaultTokenURL = "https://id.twitch.tv/oauth2/token"

	defaultTimeout = 30 * time.Second
)

// Client represents a game metadata API client.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	logger     zerolog.Logger
	tokens     *TokenManager
	fields     FieldPolicy
}

// NewClient creates a new client from Twitch application credentials. No
// network call is made; the first token exchange happens lazily on the first
// request.
func NewClient(clientID, clientSecret string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	options := clientOptions{
		baseURL:  DefaultBaseURL,
		tokenURL: DefaultTokenURL,
		timeout:  defaultTimeout,
		fields:   defaultFieldPolicy(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		clientID:   clientID,
		httpClient: httpClient,
		logger:     logger,
		tokens:     newTokenManager(clientID, clientSecret, options.tokenURL, httpClient, logger),
		fields:     options.fields,
	}, nil
}

// Tokens exposes the client's token manager for inspection and manual
// invalidation.
func (c *Client) Tokens() *TokenManager {
	return c.tokens
}

// Request executes a raw query against an endpoint and returns the response
// body. A valid bearer token is acquired first, refreshing if needed. Non-2xx
// responses are returned as *APIError; no retries are performed.
func (c *Client) Request(ctx context.Context, endpoint, query string) ([]byte, error) {
	token, err := c.tokens.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("query", query).
		Msg("Querying metadata API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	return body, nil
}

// buildQuery renders QueryOptions into query text for an endpoint, merging
// the caller's field selection with the endpoint's default field set.
func (c *Client) buildQuery(endpoint string, opts QueryOptions) string {
	q := NewQuery()

	if fields := mergeFields(opts.Fields, c.fields[endpoint], !opts.ExcludeDefaults); len(fields) > 0 {
		q.Fields(fields...)
	}
	if opts.Sort != "" {
		for _, spec := range strings.Split(opts.Sort, ",") {
			field, direction, _ := strings.Cut(strings.TrimSpace(spec), " ")
			q.Sort(field, strings.TrimSpace(direction))
		}
	}
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q.Offset(opts.Offset)
	}
	if opts.Search != "" {
		q.Search(opts.Search)
	}
	if opts.Where != "" {
		q.Where(opts.Where)
	}

	return q.Build()
}

// joinConditions AND-joins two pre-formatted filter fragments, tolerating
// either being empty.
func joinConditions(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " & " + b
	}
}
