package igdb

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	tokenURL   string
	timeout    time.Duration
	httpClient *http.Client
	fields     FieldPolicy
}

// WithBaseURL overrides the metadata API base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTokenURL overrides the identity provider token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(o *clientOptions) {
		if tokenURL != "" {
			o.tokenURL = tokenURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient supplies a custom HTTP client, replacing the default one.
// The timeout option has no effect when a custom client is supplied.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithFieldPolicy replaces the default per-endpoint field tables.
func WithFieldPolicy(policy FieldPolicy) Option {
	return func(o *clientOptions) {
		if policy != nil {
			o.fields = policy
		}
	}
}

// QueryOptions captures per-request query intent for the entity routes.
// The zero value requests the endpoint's default fields with no filtering.
type QueryOptions struct {
	// Fields lists dot-path field selections. Suffix a path with ".*" to
	// expand the linked entity into a nested object instead of receiving
	// its bare identifier.
	Fields []string

	// ExcludeDefaults skips merging the endpoint's default field set into
	// the selection. With no Fields and ExcludeDefaults set, the fields
	// clause is omitted entirely and the API returns bare identifiers.
	ExcludeDefaults bool

	// Where is a pre-formatted filter fragment, e.g. "rating > 80".
	Where string

	// Search is a full-text search term, inserted verbatim.
	Search string

	// Sort is a "field direction" pair, e.g. "rating desc". Direction
	// defaults to ascending when omitted.
	Sort string

	// Limit caps the result count; values are clamped into [1, 500].
	// Zero leaves the clause out.
	Limit int

	// Offset skips results; values are clamped into [0, 10000]. Zero
	// leaves the clause out.
	Offset int
}
