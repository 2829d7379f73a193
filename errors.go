package igdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrMissingCredentials indicates the client was constructed without a
	// client ID or client secret.
	ErrMissingCredentials = errors.New("client ID and client secret are required")
)

// maximum response-body excerpt carried in error messages
const errBodyExcerptLen = 280

// APIError represents a non-success response from the metadata API.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	body := e.Body
	if len(body) > errBodyExcerptLen {
		body = body[:errBodyExcerptLen] + "..."
	}
	if body == "" {
		return fmt.Sprintf("API request failed with status %d %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("API request failed with status %d %s: %s", e.StatusCode, e.Status, body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates the API rate limit was hit
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
