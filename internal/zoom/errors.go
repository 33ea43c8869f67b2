package zoom

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by resource calls made before an access
// token has been set on the client.
var ErrNotAuthenticated = errors.New("zoom: no access token set")

// AuthExchangeError is returned when the token endpoint answers an
// authorization code exchange with a non-success status.
type AuthExchangeError struct {
	// StatusCode is the HTTP status returned by the token endpoint
	StatusCode int

	// Body is the raw response body
	Body string

	// Err is the underlying oauth2 error, if any
	Err error
}

// Error implements the error interface
func (e *AuthExchangeError) Error() string {
	return fmt.Sprintf("zoom token exchange failed with status %d: %s", e.StatusCode, e.Body)
}

// Unwrap implements the errors.Unwrap interface
func (e *AuthExchangeError) Unwrap() error {
	return e.Err
}

// APIRequestError is returned when a resource endpoint answers with a
// status other than 200.
type APIRequestError struct {
	// Operation is the resource call that failed (e.g. "current_user")
	Operation string

	// StatusCode is the HTTP status returned by the API
	StatusCode int

	// Body is the raw response body
	Body string
}

// Error implements the error interface
func (e *APIRequestError) Error() string {
	return fmt.Sprintf("zoom %s failed with status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// IsStatus reports whether err is an *APIRequestError or *AuthExchangeError
// with the given HTTP status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIRequestError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	var authErr *AuthExchangeError
	if errors.As(err, &authErr) {
		return authErr.StatusCode == code
	}
	return false
}
