package monzo

import (
	"errors"

	internalTypes "github.com/petebray/monzoreport/internal/types"
)

// Sentinel errors shared with the transport layer
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrNotFound is returned when resource not found
	ErrNotFound = internalTypes.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = internalTypes.ErrServerError
)

// Error represents an API error carrying the HTTP status code and the
// raw response body
type Error = internalTypes.Error

// AsAPIError unwraps err to an *Error if the error chain contains one
func AsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
