package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

// Codes shared by every client. Domain packages add their own validation and
// not-found codes on top of these.
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeRateLimited         = "RATE_LIMITED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodeBadGateway          = "BAD_GATEWAY"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeHTTPError           = "HTTP_ERROR"

	// CodeAPIError is used when the API returns an error object without a code.
	CodeAPIError = "API_ERROR"

	CodeRequestTimeout = "REQUEST_TIMEOUT"
	CodeNetworkError   = "NETWORK_ERROR"
	CodeUnknownError   = "UNKNOWN_ERROR"
)

// Statuses reported when no HTTP response was received.
const (
	StatusNetworkFailure = 0
	StatusTimeout        = 408
	StatusInvalid        = 400
	StatusUnknown        = 500
)

// Category defines the normalized failure taxonomy
type Category string

const (
	// CategoryValidation indicates the input was rejected before any request was sent
	CategoryValidation Category = "validation"

	// CategoryTimeout indicates the API did not answer within the configured window
	CategoryTimeout Category = "timeout"

	// CategoryNetwork indicates the request could not be sent or the response not read
	CategoryNetwork Category = "network"

	// CategoryAuthentication indicates credential or permission issues
	CategoryAuthentication Category = "authentication"

	// CategoryNotFound indicates the requested record doesn't exist
	CategoryNotFound Category = "not_found"

	// CategoryRateLimited indicates too many requests
	CategoryRateLimited Category = "rate_limited"

	// CategoryProviderOutage indicates the API is failing or unavailable
	CategoryProviderOutage Category = "provider_outage"

	// CategoryBadRequest indicates the API rejected the request parameters
	CategoryBadRequest Category = "bad_request"

	// CategoryAPI covers provider-specific codes passed through verbatim
	CategoryAPI Category = "api"

	// CategoryInternal indicates an unexpected client-side failure
	CategoryInternal Category = "internal"
)

// APIError is the error half of the response envelope. Code, Message and Details
// are passed through verbatim when the API reports a structured error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Category maps the code onto the normalized taxonomy.
func (e *APIError) Category() Category {
	switch e.Code {
	case CodeRequestTimeout:
		return CategoryTimeout
	case CodeNetworkError:
		return CategoryNetwork
	case CodeUnauthorized, CodeForbidden:
		return CategoryAuthentication
	case CodeRateLimited:
		return CategoryRateLimited
	case CodeInternalServerError, CodeBadGateway, CodeServiceUnavailable:
		return CategoryProviderOutage
	case CodeBadRequest:
		return CategoryBadRequest
	case CodeUnknownError:
		return CategoryInternal
	}
	switch {
	case strings.HasPrefix(e.Code, "INVALID_"):
		return CategoryValidation
	case strings.HasSuffix(e.Code, "_NOT_FOUND"):
		return CategoryNotFound
	}
	return CategoryAPI
}

// Retryable reports whether a caller could reasonably try again. The clients
// themselves never retry.
func (e *APIError) Retryable() bool {
	switch e.Category() {
	case CategoryTimeout, CategoryNetwork, CategoryRateLimited, CategoryProviderOutage:
		return true
	}
	return false
}

// IsRetryable checks if an error is worth retrying
func IsRetryable(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Retryable()
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) Category {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Category()
	}
	return CategoryInternal
}

func unknownError(err error) *APIError {
	msg := err.Error()
	if msg == "" {
		msg = "An unexpected error occurred"
	}
	return &APIError{
		Code:    CodeUnknownError,
		Message: msg,
		Details: map[string]any{"originalError": err.Error()},
	}
}
